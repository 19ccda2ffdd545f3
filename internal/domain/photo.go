package domain

import (
	"io"
	"time"
)

type VehiclePhoto struct {
	ID          string    `json:"id" db:"id"`
	VehicleID   string    `json:"vehicleId" db:"vehicle_id"`
	FileName    string    `json:"fileName" db:"file_name"`
	FilePath    string    `json:"-" db:"file_path"`
	FileURL     string    `json:"fileUrl" db:"file_url"`
	FileSize    int64     `json:"fileSize" db:"file_size"`
	ContentType string    `json:"contentType" db:"content_type"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at"`
}

// UploadFile describes one file of a multipart upload batch, decoupled from
// the HTTP layer so the photo service can be tested without a request.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

type PhotoUploadResult struct {
	PhotoIDs []string `json:"photoIds"`
	URLs     []string `json:"urls"`
}
