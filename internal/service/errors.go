package service

import "errors"

var (
	// ErrVehicleNotFound covers both a truly missing vehicle and one owned
	// by another customer. The two cases are indistinguishable on purpose,
	// so callers cannot probe for other customers' vehicles.
	ErrVehicleNotFound = errors.New("vehicle not found")

	ErrDuplicateVIN = errors.New("vehicle with this VIN already exists")

	ErrPhotoNotFound = errors.New("photo not found")

	// ErrPhotoAccessDenied means the photo row exists but its parent vehicle
	// belongs to someone else. Distinct from ErrPhotoNotFound internally;
	// the HTTP layer reports both as 404.
	ErrPhotoAccessDenied = errors.New("photo belongs to another customer's vehicle")

	ErrInvalidFileType = errors.New("file must be an image")

	ErrInvalidPhotoPath = errors.New("invalid photo path")

	ErrPhotoNotReadable = errors.New("photo file is missing or unreadable")
)
