package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage stores photos as <vehicleID>/<fileName> objects in a
// single bucket. Selected with PHOTO_STORAGE=minio.
func NewMinIOStorage(client *minio.Client, bucket string) PhotoStorage {
	return &minioStorage{client: client, bucket: bucket}
}

func objectKey(vehicleID, fileName string) (string, error) {
	if strings.ContainsAny(vehicleID, "/\\") || strings.ContainsAny(fileName, "/\\") ||
		strings.Contains(fileName, "..") {
		return "", ErrInvalidPath
	}
	return vehicleID + "/" + fileName, nil
}

func (s *minioStorage) Save(ctx context.Context, vehicleID, fileName string, r io.Reader, size int64, contentType string) (string, error) {
	key, err := objectKey(vehicleID, fileName)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *minioStorage) Open(ctx context.Context, vehicleID, fileName string) (io.ReadCloser, error) {
	key, err := objectKey(vehicleID, fileName)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; stat now so a missing object surfaces here rather
	// than on first read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return obj, nil
}

func (s *minioStorage) Remove(ctx context.Context, location string) error {
	return s.client.RemoveObject(ctx, s.bucket, location, minio.RemoveObjectOptions{})
}

func (s *minioStorage) RemoveAll(ctx context.Context, vehicleID string) error {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    vehicleID + "/",
		Recursive: true,
	})

	var firstErr error
	for obj := range objects {
		if obj.Err != nil {
			if firstErr == nil {
				firstErr = obj.Err
			}
			continue
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
