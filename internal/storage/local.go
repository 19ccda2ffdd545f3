package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type localStorage struct {
	root string
}

// NewLocalStorage stores photos under root/<vehicleID>/<fileName> on the
// local filesystem. The root is created when missing.
func NewLocalStorage(root string) (PhotoStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &localStorage{root: abs}, nil
}

// resolve joins the vehicle directory and file name and verifies the result
// stays inside the vehicle's own directory. Called before every filesystem
// access, so traversal sequences are rejected without touching the disk.
func (s *localStorage) resolve(vehicleID, fileName string) (string, string, error) {
	vehicleDir := filepath.Join(s.root, vehicleID)
	if filepath.Dir(vehicleDir) != s.root {
		return "", "", ErrInvalidPath
	}

	target := filepath.Clean(filepath.Join(vehicleDir, fileName))
	if !strings.HasPrefix(target, vehicleDir+string(filepath.Separator)) {
		return "", "", ErrInvalidPath
	}
	return vehicleDir, target, nil
}

func (s *localStorage) Save(ctx context.Context, vehicleID, fileName string, r io.Reader, size int64, contentType string) (string, error) {
	vehicleDir, target, err := s.resolve(vehicleID, fileName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(vehicleDir, 0o755); err != nil {
		return "", fmt.Errorf("create vehicle directory: %w", err)
	}

	// Write to a temp file in the same directory and rename, so a re-upload
	// of an existing name is an atomic replace and readers never see a
	// half-written file.
	tmp, err := os.CreateTemp(vehicleDir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write photo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close photo: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("place photo: %w", err)
	}

	return target, nil
}

func (s *localStorage) Open(ctx context.Context, vehicleID, fileName string) (io.ReadCloser, error) {
	_, target, err := s.resolve(vehicleID, fileName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *localStorage) Remove(ctx context.Context, location string) error {
	abs, err := filepath.Abs(location)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(abs, s.root+string(filepath.Separator)) {
		return ErrInvalidPath
	}
	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *localStorage) RemoveAll(ctx context.Context, vehicleID string) error {
	vehicleDir := filepath.Join(s.root, vehicleID)
	if filepath.Dir(vehicleDir) != s.root {
		return ErrInvalidPath
	}
	return os.RemoveAll(vehicleDir)
}
