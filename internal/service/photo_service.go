package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/pkg/identifier"
	"vehicle-service/internal/repository"
	"vehicle-service/internal/storage"
)

const fallbackImageContentType = "image/jpeg"

type PhotoService interface {
	Upload(ctx context.Context, vehicleID string, scope domain.Scope, files []domain.UploadFile) (*domain.PhotoUploadResult, error)
	ListForVehicle(ctx context.Context, vehicleID string, scope domain.Scope) ([]domain.VehiclePhoto, error)
	GetByID(ctx context.Context, photoID string, scope domain.Scope) (*domain.VehiclePhoto, error)
	LoadAsResource(ctx context.Context, vehicleID, fileName string, scope domain.Scope) (io.ReadCloser, string, error)
	DeleteSingle(ctx context.Context, photoID string, scope domain.Scope) error
	DeleteAllForVehicle(ctx context.Context, vehicleID string) error
}

type photoService struct {
	photoRepo   repository.PhotoRepository
	vehicleRepo repository.VehicleRepository
	store       storage.PhotoStorage
	urlPrefix   string
	logger      *zap.Logger
}

func NewPhotoService(photoRepo repository.PhotoRepository, vehicleRepo repository.VehicleRepository, store storage.PhotoStorage, urlPrefix string, logger *zap.Logger) PhotoService {
	return &photoService{
		photoRepo:   photoRepo,
		vehicleRepo: vehicleRepo,
		store:       store,
		urlPrefix:   strings.TrimRight(urlPrefix, "/"),
		logger:      logger,
	}
}

// Upload stores a batch of photos for a vehicle the caller may access.
// The whole batch is validated before anything is written, so one bad file
// means zero persisted photos. Empty files are skipped, not rejected.
func (s *photoService) Upload(ctx context.Context, vehicleID string, scope domain.Scope, files []domain.UploadFile) (*domain.PhotoUploadResult, error) {
	if _, err := s.requireVehicle(ctx, vehicleID, scope); err != nil {
		return nil, err
	}

	accepted := make([]domain.UploadFile, 0, len(files))
	for _, f := range files {
		if f.Size == 0 {
			continue
		}
		if !strings.HasPrefix(f.ContentType, "image/") {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, f.Name)
		}
		accepted = append(accepted, f)
	}

	result := &domain.PhotoUploadResult{
		PhotoIDs: []string{},
		URLs:     []string{},
	}

	for _, f := range accepted {
		photo, err := s.storeOne(ctx, vehicleID, f)
		if err != nil {
			return nil, err
		}
		result.PhotoIDs = append(result.PhotoIDs, photo.ID)
		result.URLs = append(result.URLs, photo.FileURL)
	}

	s.logger.Info("photos uploaded",
		zap.String("vehicle_id", vehicleID),
		zap.Int("count", len(result.PhotoIDs)))

	return result, nil
}

func (s *photoService) storeOne(ctx context.Context, vehicleID string, f domain.UploadFile) (*domain.VehiclePhoto, error) {
	fileName := identifier.PhotoFileName(vehicleID, f.Name)

	reader, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", f.Name, err)
	}
	defer reader.Close()

	location, err := s.store.Save(ctx, vehicleID, fileName, reader, f.Size, f.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store photo %s: %w", f.Name, err)
	}

	photo := &domain.VehiclePhoto{
		ID:          identifier.PhotoID(),
		VehicleID:   vehicleID,
		FileName:    fileName,
		FilePath:    location,
		FileURL:     s.urlPrefix + "/" + vehicleID + "/photos/" + fileName,
		FileSize:    f.Size,
		ContentType: f.ContentType,
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// Compensate: the row failed, so the stored bytes must not linger.
		if rmErr := s.store.Remove(ctx, location); rmErr != nil {
			s.logger.Warn("failed to remove stored photo after metadata insert failure",
				zap.String("location", location),
				zap.Error(rmErr))
		}
		return nil, err
	}
	return photo, nil
}

func (s *photoService) ListForVehicle(ctx context.Context, vehicleID string, scope domain.Scope) ([]domain.VehiclePhoto, error) {
	if _, err := s.requireVehicle(ctx, vehicleID, scope); err != nil {
		return nil, err
	}
	return s.photoRepo.ListByVehicle(ctx, vehicleID)
}

// GetByID runs the two-step check: the photo row must exist, then the
// parent vehicle must be within the caller's scope.
func (s *photoService) GetByID(ctx context.Context, photoID string, scope domain.Scope) (*domain.VehiclePhoto, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, photo.VehicleID, scope)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		s.logger.Warn("photo access denied",
			zap.String("photo_id", photoID),
			zap.String("vehicle_id", photo.VehicleID))
		return nil, ErrPhotoAccessDenied
	}

	return photo, nil
}

// LoadAsResource opens a photo for serving. The storage layer validates the
// resolved path before any read, so traversal via fileName dies here.
func (s *photoService) LoadAsResource(ctx context.Context, vehicleID, fileName string, scope domain.Scope) (io.ReadCloser, string, error) {
	if _, err := s.requireVehicle(ctx, vehicleID, scope); err != nil {
		return nil, "", err
	}

	reader, err := s.store.Open(ctx, vehicleID, fileName)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidPath):
			return nil, "", ErrInvalidPhotoPath
		case errors.Is(err, storage.ErrNotFound):
			return nil, "", ErrPhotoNotReadable
		default:
			return nil, "", err
		}
	}

	return reader, contentTypeFor(fileName), nil
}

func (s *photoService) DeleteSingle(ctx context.Context, photoID string, scope domain.Scope) error {
	photo, err := s.GetByID(ctx, photoID, scope)
	if err != nil {
		return err
	}

	// A file already gone from the store is fine; the metadata row is the
	// source of truth and still has to go.
	if err := s.store.Remove(ctx, photo.FilePath); err != nil {
		s.logger.Warn("could not delete photo file",
			zap.String("photo_id", photo.ID),
			zap.String("location", photo.FilePath),
			zap.Error(err))
	}

	if err := s.photoRepo.Delete(ctx, photo.ID); err != nil {
		return err
	}

	s.logger.Info("photo deleted", zap.String("photo_id", photo.ID))
	return nil
}

// DeleteAllForVehicle is the cascade entry point for vehicle deletion. It
// performs no ownership check; callers must have authorized the deletion
// already. File removal is best-effort per photo, metadata removal is bulk.
func (s *photoService) DeleteAllForVehicle(ctx context.Context, vehicleID string) error {
	photos, err := s.photoRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	for _, photo := range photos {
		if err := s.store.Remove(ctx, photo.FilePath); err != nil {
			s.logger.Warn("could not delete photo file during cascade",
				zap.String("vehicle_id", vehicleID),
				zap.String("location", photo.FilePath),
				zap.Error(err))
		}
	}

	deleted, err := s.photoRepo.DeleteByVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	s.logger.Info("vehicle photos deleted",
		zap.String("vehicle_id", vehicleID),
		zap.Int64("count", deleted))
	return nil
}

func (s *photoService) requireVehicle(ctx context.Context, vehicleID string, scope domain.Scope) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID, scope)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

func contentTypeFor(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return fallbackImageContentType
}
