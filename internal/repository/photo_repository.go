package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"vehicle-service/internal/domain"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.VehiclePhoto) error
	GetByID(ctx context.Context, id string) (*domain.VehiclePhoto, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.VehiclePhoto, error)
	Delete(ctx context.Context, id string) error
	DeleteByVehicle(ctx context.Context, vehicleID string) (int64, error)
}

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *domain.VehiclePhoto) error {
	query := `
		INSERT INTO vehicle_photos (id, vehicle_id, file_name, file_path, file_url, file_size, content_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING uploaded_at`

	return r.db.QueryRowxContext(ctx, query,
		photo.ID, photo.VehicleID, photo.FileName, photo.FilePath,
		photo.FileURL, photo.FileSize, photo.ContentType,
	).Scan(&photo.UploadedAt)
}

func (r *photoRepository) GetByID(ctx context.Context, id string) (*domain.VehiclePhoto, error) {
	var photo domain.VehiclePhoto
	err := r.db.GetContext(ctx, &photo, `SELECT * FROM vehicle_photos WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.VehiclePhoto, error) {
	photos := []domain.VehiclePhoto{}
	query := `SELECT * FROM vehicle_photos WHERE vehicle_id = $1 ORDER BY uploaded_at DESC`
	err := r.db.SelectContext(ctx, &photos, query, vehicleID)
	return photos, err
}

func (r *photoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_photos WHERE id = $1`, id)
	return err
}

func (r *photoRepository) DeleteByVehicle(ctx context.Context, vehicleID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_photos WHERE vehicle_id = $1`, vehicleID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
