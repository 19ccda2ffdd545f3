package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"vehicle-service/internal/domain"
)

// Constraint names from the vehicles table, used to tell an ID collision
// apart from a VIN conflict on insert.
const (
	VehicleIDConstraint  = "vehicles_pkey"
	VehicleVINConstraint = "vehicles_vin_key"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Vehicle, error)
	GetByVIN(ctx context.Context, vin string) (*domain.Vehicle, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Vehicle, error)
	ListAll(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type vehicleRepository struct {
	db *sqlx.DB
}

func NewVehicleRepository(db *sqlx.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, customer_id, make, model, year, vin, license_plate, color, mileage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		vehicle.ID, vehicle.CustomerID, vehicle.Make, vehicle.Model, vehicle.Year,
		vehicle.VIN, vehicle.LicensePlate, vehicle.Color, vehicle.Mileage,
	).Scan(&vehicle.CreatedAt, &vehicle.UpdatedAt)
}

// GetByID applies the caller's scope as part of the query, so a wrong owner
// and a nonexistent ID both come back as no rows.
func (r *vehicleRepository) GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	var err error

	if scope.IsUnrestricted() {
		err = r.db.GetContext(ctx, &vehicle, `SELECT * FROM vehicles WHERE id = $1`, id)
	} else {
		err = r.db.GetContext(ctx, &vehicle,
			`SELECT * FROM vehicles WHERE id = $1 AND customer_id = $2`, id, scope.CustomerID())
	}

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.db.GetContext(ctx, &vehicle, `SELECT * FROM vehicles WHERE vin = $1`, vin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Vehicle, error) {
	vehicles := []domain.Vehicle{}
	query := `SELECT * FROM vehicles WHERE customer_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &vehicles, query, customerID)
	return vehicles, err
}

func (r *vehicleRepository) ListAll(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles := []domain.Vehicle{}
	query := `SELECT * FROM vehicles ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &vehicles, query)
	return vehicles, err
}

// Update persists the mutable fields only; identity, ownership and the
// natural key are frozen at registration. updated_at always moves forward,
// even when the patch changed nothing.
func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET color = $1, mileage = $2, license_plate = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		vehicle.Color, vehicle.Mileage, vehicle.LicensePlate, vehicle.ID,
	).Scan(&vehicle.UpdatedAt)
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM vehicles`)
	return count, err
}
