package config

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// EnsureSchema creates the tables this service owns when they do not exist
// yet. The schema is small enough that a startup preflight beats carrying a
// migration tool.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS vehicles (
			id            TEXT PRIMARY KEY,
			customer_id   TEXT NOT NULL,
			make          TEXT NOT NULL,
			model         TEXT NOT NULL,
			year          INTEGER NOT NULL,
			vin           TEXT NOT NULL UNIQUE,
			license_plate TEXT NOT NULL,
			color         TEXT NOT NULL DEFAULT '',
			mileage       INTEGER NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vehicles_customer_id ON vehicles (customer_id)`,
		`CREATE TABLE IF NOT EXISTS vehicle_photos (
			id           TEXT PRIMARY KEY,
			vehicle_id   TEXT NOT NULL,
			file_name    TEXT NOT NULL,
			file_path    TEXT NOT NULL,
			file_url     TEXT NOT NULL,
			file_size    BIGINT NOT NULL DEFAULT 0,
			content_type TEXT NOT NULL DEFAULT '',
			uploaded_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vehicle_photos_vehicle_id ON vehicle_photos (vehicle_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
