package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repositories struct {
	Vehicle VehicleRepository
	Photo   PhotoRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Vehicle: NewVehicleRepository(db),
		Photo:   NewPhotoRepository(db),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint. An empty name matches any constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
