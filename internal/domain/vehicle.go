package domain

import (
	"fmt"
	"strings"
	"time"
)

const minVehicleYear = 1900

type Vehicle struct {
	ID           string    `json:"vehicleId" db:"id"`
	CustomerID   string    `json:"customerId" db:"customer_id"`
	Make         string    `json:"make" db:"make"`
	Model        string    `json:"model" db:"model"`
	Year         int       `json:"year" db:"year"`
	VIN          string    `json:"vin" db:"vin"`
	LicensePlate string    `json:"licensePlate" db:"license_plate"`
	Color        string    `json:"color,omitempty" db:"color"`
	Mileage      int       `json:"mileage" db:"mileage"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type RegisterVehicleInput struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"licensePlate"`
	Color        string `json:"color,omitempty"`
	Mileage      *int   `json:"mileage,omitempty"`
}

func (in *RegisterVehicleInput) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.Make) == "" {
		fields["make"] = "make is required"
	}
	if strings.TrimSpace(in.Model) == "" {
		fields["model"] = "model is required"
	}
	if strings.TrimSpace(in.VIN) == "" {
		fields["vin"] = "vin is required"
	}
	if strings.TrimSpace(in.LicensePlate) == "" {
		fields["licensePlate"] = "licensePlate is required"
	}

	maxYear := time.Now().Year() + 1
	if in.Year < minVehicleYear || in.Year > maxYear {
		fields["year"] = fmt.Sprintf("year must be between %d and %d", minVehicleYear, maxYear)
	}

	if in.Mileage != nil && *in.Mileage < 0 {
		fields["mileage"] = "mileage must not be negative"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// UpdateVehicleInput carries the mutable subset of a vehicle. Nil fields are
// left untouched; make, model, year, VIN and owner are immutable after creation.
type UpdateVehicleInput struct {
	Color        *string `json:"color,omitempty"`
	Mileage      *int    `json:"mileage,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`
}

func (in *UpdateVehicleInput) Validate() error {
	fields := map[string]string{}

	if in.Mileage != nil && *in.Mileage < 0 {
		fields["mileage"] = "mileage must not be negative"
	}
	if in.LicensePlate != nil && strings.TrimSpace(*in.LicensePlate) == "" {
		fields["licensePlate"] = "licensePlate must not be blank"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
