// Package seed populates an empty database with a deterministic sample
// fleet for development environments. Customer IDs match the usernames the
// auth service seeds, since the gateway forwards usernames in X-User-Subject.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/repository"
)

type sampleVehicle struct {
	id           string
	customerID   string
	make         string
	model        string
	year         int
	licensePlate string
	color        string
	mileage      int
}

var sampleFleet = []sampleVehicle{
	{"VEH-2022-TOYOTA-CAMRY-0001", "customer", "Toyota", "Camry", 2022, "CAA-1234", "Pearl White", 15000},
	{"VEH-2021-HONDA-ACCORD-0002", "customer", "Honda", "Accord", 2021, "CAB-5678", "Silver", 28000},
	{"VEH-2023-BMW-X5-0003", "testuser", "BMW", "X5", 2023, "CAC-9012", "Black", 8000},
	{"VEH-2020-MERCEDES-C300-0004", "testuser", "Mercedes-Benz", "C300", 2020, "CAD-3456", "Midnight Blue", 45000},
	{"VEH-2022-NISSAN-ALTIMA-0005", "demo", "Nissan", "Altima", 2022, "CAE-7890", "Blue", 27000},
	{"VEH-2019-MAZDA-CX5-0006", "demo", "Mazda", "CX-5", 2019, "CAF-2345", "Red", 62000},
}

// Seed inserts the sample fleet when the vehicles table is empty. Safe to
// call on every startup.
func Seed(ctx context.Context, vehicleRepo repository.VehicleRepository, logger *zap.Logger) error {
	count, err := vehicleRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("skipping seed, vehicles table is not empty", zap.Int64("count", count))
		return nil
	}

	rnd := rand.New(rand.NewSource(42))

	for _, sample := range sampleFleet {
		vehicle := &domain.Vehicle{
			ID:           sample.id,
			CustomerID:   sample.customerID,
			Make:         sample.make,
			Model:        sample.model,
			Year:         sample.year,
			VIN:          syntheticVIN(rnd),
			LicensePlate: sample.licensePlate,
			Color:        sample.color,
			Mileage:      sample.mileage,
		}

		if err := vehicleRepo.Create(ctx, vehicle); err != nil {
			return fmt.Errorf("seed vehicle %s: %w", sample.id, err)
		}
	}

	logger.Info("seeded sample vehicles", zap.Int("count", len(sampleFleet)))
	return nil
}

// syntheticVIN builds a 17-character VIN-shaped string. Not a valid check
// digit, just unique and realistic enough for development data.
func syntheticVIN(rnd *rand.Rand) string {
	const alphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"
	b := make([]byte, 17)
	for i := range b {
		b[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(b)
}
