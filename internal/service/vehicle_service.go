package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/pkg/identifier"
	"vehicle-service/internal/repository"
)

const (
	idGenerationAttempts = 3

	customerListCacheTTL = 5 * time.Minute
)

type VehicleService interface {
	Register(ctx context.Context, customerID string, input domain.RegisterVehicleInput) (*domain.Vehicle, error)
	ListForCustomer(ctx context.Context, customerID string) ([]domain.Vehicle, error)
	ListAll(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Vehicle, error)
	Update(ctx context.Context, id string, scope domain.Scope, input domain.UpdateVehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string, scope domain.Scope) error
	SetPhotoCascade(cascade PhotoCascade)
}

// PhotoCascade is the slice of the photo service the vehicle-deletion path
// needs. Wired after construction because the two services reference each other.
type PhotoCascade interface {
	DeleteAllForVehicle(ctx context.Context, vehicleID string) error
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	idgen       *identifier.Generator
	redis       *redis.Client
	logger      *zap.Logger
	cascade     PhotoCascade
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, idgen *identifier.Generator, redis *redis.Client, logger *zap.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		idgen:       idgen,
		redis:       redis,
		logger:      logger,
	}
}

func (s *vehicleService) SetPhotoCascade(cascade PhotoCascade) {
	s.cascade = cascade
}

func (s *vehicleService) Register(ctx context.Context, customerID string, input domain.RegisterVehicleInput) (*domain.Vehicle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vin := strings.ToUpper(strings.TrimSpace(input.VIN))

	existing, err := s.vehicleRepo.GetByVIN(ctx, vin)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("duplicate VIN registration attempt", zap.String("vin", vin))
		return nil, ErrDuplicateVIN
	}

	mileage := 0
	if input.Mileage != nil {
		mileage = *input.Mileage
	}

	vehicle := &domain.Vehicle{
		CustomerID:   customerID,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		VIN:          vin,
		LicensePlate: input.LicensePlate,
		Color:        input.Color,
		Mileage:      mileage,
	}

	// The 4-char suffix can collide; retry with a fresh ID before giving up.
	for attempt := 0; attempt < idGenerationAttempts; attempt++ {
		vehicle.ID = s.idgen.VehicleID(input.Make, input.Model, input.Year)

		err = s.vehicleRepo.Create(ctx, vehicle)
		if err == nil {
			break
		}
		if repository.IsUniqueViolation(err, repository.VehicleVINConstraint) {
			return nil, ErrDuplicateVIN
		}
		if repository.IsUniqueViolation(err, repository.VehicleIDConstraint) {
			s.logger.Warn("vehicle ID collision, regenerating", zap.String("id", vehicle.ID))
			continue
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("register vehicle: %w", err)
	}

	s.invalidateCustomerCache(ctx, customerID)

	s.logger.Info("vehicle registered",
		zap.String("vehicle_id", vehicle.ID),
		zap.String("customer_id", customerID))

	return vehicle, nil
}

func (s *vehicleService) ListForCustomer(ctx context.Context, customerID string) ([]domain.Vehicle, error) {
	if cached, ok := s.cachedCustomerList(ctx, customerID); ok {
		return cached, nil
	}

	vehicles, err := s.vehicleRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	s.cacheCustomerList(ctx, customerID, vehicles)
	return vehicles, nil
}

func (s *vehicleService) ListAll(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListAll(ctx)
}

func (s *vehicleService) GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

func (s *vehicleService) Update(ctx context.Context, id string, scope domain.Scope, input domain.UpdateVehicleInput) (*domain.Vehicle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vehicle, err := s.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}

	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.Mileage != nil {
		vehicle.Mileage = *input.Mileage
	}
	if input.LicensePlate != nil {
		vehicle.LicensePlate = *input.LicensePlate
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	s.invalidateCustomerCache(ctx, vehicle.CustomerID)

	s.logger.Info("vehicle updated", zap.String("vehicle_id", id))
	return vehicle, nil
}

// Delete removes the vehicle row, then cascades to photo metadata and files.
// The cascade is best-effort: a failure after the row is gone is logged loudly
// rather than rolled back, since the file store is not transactional.
func (s *vehicleService) Delete(ctx context.Context, id string, scope domain.Scope) error {
	vehicle, err := s.GetByID(ctx, id, scope)
	if err != nil {
		return err
	}

	if err := s.vehicleRepo.Delete(ctx, vehicle.ID); err != nil {
		return err
	}

	s.invalidateCustomerCache(ctx, vehicle.CustomerID)

	if s.cascade != nil {
		if err := s.cascade.DeleteAllForVehicle(ctx, vehicle.ID); err != nil {
			s.logger.Error("photo cascade failed after vehicle deletion, orphaned photos remain",
				zap.String("vehicle_id", vehicle.ID),
				zap.Error(err))
		}
	}

	s.logger.Info("vehicle deleted",
		zap.String("vehicle_id", vehicle.ID),
		zap.String("customer_id", vehicle.CustomerID))
	return nil
}

func customerListCacheKey(customerID string) string {
	return "vehicles:customer:" + customerID
}

func (s *vehicleService) cachedCustomerList(ctx context.Context, customerID string) ([]domain.Vehicle, bool) {
	if s.redis == nil {
		return nil, false
	}

	raw, err := s.redis.Get(ctx, customerListCacheKey(customerID)).Bytes()
	if err != nil {
		return nil, false
	}

	var vehicles []domain.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, false
	}
	return vehicles, true
}

func (s *vehicleService) cacheCustomerList(ctx context.Context, customerID string, vehicles []domain.Vehicle) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(vehicles)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, customerListCacheKey(customerID), raw, customerListCacheTTL).Err()
}

func (s *vehicleService) invalidateCustomerCache(ctx context.Context, customerID string) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, customerListCacheKey(customerID)).Err()
}
