package service

import (
	"context"

	"go.uber.org/zap"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/repository"
)

// HistoryService is the seam for the maintenance-tracking integration.
// The remote call is not built yet, so after the ownership check it always
// answers with an empty history.
type HistoryService interface {
	GetHistory(ctx context.Context, vehicleID string, scope domain.Scope) ([]domain.ServiceHistory, error)
}

type historyService struct {
	vehicleRepo repository.VehicleRepository
	logger      *zap.Logger
}

func NewHistoryService(vehicleRepo repository.VehicleRepository, logger *zap.Logger) HistoryService {
	return &historyService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (s *historyService) GetHistory(ctx context.Context, vehicleID string, scope domain.Scope) ([]domain.ServiceHistory, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID, scope)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	s.logger.Debug("service history requested, integration not yet implemented",
		zap.String("vehicle_id", vehicleID))
	return []domain.ServiceHistory{}, nil
}
