package service

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"vehicle-service/internal/config"
	"vehicle-service/internal/pkg/identifier"
	"vehicle-service/internal/repository"
	"vehicle-service/internal/storage"
)

type Services struct {
	Vehicle VehicleService
	Photo   PhotoService
	History HistoryService
}

func NewServices(repos *repository.Repositories, store storage.PhotoStorage, redis *redis.Client, idgen *identifier.Generator, cfg *config.Config, logger *zap.Logger) *Services {
	vehicleService := NewVehicleService(repos.Vehicle, idgen, redis, logger)
	photoService := NewPhotoService(repos.Photo, repos.Vehicle, store, cfg.PublicURLPrefix, logger)
	vehicleService.SetPhotoCascade(photoService)

	return &Services{
		Vehicle: vehicleService,
		Photo:   photoService,
		History: NewHistoryService(repos.Vehicle, logger),
	}
}
