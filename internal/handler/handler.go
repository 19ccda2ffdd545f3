package handler

import (
	"vehicle-service/internal/config"
	"vehicle-service/internal/service"
)

type Handlers struct {
	Vehicle *VehicleHandler
	Photo   *PhotoHandler
	History *HistoryHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Vehicle: NewVehicleHandler(services.Vehicle),
		Photo:   NewPhotoHandler(services.Photo, cfg.MaxPhotoSizeMB*1024*1024),
		History: NewHistoryHandler(services.History),
	}
}
