package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/service"
)

type mockVehicleService struct {
	mock.Mock
}

func (m *mockVehicleService) Register(ctx context.Context, customerID string, input domain.RegisterVehicleInput) (*domain.Vehicle, error) {
	args := m.Called(ctx, customerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleService) ListForCustomer(ctx context.Context, customerID string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *mockVehicleService) ListAll(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *mockVehicleService) GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleService) Update(ctx context.Context, id string, scope domain.Scope, input domain.UpdateVehicleInput) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, scope, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleService) Delete(ctx context.Context, id string, scope domain.Scope) error {
	args := m.Called(ctx, id, scope)
	return args.Error(0)
}

func (m *mockVehicleService) SetPhotoCascade(cascade service.PhotoCascade) {
	m.Called(cascade)
}

type mockPhotoService struct {
	mock.Mock
}

func (m *mockPhotoService) Upload(ctx context.Context, vehicleID string, scope domain.Scope, files []domain.UploadFile) (*domain.PhotoUploadResult, error) {
	args := m.Called(ctx, vehicleID, scope, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PhotoUploadResult), args.Error(1)
}

func (m *mockPhotoService) ListForVehicle(ctx context.Context, vehicleID string, scope domain.Scope) ([]domain.VehiclePhoto, error) {
	args := m.Called(ctx, vehicleID, scope)
	return args.Get(0).([]domain.VehiclePhoto), args.Error(1)
}

func (m *mockPhotoService) GetByID(ctx context.Context, photoID string, scope domain.Scope) (*domain.VehiclePhoto, error) {
	args := m.Called(ctx, photoID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehiclePhoto), args.Error(1)
}

func (m *mockPhotoService) LoadAsResource(ctx context.Context, vehicleID, fileName string, scope domain.Scope) (io.ReadCloser, string, error) {
	args := m.Called(ctx, vehicleID, fileName, scope)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *mockPhotoService) DeleteSingle(ctx context.Context, photoID string, scope domain.Scope) error {
	args := m.Called(ctx, photoID, scope)
	return args.Error(0)
}

func (m *mockPhotoService) DeleteAllForVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

type mockHistoryService struct {
	mock.Mock
}

func (m *mockHistoryService) GetHistory(ctx context.Context, vehicleID string, scope domain.Scope) ([]domain.ServiceHistory, error) {
	args := m.Called(ctx, vehicleID, scope)
	return args.Get(0).([]domain.ServiceHistory), args.Error(1)
}
