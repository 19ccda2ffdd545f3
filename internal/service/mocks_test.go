package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"vehicle-service/internal/domain"
)

type mockVehicleRepository struct {
	mock.Mock
}

func (m *mockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id string, scope domain.Scope) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) GetByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) ListAll(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *mockVehicleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVehicleRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockPhotoRepository struct {
	mock.Mock
}

func (m *mockPhotoRepository) Create(ctx context.Context, photo *domain.VehiclePhoto) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *mockPhotoRepository) GetByID(ctx context.Context, id string) (*domain.VehiclePhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehiclePhoto), args.Error(1)
}

func (m *mockPhotoRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.VehiclePhoto, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.VehiclePhoto), args.Error(1)
}

func (m *mockPhotoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPhotoRepository) DeleteByVehicle(ctx context.Context, vehicleID string) (int64, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(int64), args.Error(1)
}

type mockPhotoStorage struct {
	mock.Mock
}

func (m *mockPhotoStorage) Save(ctx context.Context, vehicleID, fileName string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, vehicleID, fileName, r, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockPhotoStorage) Open(ctx context.Context, vehicleID, fileName string) (io.ReadCloser, error) {
	args := m.Called(ctx, vehicleID, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *mockPhotoStorage) Remove(ctx context.Context, location string) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *mockPhotoStorage) RemoveAll(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

type mockPhotoCascade struct {
	mock.Mock
}

func (m *mockPhotoCascade) DeleteAllForVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}
