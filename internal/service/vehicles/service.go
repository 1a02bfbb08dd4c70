package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
)

// Service сервис каталога автомобилей
type Service struct {
	vehicleRepo  VehicleRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(vehicleRepo VehicleRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// List возвращает все автомобили каталога
func (s *Service) List(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return vehicles, nil
}

// Create добавляет автомобиль в каталог
func (s *Service) Create(ctx context.Context, req *CreateVehicleRequest) (*domain.Vehicle, error) {
	if err := validateVehicleFields(req.Brand, req.Model, req.LicensePlate, req.FuelLevel, req.Mileage); err != nil {
		return nil, err
	}
	if !req.DailyRate.IsPositive() {
		return nil, fmt.Errorf("%w: daily rate must be positive", ErrInvalidInput)
	}

	created, err := s.vehicleRepo.Create(ctx, req.toDomain())
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrDuplicateLicensePlate) {
			s.logger.Warn("Create: license plate %s already registered", req.LicensePlate)
			return nil, ErrDuplicateLicensePlate
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: vehicle id=%d added to catalog (%s %s, plate=%s)",
		created.ID, created.Brand, created.Model, created.LicensePlate)
	return created, nil
}

// Update обновляет данные автомобиля
func (s *Service) Update(ctx context.Context, req *UpdateVehicleRequest) (*domain.Vehicle, error) {
	if err := validateVehicleFields(req.Brand, req.Model, req.LicensePlate, req.FuelLevel, req.Mileage); err != nil {
		return nil, err
	}
	if !req.DailyRate.IsPositive() {
		return nil, fmt.Errorf("%w: daily rate must be positive", ErrInvalidInput)
	}

	updated, err := s.vehicleRepo.Update(ctx, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
			s.logger.Warn("Update: vehicle id=%d not found", req.ID)
			return nil, ErrVehicleNotFound
		case errors.Is(err, vehicleRepo.ErrDuplicateLicensePlate):
			s.logger.Warn("Update: license plate %s already registered", req.LicensePlate)
			return nil, ErrDuplicateLicensePlate
		default:
			s.logger.Error("Update: repository error for vehicle id=%d: %v", req.ID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: vehicle id=%d updated", updated.ID)
	return updated, nil
}

// Delete удаляет автомобиль из каталога.
// Автомобиль с действующими бронированиями удалить нельзя.
func (s *Service) Delete(ctx context.Context, id int64) error {
	active, err := s.scheduleRepo.CountActiveByVehicle(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count active schedules for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count active schedules: %v", ErrInternal, err)
	}
	if active > 0 {
		s.logger.Warn("Delete: vehicle id=%d has %d active schedules", id, active)
		return ErrVehicleInUse
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Delete: vehicle id=%d not found", id)
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: vehicle id=%d removed from catalog", id)
	return nil
}

// validateVehicleFields валидирует общие поля запросов создания и обновления
func validateVehicleFields(brand, model, licensePlate string, fuelLevel int, mileage int64) error {
	if brand == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if licensePlate == "" {
		return fmt.Errorf("%w: license plate is required", ErrInvalidInput)
	}
	if fuelLevel < domain.MinFuelLevel || fuelLevel > domain.MaxFuelLevel {
		return fmt.Errorf("%w: fuel level must be between %d and %d", ErrInvalidInput, domain.MinFuelLevel, domain.MaxFuelLevel)
	}
	if mileage < 0 {
		return fmt.Errorf("%w: mileage must not be negative", ErrInvalidInput)
	}
	return nil
}
