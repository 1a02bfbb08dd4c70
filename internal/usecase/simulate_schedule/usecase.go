package simulate_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/pkg/dateutil"
)

// UseCase use case симуляции стоимости аренды.
// Симуляция носит справочный характер: она не резервирует автомобиль и ничего
// не сохраняет. Авторитетная проверка доступности выполняется при бронировании.
type UseCase struct {
	vehicleRepo  VehicleRepository
	availability AvailabilityChecker
	pricing      PricingCalculator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicleRepo VehicleRepository,
	availability AvailabilityChecker,
	pricing PricingCalculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicleRepo:  vehicleRepo,
		availability: availability,
		pricing:      pricing,
		logger:       logger,
	}
}

// Execute выполняет use case симуляции стоимости аренды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SimulateSchedule: vehicle=%d, start=%s, end=%s",
		req.VehicleID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SimulateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем автомобиль
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("SimulateSchedule: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("SimulateSchedule: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Проверяем доступность на интервале
	available, err := uc.availability.IsAvailable(ctx, req.VehicleID, req.StartDate, req.EndDate, nil)
	if err != nil {
		uc.logger.Error("SimulateSchedule: availability check failed for vehicle=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("SimulateSchedule: vehicle=%d is not available for [%s, %s)",
			req.VehicleID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return nil, ErrScheduleConflict
	}

	// 4. Считаем стоимость
	amount, err := uc.pricing.Quote(vehicle, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("SimulateSchedule: quote failed for vehicle=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: quote failed: %v", ErrInternal, err)
	}

	uc.logger.Info("SimulateSchedule: vehicle=%d quoted %s for %d day(s)",
		req.VehicleID, amount.StringFixed(domain.MoneyScale), dateutil.RentalDays(req.StartDate, req.EndDate))

	return &Response{
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Days:      dateutil.RentalDays(req.StartDate, req.EndDate),
		Amount:    amount,
	}, nil
}
