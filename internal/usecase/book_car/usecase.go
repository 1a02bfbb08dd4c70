package book_car

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	personRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/person"
	scheduleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/schedule"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
)

// UseCase use case бронирования автомобиля.
//
// Все валидации выполняются до записи: при отказе ничего частичного не фиксируется.
// Проверка доступности и вставка выполняются в сериализуемой транзакции, что сужает
// окно гонки check-then-act до единственной записи; авторитетная защита - exclusion
// constraint в хранилище, нарушение которого транслируется в тот же ErrScheduleConflict.
type UseCase struct {
	scheduleRepo ScheduleRepository
	vehicleRepo  VehicleRepository
	personRepo   PersonRepository
	availability AvailabilityChecker
	pricing      PricingCalculator
	docsClient   DocServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	vehicleRepo VehicleRepository,
	personRepo PersonRepository,
	availability AvailabilityChecker,
	pricing PricingCalculator,
	docsClient DocServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		vehicleRepo:  vehicleRepo,
		personRepo:   personRepo,
		availability: availability,
		pricing:      pricing,
		docsClient:   docsClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case бронирования автомобиля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookCar: person=%d, vehicle=%d, start=%s, end=%s",
		req.PersonID, req.VehicleID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookCar: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	person, err := uc.personRepo.GetByID(ctx, req.PersonID)
	if err != nil {
		if errors.Is(err, personRepo.ErrPersonNotFound) {
			uc.logger.Warn("BookCar: person id=%d not found", req.PersonID)
			return nil, ErrPersonNotFound
		}
		uc.logger.Error("BookCar: failed to get person id=%d: %v", req.PersonID, err)
		return nil, fmt.Errorf("%w: failed to get person: %v", ErrInternal, err)
	}

	// 3. Проверяем существование автомобиля
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("BookCar: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("BookCar: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 4. Считаем базовую стоимость
	amount, err := uc.pricing.Quote(vehicle, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("BookCar: quote failed for vehicle=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: quote failed: %v", ErrInternal, err)
	}

	var created *domain.Schedule

	// 5. Проверка доступности + вставка в сериализуемой транзакции.
	// Симуляция могла устареть - проверка здесь авторитетная.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		available, err := uc.availability.IsAvailable(txCtx, req.VehicleID, req.StartDate, req.EndDate, nil)
		if err != nil {
			uc.logger.Error("BookCar: availability check failed for vehicle=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("BookCar: vehicle=%d is not available for [%s, %s)",
				req.VehicleID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
			return ErrScheduleConflict
		}

		schedule := &domain.Schedule{
			VehicleID:  req.VehicleID,
			PersonID:   req.PersonID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			Status:     domain.StatusBooked,
			BaseAmount: amount,
		}

		created, err = uc.scheduleRepo.Create(txCtx, schedule)
		if err != nil {
			// Проигранная гонка: ограничение хранилища сработало после успешной
			// предварительной проверки. Возвращаем тот же конфликт.
			if errors.Is(err, scheduleRepo.ErrScheduleConflict) {
				uc.logger.Warn("BookCar: storage constraint rejected overlapping schedule for vehicle=%d", req.VehicleID)
				return ErrScheduleConflict
			}
			uc.logger.Error("BookCar: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookCar: schedule id=%d created, amount=%s",
		created.ID, created.BaseAmount.StringFixed(domain.MoneyScale))

	response := &Response{
		ScheduleID: created.ID,
		PersonID:   created.PersonID,
		VehicleID:  created.VehicleID,
		StartDate:  created.StartDate,
		EndDate:    created.EndDate,
		Status:     string(created.Status),
		Amount:     created.BaseAmount,
		CreatedAt:  created.CreatedAt,
	}

	// 6. Договор генерируется после фиксации бронирования. Его сбой не откатывает
	// бронирование: расписание - источник истины, документ можно перегенерировать.
	contract, err := uc.docsClient.RenderContract(ctx, created, vehicle, person)
	if err != nil {
		uc.logger.Error("BookCar: contract rendering failed for schedule=%d: %v", created.ID, err)
		docErr := err.Error()
		response.DocumentError = &docErr
		return response, nil
	}
	response.Contract = contract

	return response, nil
}
