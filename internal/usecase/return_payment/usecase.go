package return_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-RentalService/pkg/dateutil"
)

// UseCase use case расчета возврата автомобиля.
//
// Чек-лист принимается не более одного раза: повторный расчет по тому же
// расписанию отклоняется. Расчет детерминирован - один и тот же чек-лист
// с одной и той же политикой всегда дает одну и ту же разбивку.
type UseCase struct {
	scheduleRepo ScheduleRepository
	vehicleRepo  VehicleRepository
	docsClient   DocServiceClient
	txManager    TransactionManager
	policy       *domain.SettlementPolicy
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	vehicleRepo VehicleRepository,
	docsClient DocServiceClient,
	txManager TransactionManager,
	policy *domain.SettlementPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		vehicleRepo:  vehicleRepo,
		docsClient:   docsClient,
		txManager:    txManager,
		policy:       policy,
		logger:       logger,
	}
}

// Execute выполняет use case расчета возврата автомобиля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReturnPayment: schedule=%d, mileage=%d, fuel=%d, returnedAt=%s",
		req.ScheduleID, req.Mileage, req.FuelLevel, req.ReturnedAt.Format(domain.DateFormat))

	// 1. Валидация чек-листа
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReturnPayment: validation failed: %v", err)
		return nil, err
	}

	var settlement *domain.Settlement

	// 2. Чтение, расчет и запись в одной транзакции. GetByID внутри транзакции
	// блокирует строку, guard статуса в Settle отсекает повторный расчет.
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		schedule, err := uc.scheduleRepo.GetByID(txCtx, req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("ReturnPayment: schedule id=%d not found", req.ScheduleID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("ReturnPayment: failed to get schedule id=%d: %v", req.ScheduleID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		if !schedule.CanBeSettled() {
			uc.logger.Warn("ReturnPayment: schedule id=%d has status %s, cannot be settled",
				schedule.ID, schedule.Status)
			return ErrInvalidState
		}

		vehicle, err := uc.vehicleRepo.GetByID(txCtx, schedule.VehicleID)
		if err != nil {
			uc.logger.Error("ReturnPayment: failed to get vehicle id=%d: %v", schedule.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
		}

		if req.Mileage < vehicle.Mileage {
			uc.logger.Warn("ReturnPayment: schedule id=%d return mileage %d below checkout baseline %d",
				schedule.ID, req.Mileage, vehicle.Mileage)
			return fmt.Errorf("%w: return mileage is below the checkout baseline", ErrInvalidInput)
		}

		checklist := &domain.Checklist{
			ScheduleID:      req.ScheduleID,
			ReturnedAt:      req.ReturnedAt,
			Mileage:         req.Mileage,
			FuelLevel:       req.FuelLevel,
			DamagedBodywork: req.DamagedBodywork,
			DamagedInterior: req.DamagedInterior,
			DamagedTires:    req.DamagedTires,
			DamagedGlass:    req.DamagedGlass,
			Notes:           req.Notes,
		}

		settlement = computeSettlement(schedule, vehicle, checklist, uc.policy)

		err = uc.scheduleRepo.Settle(
			txCtx,
			schedule.ID,
			settlement.FinalAmount,
			req.ReturnedAt,
			req.Mileage,
			req.FuelLevel,
		)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotSettleable) {
				uc.logger.Warn("ReturnPayment: schedule id=%d already settled", schedule.ID)
				return ErrInvalidState
			}
			uc.logger.Error("ReturnPayment: failed to settle schedule id=%d: %v", schedule.ID, err)
			return fmt.Errorf("%w: failed to settle schedule: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReturnPayment: schedule id=%d settled, base=%s, final=%s",
		settlement.ScheduleID,
		settlement.BaseAmount.StringFixed(domain.MoneyScale),
		settlement.FinalAmount.StringFixed(domain.MoneyScale))

	damages := make([]string, 0, len(settlement.DamagedCategories))
	for _, category := range settlement.DamagedCategories {
		damages = append(damages, string(category))
	}

	response := &Response{
		ScheduleID:        settlement.ScheduleID,
		Status:            string(domain.StatusSettled),
		BaseAmount:        settlement.BaseAmount,
		LateDays:          settlement.LateDays,
		LateFee:           settlement.LateFee,
		DamagedCategories: damages,
		DamageFee:         settlement.DamageFee,
		ExtraMileage:      settlement.ExtraMileage,
		MileageFee:        settlement.MileageFee,
		FuelShortfall:     settlement.FuelShortfall,
		FuelFee:           settlement.FuelFee,
		FinalAmount:       settlement.FinalAmount,
	}

	// 3. Квитанция генерируется после фиксации расчета. Ее сбой не откатывает
	// расчет: итоговая сумма уже записана на расписании.
	receipt, err := uc.docsClient.RenderReceipt(ctx, settlement)
	if err != nil {
		uc.logger.Error("ReturnPayment: receipt rendering failed for schedule=%d: %v", settlement.ScheduleID, err)
		docErr := err.Error()
		response.DocumentError = &docErr
		return response, nil
	}
	response.Receipt = receipt

	return response, nil
}

// computeSettlement рассчитывает разбивку итоговой оплаты по чек-листу и политике.
// Каждая составляющая неотрицательна: итог не бывает меньше базовой стоимости.
func computeSettlement(
	schedule *domain.Schedule,
	vehicle *domain.Vehicle,
	checklist *domain.Checklist,
	policy *domain.SettlementPolicy,
) *domain.Settlement {
	settlement := &domain.Settlement{
		ScheduleID: schedule.ID,
		BaseAmount: schedule.BaseAmount,
		LateFee:    decimal.Zero,
		DamageFee:  decimal.Zero,
		MileageFee: decimal.Zero,
		FuelFee:    decimal.Zero,
	}

	// Просрочка: каждый начатый день после планового конца аренды
	settlement.LateDays = dateutil.LateDays(schedule.EndDate, checklist.ReturnedAt)
	if settlement.LateDays > 0 {
		settlement.LateFee = policy.LateFeePerDay.
			Mul(decimal.NewFromInt(int64(settlement.LateDays))).
			Round(domain.MoneyScale)
	}

	// Повреждения: фиксированная ставка за каждую отмеченную категорию
	settlement.DamagedCategories = checklist.DamagedCategories()
	for _, category := range settlement.DamagedCategories {
		settlement.DamageFee = settlement.DamageFee.Add(policy.DamageCharge(category))
	}
	settlement.DamageFee = settlement.DamageFee.Round(domain.MoneyScale)

	// Пробег: километры сверх лимита, отсчет от показаний при выдаче
	driven := checklist.Mileage - vehicle.Mileage
	if driven > policy.MileageAllowanceKm {
		settlement.ExtraMileage = driven - policy.MileageAllowanceKm
		settlement.MileageFee = policy.MileageFeePerKm.
			Mul(decimal.NewFromInt(settlement.ExtraMileage)).
			Round(domain.MoneyScale)
	}

	// Топливо: недостача относительно уровня при выдаче, пропорционально цене полного бака
	if checklist.FuelLevel < vehicle.FuelLevel {
		settlement.FuelShortfall = vehicle.FuelLevel - checklist.FuelLevel
		settlement.FuelFee = policy.FullTankCharge.
			Mul(decimal.NewFromInt(int64(settlement.FuelShortfall))).
			Div(decimal.NewFromInt(int64(domain.MaxFuelLevel))).
			Round(domain.MoneyScale)
	}

	settlement.FinalAmount = settlement.BaseAmount.
		Add(settlement.LateFee).
		Add(settlement.DamageFee).
		Add(settlement.MileageFee).
		Add(settlement.FuelFee).
		Round(domain.MoneyScale)

	return settlement
}
