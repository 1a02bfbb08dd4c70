package return_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
)

type mockScheduleRepo struct {
	schedule *domain.Schedule
	getErr   error

	settleErr    error
	settleCalls  int
	settledFinal decimal.Decimal
}

func (m *mockScheduleRepo) GetByID(context.Context, int64) (*domain.Schedule, error) {
	return m.schedule, m.getErr
}

func (m *mockScheduleRepo) Settle(_ context.Context, _ int64, finalAmount decimal.Decimal, _ time.Time, _ int64, _ int) error {
	m.settleCalls++
	if m.settleErr != nil {
		return m.settleErr
	}
	m.settledFinal = finalAmount
	return nil
}

type mockVehicleRepo struct {
	vehicle *domain.Vehicle
	err     error
}

func (m *mockVehicleRepo) GetByID(context.Context, int64) (*domain.Vehicle, error) {
	return m.vehicle, m.err
}

type mockDocsClient struct {
	ref   *docservice.DocumentRef
	err   error
	calls int
}

func (m *mockDocsClient) RenderReceipt(context.Context, *domain.Settlement) (*docservice.DocumentRef, error) {
	m.calls++
	return m.ref, m.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testPolicy() *domain.SettlementPolicy {
	return &domain.SettlementPolicy{
		LateFeePerDay: decimal.RequireFromString("50.00"),
		DamageCharges: map[domain.DamageCategory]decimal.Decimal{
			domain.DamageBodywork: decimal.RequireFromString("400.00"),
			domain.DamageInterior: decimal.RequireFromString("150.00"),
			domain.DamageTires:    decimal.RequireFromString("300.00"),
			domain.DamageGlass:    decimal.RequireFromString("200.00"),
		},
		MileageAllowanceKm: 100,
		MileageFeePerKm:    decimal.RequireFromString("0.75"),
		FullTankCharge:     decimal.RequireFromString("250.00"),
	}
}

// Бронирование на 2 дня по тарифу 100.00, выдача с пробегом 10000 и полным баком
func bookedSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID:         10,
		VehicleID:  1,
		PersonID:   3,
		StartDate:  date(2026, 3, 1),
		EndDate:    date(2026, 3, 3),
		Status:     domain.StatusBooked,
		BaseAmount: decimal.RequireFromString("200.00"),
	}
}

func testVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:        1,
		Brand:     "Fiat",
		Model:     "Mobi",
		DailyRate: decimal.RequireFromString("100.00"),
		Mileage:   10000,
		FuelLevel: 100,
	}
}

// Чистый возврат в срок: без повреждений, в пределах лимита пробега, полный бак
func cleanRequest() *Request {
	return &Request{
		ScheduleID: 10,
		ReturnedAt: date(2026, 3, 3),
		Mileage:    10050,
		FuelLevel:  100,
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(schedules *mockScheduleRepo, docs *mockDocsClient) *UseCase {
		return NewUseCase(
			schedules,
			&mockVehicleRepo{vehicle: testVehicle()},
			docs,
			fakeTxManager{},
			testPolicy(),
			nopLogger{},
		)
	}

	t.Run("clean return charges base amount only", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		docs := &mockDocsClient{ref: &docservice.DocumentRef{ID: "doc-2", Kind: docservice.KindReceipt}}
		uc := newUseCase(schedules, docs)

		resp, err := uc.Execute(ctx, cleanRequest())

		require.NoError(t, err)
		assert.Equal(t, "200.00", resp.BaseAmount.StringFixed(2))
		assert.Equal(t, "200.00", resp.FinalAmount.StringFixed(2))
		assert.Zero(t, resp.LateDays)
		assert.Empty(t, resp.DamagedCategories)
		assert.Equal(t, string(domain.StatusSettled), resp.Status)
		assert.Equal(t, "200.00", schedules.settledFinal.StringFixed(2))
		require.NotNil(t, resp.Receipt)
		assert.Equal(t, "doc-2", resp.Receipt.ID)
	})

	t.Run("one day late adds late fee", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		uc := newUseCase(schedules, &mockDocsClient{ref: &docservice.DocumentRef{ID: "doc-2"}})

		req := cleanRequest()
		req.ReturnedAt = date(2026, 3, 4)

		resp, err := uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.LateDays)
		assert.Equal(t, "50.00", resp.LateFee.StringFixed(2))
		assert.Equal(t, "250.00", resp.FinalAmount.StringFixed(2))
	})

	t.Run("partial late day counts as full day", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		uc := newUseCase(schedules, &mockDocsClient{ref: &docservice.DocumentRef{ID: "doc-2"}})

		req := cleanRequest()
		req.ReturnedAt = date(2026, 3, 3).Add(3 * time.Hour)

		resp, err := uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.LateDays)
		assert.Equal(t, "250.00", resp.FinalAmount.StringFixed(2))
	})

	t.Run("damage categories charged per flag", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		uc := newUseCase(schedules, &mockDocsClient{ref: &docservice.DocumentRef{ID: "doc-2"}})

		req := cleanRequest()
		req.DamagedBodywork = true
		req.DamagedGlass = true

		resp, err := uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"bodywork", "glass"}, resp.DamagedCategories)
		assert.Equal(t, "600.00", resp.DamageFee.StringFixed(2))
		assert.Equal(t, "800.00", resp.FinalAmount.StringFixed(2))
	})

	t.Run("mileage over allowance charged per km", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		uc := newUseCase(schedules, &mockDocsClient{ref: &docservice.DocumentRef{ID: "doc-2"}})

		req := cleanRequest()
		req.Mileage = 10140 // 140 km driven, allowance 100

		resp, err := uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(40), resp.ExtraMileage)
		assert.Equal(t, "30.00", resp.MileageFee.StringFixed(2))
		assert.Equal(t, "230.00", resp.FinalAmount.StringFixed(2))
	})

	t.Run("fuel shortfall charged proportionally", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		uc := newUseCase(schedules, &mockDocsClient{ref: &docservice.DocumentRef{ID: "doc-2"}})

		req := cleanRequest()
		req.FuelLevel = 60 // 40 п.п. недостачи от полного бака за 250.00

		resp, err := uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 40, resp.FuelShortfall)
		assert.Equal(t, "100.00", resp.FuelFee.StringFixed(2))
		assert.Equal(t, "300.00", resp.FinalAmount.StringFixed(2))
	})

	t.Run("all penalties accumulate", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		uc := newUseCase(schedules, &mockDocsClient{ref: &docservice.DocumentRef{ID: "doc-2"}})

		req := cleanRequest()
		req.ReturnedAt = date(2026, 3, 4) // +50.00
		req.DamagedInterior = true        // +150.00
		req.Mileage = 10140               // +30.00
		req.FuelLevel = 60                // +100.00

		resp, err := uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "530.00", resp.FinalAmount.StringFixed(2))
	})

	t.Run("schedule not found", func(t *testing.T) {
		schedules := &mockScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound}
		uc := newUseCase(schedules, &mockDocsClient{})

		_, err := uc.Execute(ctx, cleanRequest())

		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("already settled schedule rejected", func(t *testing.T) {
		settled := bookedSchedule()
		settled.Status = domain.StatusSettled
		schedules := &mockScheduleRepo{schedule: settled}
		uc := newUseCase(schedules, &mockDocsClient{})

		_, err := uc.Execute(ctx, cleanRequest())

		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Zero(t, schedules.settleCalls)
	})

	t.Run("lost race on settle guard maps to invalid state", func(t *testing.T) {
		schedules := &mockScheduleRepo{
			schedule:  bookedSchedule(),
			settleErr: scheduleRepo.ErrScheduleNotSettleable,
		}
		uc := newUseCase(schedules, &mockDocsClient{})

		_, err := uc.Execute(ctx, cleanRequest())

		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("return mileage below checkout baseline rejected", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		uc := newUseCase(schedules, &mockDocsClient{})

		req := cleanRequest()
		req.Mileage = 9000

		_, err := uc.Execute(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, schedules.settleCalls)
	})

	t.Run("receipt rendering failure does not fail settlement", func(t *testing.T) {
		schedules := &mockScheduleRepo{schedule: bookedSchedule()}
		docs := &mockDocsClient{err: errors.New("docservice unavailable")}
		uc := newUseCase(schedules, docs)

		resp, err := uc.Execute(ctx, cleanRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, schedules.settleCalls)
		assert.Nil(t, resp.Receipt)
		require.NotNil(t, resp.DocumentError)
		assert.Contains(t, *resp.DocumentError, "docservice unavailable")
	})

	t.Run("invalid fuel level rejected", func(t *testing.T) {
		uc := newUseCase(&mockScheduleRepo{schedule: bookedSchedule()}, &mockDocsClient{})

		req := cleanRequest()
		req.FuelLevel = 120

		_, err := uc.Execute(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
