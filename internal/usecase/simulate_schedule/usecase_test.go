package simulate_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/pricing"
)

type mockVehicleRepo struct {
	vehicle *domain.Vehicle
	err     error
}

func (m *mockVehicleRepo) GetByID(context.Context, int64) (*domain.Vehicle, error) {
	return m.vehicle, m.err
}

type mockAvailability struct {
	available bool
	err       error
	calls     int
}

func (m *mockAvailability) IsAvailable(context.Context, int64, time.Time, time.Time, *int64) (bool, error) {
	m.calls++
	return m.available, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testVehicle(rate string) *domain.Vehicle {
	return &domain.Vehicle{
		ID:        1,
		Brand:     "Fiat",
		Model:     "Mobi",
		DailyRate: decimal.RequireFromString(rate),
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("successful simulation quotes days times rate", func(t *testing.T) {
		uc := NewUseCase(
			&mockVehicleRepo{vehicle: testVehicle("150.00")},
			&mockAvailability{available: true},
			pricing.NewCalculator(),
			nopLogger{},
		)

		resp, err := uc.Execute(ctx, &Request{
			VehicleID: 1,
			StartDate: date(2026, 3, 1),
			EndDate:   date(2026, 3, 3),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.VehicleID)
		assert.Equal(t, 2, resp.Days)
		assert.Equal(t, "300.00", resp.Amount.StringFixed(2))
	})

	t.Run("vehicle not found", func(t *testing.T) {
		uc := NewUseCase(
			&mockVehicleRepo{err: vehicleRepo.ErrVehicleNotFound},
			&mockAvailability{available: true},
			pricing.NewCalculator(),
			nopLogger{},
		)

		_, err := uc.Execute(ctx, &Request{
			VehicleID: 999,
			StartDate: date(2026, 3, 1),
			EndDate:   date(2026, 3, 3),
		})

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("vehicle not available", func(t *testing.T) {
		uc := NewUseCase(
			&mockVehicleRepo{vehicle: testVehicle("150.00")},
			&mockAvailability{available: false},
			pricing.NewCalculator(),
			nopLogger{},
		)

		_, err := uc.Execute(ctx, &Request{
			VehicleID: 1,
			StartDate: date(2026, 3, 1),
			EndDate:   date(2026, 3, 3),
		})

		assert.ErrorIs(t, err, ErrScheduleConflict)
	})

	t.Run("invalid range rejected before repository calls", func(t *testing.T) {
		availability := &mockAvailability{available: true}
		uc := NewUseCase(
			&mockVehicleRepo{vehicle: testVehicle("150.00")},
			availability,
			pricing.NewCalculator(),
			nopLogger{},
		)

		_, err := uc.Execute(ctx, &Request{
			VehicleID: 1,
			StartDate: date(2026, 3, 3),
			EndDate:   date(2026, 3, 1),
		})

		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Zero(t, availability.calls)
	})

	t.Run("invalid vehicle id", func(t *testing.T) {
		uc := NewUseCase(
			&mockVehicleRepo{vehicle: testVehicle("150.00")},
			&mockAvailability{available: true},
			pricing.NewCalculator(),
			nopLogger{},
		)

		_, err := uc.Execute(ctx, &Request{
			VehicleID: 0,
			StartDate: date(2026, 3, 1),
			EndDate:   date(2026, 3, 3),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
