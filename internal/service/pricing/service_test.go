package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func testVehicle(rate string) *domain.Vehicle {
	return &domain.Vehicle{
		ID:        1,
		Brand:     "Fiat",
		Model:     "Mobi",
		DailyRate: decimal.RequireFromString(rate),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculator_Quote(t *testing.T) {
	calc := NewCalculator()

	t.Run("two days at daily rate", func(t *testing.T) {
		amount, err := calc.Quote(testVehicle("100.00"), date(2026, 3, 1), date(2026, 3, 3))

		require.NoError(t, err)
		assert.Equal(t, "200.00", amount.StringFixed(2))
	})

	t.Run("partial day charged as full day", func(t *testing.T) {
		start := date(2026, 3, 1)
		end := start.Add(25 * time.Hour)

		amount, err := calc.Quote(testVehicle("100.00"), start, end)

		require.NoError(t, err)
		assert.Equal(t, "200.00", amount.StringFixed(2))
	})

	t.Run("fractional rate stays exact", func(t *testing.T) {
		amount, err := calc.Quote(testVehicle("99.95"), date(2026, 3, 1), date(2026, 3, 4))

		require.NoError(t, err)
		assert.Equal(t, "299.85", amount.StringFixed(2))
	})

	t.Run("end equal to start is invalid", func(t *testing.T) {
		_, err := calc.Quote(testVehicle("100.00"), date(2026, 3, 1), date(2026, 3, 1))

		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("end before start is invalid", func(t *testing.T) {
		_, err := calc.Quote(testVehicle("100.00"), date(2026, 3, 3), date(2026, 3, 1))

		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
