package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dateutil"
)

// Calculator считает стоимость аренды автомобиля на интервале дат.
// Вся арифметика - на decimal, без накопления ошибок float.
type Calculator struct{}

// NewCalculator создает новый экземпляр калькулятора стоимости
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Quote возвращает стоимость аренды автомобиля на интервале [start, end):
// количество оплачиваемых суток (неполные сутки округляются вверх),
// умноженное на дневной тариф. Результат округлен до копеек (half-up).
func (c *Calculator) Quote(vehicle *domain.Vehicle, start, end time.Time) (decimal.Decimal, error) {
	if !end.After(start) {
		return decimal.Zero, ErrInvalidRange
	}

	days := dateutil.RentalDays(start, end)
	amount := vehicle.DailyRate.Mul(decimal.NewFromInt(int64(days)))

	return amount.Round(domain.MoneyScale), nil
}
