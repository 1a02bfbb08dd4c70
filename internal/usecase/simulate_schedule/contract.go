package simulate_schedule

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// AvailabilityChecker интерфейс проверки доступности автомобиля
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, vehicleID int64, start, end time.Time, excludingScheduleID *int64) (bool, error)
}

// PricingCalculator интерфейс калькулятора стоимости аренды
type PricingCalculator interface {
	Quote(vehicle *domain.Vehicle, start, end time.Time) (decimal.Decimal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
