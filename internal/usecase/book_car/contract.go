package book_car

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// PersonRepository интерфейс репозитория клиентов
type PersonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
}

// AvailabilityChecker интерфейс проверки доступности автомобиля
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, vehicleID int64, start, end time.Time, excludingScheduleID *int64) (bool, error)
}

// PricingCalculator интерфейс калькулятора стоимости аренды
type PricingCalculator interface {
	Quote(vehicle *domain.Vehicle, start, end time.Time) (decimal.Decimal, error)
}

// DocServiceClient интерфейс клиента сервиса документов
type DocServiceClient interface {
	RenderContract(ctx context.Context, schedule *domain.Schedule, vehicle *domain.Vehicle, person *domain.Person) (*docservice.DocumentRef, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
