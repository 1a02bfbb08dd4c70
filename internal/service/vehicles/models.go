package vehicles

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CreateVehicleRequest запрос на добавление автомобиля в каталог
type CreateVehicleRequest struct {
	Brand        string
	Model        string
	Category     string
	LicensePlate string
	DailyRate    decimal.Decimal
	Mileage      int64
	FuelLevel    int
}

// UpdateVehicleRequest запрос на обновление данных автомобиля
type UpdateVehicleRequest struct {
	ID           int64
	Brand        string
	Model        string
	Category     string
	LicensePlate string
	DailyRate    decimal.Decimal
	Mileage      int64
	FuelLevel    int
}

// toDomain конвертирует запрос создания в доменную модель
func (r *CreateVehicleRequest) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		Brand:        r.Brand,
		Model:        r.Model,
		Category:     r.Category,
		LicensePlate: r.LicensePlate,
		DailyRate:    r.DailyRate,
		Mileage:      r.Mileage,
		FuelLevel:    r.FuelLevel,
	}
}

// toDomain конвертирует запрос обновления в доменную модель
func (r *UpdateVehicleRequest) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:           r.ID,
		Brand:        r.Brand,
		Model:        r.Model,
		Category:     r.Category,
		LicensePlate: r.LicensePlate,
		DailyRate:    r.DailyRate,
		Mileage:      r.Mileage,
		FuelLevel:    r.FuelLevel,
	}
}
