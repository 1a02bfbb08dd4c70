package update_vehicle

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/vehicles"
)

// UpdateVehicleRequest HTTP request model
type UpdateVehicleRequest struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Category     string `json:"category"`
	LicensePlate string `json:"licensePlate"`
	DailyRate    string `json:"dailyRate"` // "150.00"
	Mileage      int64  `json:"mileage"`
	FuelLevel    int    `json:"fuelLevel"`
}

// VehicleResponse HTTP response model
type VehicleResponse struct {
	ID           int64  `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Category     string `json:"category"`
	LicensePlate string `json:"licensePlate"`
	DailyRate    string `json:"dailyRate"`
	Mileage      int64  `json:"mileage"`
	FuelLevel    int    `json:"fuelLevel"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateVehicleRequest) ToServiceRequest(vehicleID int64) (*vehicles.UpdateVehicleRequest, error) {
	dailyRate, err := decimal.NewFromString(r.DailyRate)
	if err != nil {
		return nil, err
	}

	return &vehicles.UpdateVehicleRequest{
		ID:           vehicleID,
		Brand:        r.Brand,
		Model:        r.Model,
		Category:     r.Category,
		LicensePlate: r.LicensePlate,
		DailyRate:    dailyRate,
		Mileage:      r.Mileage,
		FuelLevel:    r.FuelLevel,
	}, nil
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Category:     v.Category,
		LicensePlate: v.LicensePlate,
		DailyRate:    v.DailyRate.StringFixed(domain.MoneyScale),
		Mileage:      v.Mileage,
		FuelLevel:    v.FuelLevel,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}
