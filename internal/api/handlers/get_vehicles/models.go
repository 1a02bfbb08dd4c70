package get_vehicles

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

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

// VehicleListResponse HTTP response model списка автомобилей
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(vehicles []*domain.Vehicle) *VehicleListResponse {
	result := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, VehicleResponse{
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
		})
	}
	return &VehicleListResponse{Vehicles: result}
}
