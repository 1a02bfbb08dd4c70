package simulate_schedule

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	simulateSchedule "github.com/m04kA/SMC-RentalService/internal/usecase/simulate_schedule"
)

// SimulateScheduleRequest HTTP request model
type SimulateScheduleRequest struct {
	VehicleID int64  `json:"vehicleId"`
	StartDate string `json:"startDate"` // "2026-03-01"
	EndDate   string `json:"endDate"`
}

// SimulationResponse HTTP response model
type SimulationResponse struct {
	VehicleID int64  `json:"vehicleId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SimulateScheduleRequest) ToUseCaseRequest() (*simulateSchedule.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &simulateSchedule.Request{
		VehicleID: r.VehicleID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *simulateSchedule.Response) *SimulationResponse {
	return &SimulationResponse{
		VehicleID: resp.VehicleID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Days:      resp.Days,
		Amount:    resp.Amount.StringFixed(domain.MoneyScale),
		Status:    string(domain.StatusSimulated),
	}
}
