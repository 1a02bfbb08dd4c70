package book_car

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
	bookCar "github.com/m04kA/SMC-RentalService/internal/usecase/book_car"
)

// BookCarRequest HTTP request model
type BookCarRequest struct {
	VehicleID int64  `json:"vehicleId"`
	StartDate string `json:"startDate"` // "2026-03-01"
	EndDate   string `json:"endDate"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ScheduleID int64  `json:"scheduleId"`
	PersonID   int64  `json:"personId"`
	VehicleID  int64  `json:"vehicleId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
	Amount     string `json:"amount"`
	CreatedAt  string `json:"createdAt"`

	Contract      *docservice.DocumentRef `json:"contract,omitempty"`
	DocumentError *string                 `json:"documentError,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// ID клиента берется из контекста аутентификации, а не из тела запроса.
func (r *BookCarRequest) ToUseCaseRequest(personID int64) (*bookCar.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &bookCar.Request{
		PersonID:  personID,
		VehicleID: r.VehicleID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookCar.Response) *BookingResponse {
	return &BookingResponse{
		ScheduleID:    resp.ScheduleID,
		PersonID:      resp.PersonID,
		VehicleID:     resp.VehicleID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Status:        resp.Status,
		Amount:        resp.Amount.StringFixed(domain.MoneyScale),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		Contract:      resp.Contract,
		DocumentError: resp.DocumentError,
	}
}
