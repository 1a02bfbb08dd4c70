package return_payment

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
	returnPayment "github.com/m04kA/SMC-RentalService/internal/usecase/return_payment"
)

// ReturnChecklistRequest HTTP request model: чек-лист осмотра при возврате
type ReturnChecklistRequest struct {
	ReturnedAt string `json:"returnedAt"` // ISO 8601; пустое значение - текущий момент

	Mileage   int64 `json:"mileage"`
	FuelLevel int   `json:"fuelLevel"`

	DamagedBodywork bool `json:"damagedBodywork"`
	DamagedInterior bool `json:"damagedInterior"`
	DamagedTires    bool `json:"damagedTires"`
	DamagedGlass    bool `json:"damagedGlass"`

	Notes *string `json:"notes,omitempty"`
}

// SettlementResponse HTTP response model: разбивка итоговой оплаты
type SettlementResponse struct {
	ScheduleID int64  `json:"scheduleId"`
	Status     string `json:"status"`

	BaseAmount string `json:"baseAmount"`

	LateDays int    `json:"lateDays"`
	LateFee  string `json:"lateFee"`

	DamagedCategories []string `json:"damagedCategories"`
	DamageFee         string   `json:"damageFee"`

	ExtraMileage int64  `json:"extraMileage"`
	MileageFee   string `json:"mileageFee"`

	FuelShortfall int    `json:"fuelShortfall"`
	FuelFee       string `json:"fuelFee"`

	FinalAmount string `json:"finalAmount"`

	Receipt       *docservice.DocumentRef `json:"receipt,omitempty"`
	DocumentError *string                 `json:"documentError,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReturnChecklistRequest) ToUseCaseRequest(scheduleID int64, now time.Time) (*returnPayment.Request, error) {
	returnedAt := now
	if r.ReturnedAt != "" {
		parsed, err := time.Parse(time.RFC3339, r.ReturnedAt)
		if err != nil {
			return nil, err
		}
		returnedAt = parsed
	}

	return &returnPayment.Request{
		ScheduleID:      scheduleID,
		ReturnedAt:      returnedAt,
		Mileage:         r.Mileage,
		FuelLevel:       r.FuelLevel,
		DamagedBodywork: r.DamagedBodywork,
		DamagedInterior: r.DamagedInterior,
		DamagedTires:    r.DamagedTires,
		DamagedGlass:    r.DamagedGlass,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *returnPayment.Response) *SettlementResponse {
	return &SettlementResponse{
		ScheduleID:        resp.ScheduleID,
		Status:            resp.Status,
		BaseAmount:        resp.BaseAmount.StringFixed(domain.MoneyScale),
		LateDays:          resp.LateDays,
		LateFee:           resp.LateFee.StringFixed(domain.MoneyScale),
		DamagedCategories: resp.DamagedCategories,
		DamageFee:         resp.DamageFee.StringFixed(domain.MoneyScale),
		ExtraMileage:      resp.ExtraMileage,
		MileageFee:        resp.MileageFee.StringFixed(domain.MoneyScale),
		FuelShortfall:     resp.FuelShortfall,
		FuelFee:           resp.FuelFee.StringFixed(domain.MoneyScale),
		FinalAmount:       resp.FinalAmount.StringFixed(domain.MoneyScale),
		Receipt:           resp.Receipt,
		DocumentError:     resp.DocumentError,
	}
}
