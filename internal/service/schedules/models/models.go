package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
)

// ScheduleResponse ответ с данными расписания аренды
type ScheduleResponse struct {
	ID          int64   `json:"id"`
	VehicleID   int64   `json:"vehicleId"`
	PersonID    int64   `json:"personId"`
	StartDate   string  `json:"startDate"` // "2024-01-01"
	EndDate     string  `json:"endDate"`
	Status      string  `json:"status"`
	BaseAmount  string  `json:"baseAmount"`
	FinalAmount *string `json:"finalAmount,omitempty"`

	ReturnedAt      *string `json:"returnedAt,omitempty"` // ISO 8601
	ReturnMileage   *int64  `json:"returnMileage,omitempty"`
	ReturnFuelLevel *int    `json:"returnFuelLevel,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HistoryResponse ответ с историей аренд клиента и ссылкой на выписку
type HistoryResponse struct {
	PersonID   int64                    `json:"personId"`
	PersonName string                   `json:"personName"`
	Document   string                   `json:"document"`
	Schedules  []ScheduleResponse       `json:"schedules"`
	Statement  *docservice.DocumentRef  `json:"statement,omitempty"`

	// Некритичная ошибка генерации выписки; история при этом валидна
	DocumentError *string `json:"documentError,omitempty"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ID:         s.ID,
		VehicleID:  s.VehicleID,
		PersonID:   s.PersonID,
		StartDate:  s.StartDate.Format(domain.DateFormat),
		EndDate:    s.EndDate.Format(domain.DateFormat),
		Status:     string(s.Status),
		BaseAmount: s.BaseAmount.StringFixed(domain.MoneyScale),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}

	if s.FinalAmount != nil {
		final := s.FinalAmount.StringFixed(domain.MoneyScale)
		resp.FinalAmount = &final
	}
	if s.ReturnedAt != nil {
		returned := s.ReturnedAt.Format(time.RFC3339)
		resp.ReturnedAt = &returned
	}
	resp.ReturnMileage = s.ReturnMileage
	resp.ReturnFuelLevel = s.ReturnFuelLevel

	return resp
}

// FromDomainScheduleList конвертирует список domain моделей в DTO
func FromDomainScheduleList(schedules []*domain.Schedule) []ScheduleResponse {
	result := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		if resp := FromDomainSchedule(s); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
