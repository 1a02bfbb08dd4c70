package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleStatus represents the lifecycle status of a rental schedule
type ScheduleStatus string

const (
	// StatusSimulated is a transient status: a simulated schedule is a cost
	// projection and is never persisted
	StatusSimulated ScheduleStatus = "simulated"
	StatusBooked    ScheduleStatus = "booked"
	StatusReturned  ScheduleStatus = "returned"
	StatusSettled   ScheduleStatus = "settled"
)

// Schedule represents a vehicle rental reservation for a person over a time window.
// The window is half-open: [StartDate, EndDate).
type Schedule struct {
	ID        int64
	VehicleID int64
	PersonID  int64
	StartDate time.Time
	EndDate   time.Time
	Status    ScheduleStatus

	// BaseAmount is computed at booking time from the vehicle daily rate
	BaseAmount decimal.Decimal

	// Settlement data, set only when the schedule reaches StatusSettled
	FinalAmount     *decimal.Decimal
	ReturnedAt      *time.Time
	ReturnMileage   *int64
	ReturnFuelLevel *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the schedule still blocks the vehicle for its window
func (s *Schedule) IsActive() bool {
	return s.Status == StatusBooked || s.Status == StatusReturned
}

// CanBeSettled returns true if a return checklist may be submitted for the schedule
func (s *Schedule) CanBeSettled() bool {
	return s.Status == StatusBooked
}

// IsSettled returns true if the schedule reached its terminal status
func (s *Schedule) IsSettled() bool {
	return s.Status == StatusSettled
}

// HasValidWindow returns true if the rental window is well-formed
func (s *Schedule) HasValidWindow() bool {
	return s.EndDate.After(s.StartDate)
}
