package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle represents a vehicle in the rental catalog.
// Mileage and FuelLevel are the checkout baselines used by settlement.
type Vehicle struct {
	ID           int64
	Brand        string
	Model        string
	Category     string
	LicensePlate string

	DailyRate decimal.Decimal

	// Odometer reading at checkout, in kilometers
	Mileage int64

	// Fuel level at checkout, percent of a full tank (0-100)
	FuelLevel int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidFuelLevel returns true if the fuel level is within the 0-100 range
func (v *Vehicle) HasValidFuelLevel() bool {
	return v.FuelLevel >= MinFuelLevel && v.FuelLevel <= MaxFuelLevel
}
