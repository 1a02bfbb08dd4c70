package domain

import "github.com/shopspring/decimal"

// Settlement is the derived final-payment breakdown produced at vehicle return.
// It is never persisted: only the final amount is recorded on the schedule.
type Settlement struct {
	ScheduleID int64

	BaseAmount decimal.Decimal

	LateDays int
	LateFee  decimal.Decimal

	DamagedCategories []DamageCategory
	DamageFee         decimal.Decimal

	ExtraMileage int64
	MileageFee   decimal.Decimal

	FuelShortfall int
	FuelFee       decimal.Decimal

	FinalAmount decimal.Decimal
}

// HasPenalties returns true if any fee beyond the base amount was charged
func (s *Settlement) HasPenalties() bool {
	return s.LateFee.IsPositive() ||
		s.DamageFee.IsPositive() ||
		s.MileageFee.IsPositive() ||
		s.FuelFee.IsPositive()
}
