package domain

import "github.com/shopspring/decimal"

// SettlementPolicy holds the business rates used to price a vehicle return.
// The values are operational policy, sourced from configuration rather than code.
type SettlementPolicy struct {
	// Charged per started day of late return
	LateFeePerDay decimal.Decimal

	// Flat charge per flagged damage category
	DamageCharges map[DamageCategory]decimal.Decimal

	// Kilometers included in the rental before the overage fee applies
	MileageAllowanceKm int64

	// Charged per kilometer above the allowance
	MileageFeePerKm decimal.Decimal

	// Price of a full tank; fuel shortfall is charged proportionally
	FullTankCharge decimal.Decimal
}

// DamageCharge returns the configured charge for a category, zero if not configured
func (p *SettlementPolicy) DamageCharge(category DamageCategory) decimal.Decimal {
	if charge, ok := p.DamageCharges[category]; ok {
		return charge
	}
	return decimal.Zero
}
