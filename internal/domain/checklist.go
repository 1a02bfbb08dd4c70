package domain

import "time"

// DamageCategory is a damage area inspected at vehicle return
type DamageCategory string

const (
	DamageBodywork DamageCategory = "bodywork"
	DamageInterior DamageCategory = "interior"
	DamageTires    DamageCategory = "tires"
	DamageGlass    DamageCategory = "glass"
)

// Checklist is the return-time inspection record for a booked schedule.
// A checklist may be submitted at most once per schedule.
type Checklist struct {
	ScheduleID int64
	ReturnedAt time.Time

	// Odometer reading observed at return, in kilometers
	Mileage int64

	// Fuel level observed at return, percent of a full tank (0-100)
	FuelLevel int

	DamagedBodywork bool
	DamagedInterior bool
	DamagedTires    bool
	DamagedGlass    bool

	Notes *string
}

// Damaged returns true if the given category is flagged on the checklist
func (c *Checklist) Damaged(category DamageCategory) bool {
	switch category {
	case DamageBodywork:
		return c.DamagedBodywork
	case DamageInterior:
		return c.DamagedInterior
	case DamageTires:
		return c.DamagedTires
	case DamageGlass:
		return c.DamagedGlass
	}
	return false
}

// DamagedCategories returns the list of damage categories flagged on the checklist
func (c *Checklist) DamagedCategories() []DamageCategory {
	categories := make([]DamageCategory, 0, len(AllDamageCategories))
	for _, category := range AllDamageCategories {
		if c.Damaged(category) {
			categories = append(categories, category)
		}
	}
	return categories
}

// HasDamage returns true if at least one damage category is flagged
func (c *Checklist) HasDamage() bool {
	return c.DamagedBodywork || c.DamagedInterior || c.DamagedTires || c.DamagedGlass
}
