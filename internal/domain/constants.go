package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Fuel level bounds, percent of a full tank
const (
	MinFuelLevel = 0
	MaxFuelLevel = 100
)

// Money is rounded to the currency minor unit
const (
	MoneyScale = 2
)

// ActiveStatuses список статусов, блокирующих автомобиль на интервале расписания.
// Используется проверкой доступности: пересечение с любым из них - конфликт.
var ActiveStatuses = []ScheduleStatus{
	StatusBooked,
	StatusReturned,
}

// AllDamageCategories список всех категорий повреждений, известных чек-листу
var AllDamageCategories = []DamageCategory{
	DamageBodywork,
	DamageInterior,
	DamageTires,
	DamageGlass,
}
