package dateutil

import "time"

const hoursPerDay = 24

// RentalDays возвращает количество оплачиваемых суток аренды для интервала [start, end).
// Неполные сутки округляются вверх: клиент платит за целый день.
// Для некорректного интервала (end <= start) возвращает 0.
func RentalDays(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}

	hours := end.Sub(start).Hours()
	days := int(hours) / hoursPerDay
	if hours > float64(days*hoursPerDay) {
		days++
	}
	return days
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Совпадение границ (один интервал заканчивается ровно там, где начинается другой)
// пересечением не считается.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// LateDays возвращает количество дней просрочки возврата.
// Неполные сутки просрочки считаются полным днем. Если возврат не позже срока, возвращает 0.
func LateDays(scheduledEnd, actualReturn time.Time) int {
	return RentalDays(scheduledEnd, actualReturn)
}
