package availability

import (
	"context"
	"fmt"
	"time"
)

// Checker проверяет доступность автомобиля на интервале дат.
// Проверка работает поверх активных расписаний (booked, returned) с полуоткрытой
// семантикой [start, end): бронирование, заканчивающееся ровно в момент начала
// другого, конфликтом не считается.
//
// Проверка является быстрой предварительной: авторитетная защита от двойного
// бронирования - exclusion constraint на уровне хранилища.
type Checker struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(scheduleRepo ScheduleRepository, logger Logger) *Checker {
	return &Checker{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// IsAvailable проверяет, свободен ли автомобиль на интервале [start, end).
// excludingScheduleID позволяет исключить из проверки собственное расписание
// (используется при повторной валидации на пути расчета возврата).
// Отсутствие расписаний - валидный результат "доступен", а не ошибка.
func (c *Checker) IsAvailable(ctx context.Context, vehicleID int64, start, end time.Time, excludingScheduleID *int64) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidRange
	}

	count, err := c.scheduleRepo.CountOverlapping(ctx, vehicleID, start, end, excludingScheduleID)
	if err != nil {
		c.logger.Error("IsAvailable: failed to count overlapping schedules for vehicle=%d: %v", vehicleID, err)
		return false, fmt.Errorf("%w: failed to count overlapping schedules: %v", ErrInternal, err)
	}

	return count == 0, nil
}
