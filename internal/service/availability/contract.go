package availability

import (
	"context"
	"time"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	CountOverlapping(ctx context.Context, vehicleID int64, start, end time.Time, excludingID *int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
