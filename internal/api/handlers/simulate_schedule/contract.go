package simulate_schedule

import (
	"context"

	simulateSchedule "github.com/m04kA/SMC-RentalService/internal/usecase/simulate_schedule"
)

type SimulateScheduleUseCase interface {
	Execute(ctx context.Context, req *simulateSchedule.Request) (*simulateSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
