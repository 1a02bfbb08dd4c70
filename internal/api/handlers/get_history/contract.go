package get_history

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetHistoryByDocument(ctx context.Context, document string) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
