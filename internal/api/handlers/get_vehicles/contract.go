package get_vehicles

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type VehicleService interface {
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
