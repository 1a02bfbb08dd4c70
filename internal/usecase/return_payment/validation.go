package return_payment

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует данные чек-листа
func validateRequest(req *Request) error {
	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
	}

	if req.ReturnedAt.IsZero() {
		return fmt.Errorf("%w: returnedAt is required", ErrInvalidInput)
	}

	if req.Mileage < 0 {
		return fmt.Errorf("%w: mileage must not be negative", ErrInvalidInput)
	}

	if req.FuelLevel < domain.MinFuelLevel || req.FuelLevel > domain.MaxFuelLevel {
		return fmt.Errorf("%w: fuelLevel must be between %d and %d",
			ErrInvalidInput, domain.MinFuelLevel, domain.MaxFuelLevel)
	}

	return nil
}
