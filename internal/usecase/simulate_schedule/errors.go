package simulate_schedule

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("simulate_schedule: vehicle not found")

	// ErrScheduleConflict возвращается, когда автомобиль занят на запрошенном интервале
	ErrScheduleConflict = errors.New("simulate_schedule: vehicle is not available for the requested dates")

	// ErrInvalidRange возвращается при некорректном интервале дат (end <= start)
	ErrInvalidRange = errors.New("simulate_schedule: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("simulate_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("simulate_schedule: internal error")
)
