package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicles: vehicle not found")

	// ErrDuplicateLicensePlate возвращается при попытке зарегистрировать
	// автомобиль с уже существующим госномером
	ErrDuplicateLicensePlate = errors.New("vehicles: license plate already registered")

	// ErrVehicleInUse возвращается при попытке удалить автомобиль
	// с действующими бронированиями
	ErrVehicleInUse = errors.New("vehicles: vehicle has active schedules")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("vehicles: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vehicles: internal error")
)
