package book_car

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("book_car: vehicle not found")

	// ErrPersonNotFound возвращается, когда клиент не найден
	ErrPersonNotFound = errors.New("book_car: person not found")

	// ErrScheduleConflict возвращается, когда автомобиль занят на запрошенном интервале.
	// Срабатывание предварительной проверки и нарушение storage-level ограничения
	// при записи возвращаются одинаково: вызывающий не различает проигранную гонку.
	ErrScheduleConflict = errors.New("book_car: vehicle is not available for the requested dates")

	// ErrInvalidRange возвращается при некорректном интервале дат (end <= start)
	ErrInvalidRange = errors.New("book_car: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_car: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_car: internal error")
)
