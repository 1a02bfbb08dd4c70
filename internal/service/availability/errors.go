package availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном интервале дат (end <= start)
	ErrInvalidRange = errors.New("availability: invalid date range")

	// ErrInternal возвращается при внутренних ошибках проверки доступности
	ErrInternal = errors.New("availability: internal error")
)
