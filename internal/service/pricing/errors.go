package pricing

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном интервале дат (end <= start)
	ErrInvalidRange = errors.New("pricing: invalid date range")
)
