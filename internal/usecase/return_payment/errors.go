package return_payment

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("return_payment: schedule not found")

	// ErrInvalidState возвращается, когда расписание нельзя закрыть:
	// оно уже рассчитано или еще не переведено в статус booked
	ErrInvalidState = errors.New("return_payment: schedule cannot be settled in its current status")

	// ErrInvalidInput возвращается при некорректных данных чек-листа
	ErrInvalidInput = errors.New("return_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("return_payment: internal error")
)
