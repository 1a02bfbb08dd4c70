package docservice

import "errors"

var (
	// ErrRenderFailed возвращается, когда сервис документов не смог сгенерировать документ.
	// Ошибка некритичная: бронирование или расчет к этому моменту уже зафиксированы,
	// документ можно перегенерировать позже.
	ErrRenderFailed = errors.New("docservice client: document rendering failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("docservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("docservice client: invalid response")
)
