package person

import "errors"

var (
	// ErrPersonNotFound возвращается, когда клиент не найден
	ErrPersonNotFound = errors.New("person.repository: person not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("person.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("person.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("person.repository: failed to scan row")
)
