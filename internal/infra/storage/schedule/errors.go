package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrScheduleConflict возвращается при нарушении exclusion constraint на пересекающиеся
	// интервалы одного автомобиля. Авторитетная защита от двойного бронирования.
	ErrScheduleConflict = errors.New("schedule.repository: overlapping schedule for vehicle")

	// ErrScheduleNotSettleable возвращается, когда расписание нельзя закрыть
	// (оно уже рассчитано или не находится в статусе booked)
	ErrScheduleNotSettleable = errors.New("schedule.repository: schedule is not in a settleable status")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
