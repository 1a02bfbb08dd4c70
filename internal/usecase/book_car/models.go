package book_car

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
)

// Request модель запроса на бронирование автомобиля
type Request struct {
	PersonID  int64     // ID клиента
	VehicleID int64     // ID автомобиля
	StartDate time.Time // Начало аренды
	EndDate   time.Time // Конец аренды (не включается, интервал полуоткрытый)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ScheduleID int64           // ID созданного расписания
	PersonID   int64           // ID клиента
	VehicleID  int64           // ID автомобиля
	StartDate  time.Time       // Начало аренды
	EndDate    time.Time       // Конец аренды
	Status     string          // Статус расписания (booked)
	Amount     decimal.Decimal // Базовая стоимость аренды
	CreatedAt  time.Time       // Время создания

	// Ссылка на договор аренды; nil, если генерация не удалась
	Contract *docservice.DocumentRef

	// Некритичная ошибка генерации договора; бронирование при этом зафиксировано
	DocumentError *string
}
