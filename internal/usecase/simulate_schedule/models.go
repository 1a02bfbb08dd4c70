package simulate_schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на симуляцию стоимости аренды
type Request struct {
	VehicleID int64     // ID автомобиля
	StartDate time.Time // Начало аренды
	EndDate   time.Time // Конец аренды (не включается, интервал полуоткрытый)
}

// Response модель ответа с рассчитанной стоимостью.
// Симуляция - чистая проекция: ничего не сохраняется.
type Response struct {
	VehicleID int64           // ID автомобиля
	StartDate time.Time       // Начало аренды
	EndDate   time.Time       // Конец аренды
	Days      int             // Количество оплачиваемых суток
	Amount    decimal.Decimal // Рассчитанная стоимость
}
