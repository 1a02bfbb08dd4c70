package return_payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
)

// Request модель запроса на расчет возврата: чек-лист осмотра автомобиля
type Request struct {
	ScheduleID int64     // ID расписания
	ReturnedAt time.Time // Фактическое время возврата

	Mileage   int64 // Показания одометра при возврате, км
	FuelLevel int   // Уровень топлива при возврате, процент полного бака (0-100)

	DamagedBodywork bool // Повреждения кузова
	DamagedInterior bool // Повреждения салона
	DamagedTires    bool // Повреждения шин
	DamagedGlass    bool // Повреждения стекол

	Notes *string // Примечания оператора
}

// Response модель ответа с разбивкой итоговой оплаты
type Response struct {
	ScheduleID int64
	Status     string // Статус расписания после расчета (settled)

	BaseAmount decimal.Decimal // Базовая стоимость аренды

	LateDays int             // Количество начатых дней просрочки
	LateFee  decimal.Decimal // Штраф за просрочку

	DamagedCategories []string        // Отмеченные категории повреждений
	DamageFee         decimal.Decimal // Штраф за повреждения

	ExtraMileage int64           // Пробег сверх лимита, км
	MileageFee   decimal.Decimal // Плата за превышение пробега

	FuelShortfall int             // Недостающий уровень топлива, процентные пункты
	FuelFee       decimal.Decimal // Плата за дозаправку

	FinalAmount decimal.Decimal // Итоговая сумма к оплате

	// Ссылка на квитанцию; nil, если генерация не удалась
	Receipt *docservice.DocumentRef

	// Некритичная ошибка генерации квитанции; расчет при этом зафиксирован
	DocumentError *string
}
