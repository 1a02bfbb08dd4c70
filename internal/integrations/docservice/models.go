package docservice

// DocumentRef ссылка на сгенерированный документ
type DocumentRef struct {
	ID   string `json:"id"`
	Kind string `json:"kind"` // contract, receipt, statement
	URL  string `json:"url"`
}

// Виды документов
const (
	KindContract  = "contract"
	KindReceipt   = "receipt"
	KindStatement = "statement"
)

// contractPayload данные для генерации договора аренды
type contractPayload struct {
	ScheduleID   int64  `json:"scheduleId"`
	PersonName   string `json:"personName"`
	Document     string `json:"document"`
	VehicleBrand string `json:"vehicleBrand"`
	VehicleModel string `json:"vehicleModel"`
	LicensePlate string `json:"licensePlate"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Amount       string `json:"amount"`
}

// receiptPayload данные для генерации квитанции об оплате возврата
type receiptPayload struct {
	ScheduleID  int64    `json:"scheduleId"`
	BaseAmount  string   `json:"baseAmount"`
	LateFee     string   `json:"lateFee"`
	DamageFee   string   `json:"damageFee"`
	MileageFee  string   `json:"mileageFee"`
	FuelFee     string   `json:"fuelFee"`
	FinalAmount string   `json:"finalAmount"`
	Damages     []string `json:"damages,omitempty"`
}

// statementPayload данные для генерации выписки по истории аренд
type statementPayload struct {
	PersonName string              `json:"personName"`
	Document   string              `json:"document"`
	Schedules  []statementSchedule `json:"schedules"`
}

type statementSchedule struct {
	ScheduleID int64   `json:"scheduleId"`
	VehicleID  int64   `json:"vehicleId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Status     string  `json:"status"`
	BaseAmount string  `json:"baseAmount"`
	FinalAmount *string `json:"finalAmount,omitempty"`
}

// errorResponse модель ошибки от сервиса документов
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
