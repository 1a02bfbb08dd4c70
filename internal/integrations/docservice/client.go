package docservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс счетчика генераций документов
type Metrics interface {
	IncDocumentRender(kind, result string)
}

// Client клиент для работы с сервисом генерации PDF-документов.
// Сервис потребляется как непрозрачный рендерер: движок передает данные,
// обратно получает ссылку на документ.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента сервиса документов.
// metrics может быть nil, если сбор метрик отключен.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// RenderContract генерирует договор аренды для созданного бронирования
func (c *Client) RenderContract(ctx context.Context, schedule *domain.Schedule, vehicle *domain.Vehicle, person *domain.Person) (*DocumentRef, error) {
	payload := contractPayload{
		ScheduleID:   schedule.ID,
		PersonName:   person.Name,
		Document:     person.Document,
		VehicleBrand: vehicle.Brand,
		VehicleModel: vehicle.Model,
		LicensePlate: vehicle.LicensePlate,
		StartDate:    schedule.StartDate.Format(domain.DateFormat),
		EndDate:      schedule.EndDate.Format(domain.DateFormat),
		Amount:       schedule.BaseAmount.StringFixed(domain.MoneyScale),
	}

	return c.render(ctx, KindContract, payload)
}

// RenderReceipt генерирует квитанцию об итоговой оплате при возврате автомобиля
func (c *Client) RenderReceipt(ctx context.Context, settlement *domain.Settlement) (*DocumentRef, error) {
	damages := make([]string, 0, len(settlement.DamagedCategories))
	for _, category := range settlement.DamagedCategories {
		damages = append(damages, string(category))
	}

	payload := receiptPayload{
		ScheduleID:  settlement.ScheduleID,
		BaseAmount:  settlement.BaseAmount.StringFixed(domain.MoneyScale),
		LateFee:     settlement.LateFee.StringFixed(domain.MoneyScale),
		DamageFee:   settlement.DamageFee.StringFixed(domain.MoneyScale),
		MileageFee:  settlement.MileageFee.StringFixed(domain.MoneyScale),
		FuelFee:     settlement.FuelFee.StringFixed(domain.MoneyScale),
		FinalAmount: settlement.FinalAmount.StringFixed(domain.MoneyScale),
		Damages:     damages,
	}

	return c.render(ctx, KindReceipt, payload)
}

// RenderStatement генерирует выписку по истории аренд клиента.
// Пустая история - валидный вход: выписка генерируется и для нее.
func (c *Client) RenderStatement(ctx context.Context, person *domain.Person, schedules []*domain.Schedule) (*DocumentRef, error) {
	items := make([]statementSchedule, 0, len(schedules))
	for _, s := range schedules {
		item := statementSchedule{
			ScheduleID: s.ID,
			VehicleID:  s.VehicleID,
			StartDate:  s.StartDate.Format(domain.DateFormat),
			EndDate:    s.EndDate.Format(domain.DateFormat),
			Status:     string(s.Status),
			BaseAmount: s.BaseAmount.StringFixed(domain.MoneyScale),
		}
		if s.FinalAmount != nil {
			final := s.FinalAmount.StringFixed(domain.MoneyScale)
			item.FinalAmount = &final
		}
		items = append(items, item)
	}

	payload := statementPayload{
		PersonName: person.Name,
		Document:   person.Document,
		Schedules:  items,
	}

	return c.render(ctx, KindStatement, payload)
}

// render выполняет запрос на генерацию документа указанного вида
func (c *Client) render(ctx context.Context, kind string, payload interface{}) (*DocumentRef, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal %s payload: %v", ErrInternal, kind, err)
	}

	url := fmt.Sprintf("%s/internal/documents/%s", c.baseURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("DocService render %s failed (request_id=%s): %v", kind, requestID, err)
		c.incRender(kind, "error")
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, kind, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("DocService render %s returned status %d (request_id=%s): %s",
			kind, resp.StatusCode, requestID, string(respBody))
		c.incRender(kind, "error")
		return nil, fmt.Errorf("%w: %s: unexpected status code %d", ErrRenderFailed, kind, resp.StatusCode)
	}

	var ref DocumentRef
	if err := json.NewDecoder(resp.Body).Decode(&ref); err != nil {
		c.incRender(kind, "error")
		return nil, fmt.Errorf("%w: failed to decode %s response: %v", ErrInvalidResponse, kind, err)
	}

	c.incRender(kind, "success")
	c.log.Info("DocService rendered %s id=%s (request_id=%s)", kind, ref.ID, requestID)
	return &ref, nil
}

func (c *Client) incRender(kind, result string) {
	if c.metrics != nil {
		c.metrics.IncDocumentRender(kind, result)
	}
}
