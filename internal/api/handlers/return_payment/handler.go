package return_payment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	returnPayment "github.com/m04kA/SMC-RentalService/internal/usecase/return_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidScheduleID  = "некорректный ID расписания"
	msgInvalidReturnedAt  = "некорректный формат времени возврата, ожидается ISO 8601"
	msgScheduleNotFound   = "расписание не найдено"
	msgInvalidState       = "расписание уже рассчитано или не может быть закрыто"
	msgInvalidInput       = "некорректные данные чек-листа"
)

type Handler struct {
	useCase ReturnPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ReturnPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/{scheduleId}/return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleIDStr := vars["scheduleId"]

	scheduleID, err := strconv.ParseInt(scheduleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /schedules/{id}/return - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req ReturnChecklistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/{id}/return - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(scheduleID, time.Now())
	if err != nil {
		h.logger.Warn("POST /schedules/{id}/return - Failed to parse returnedAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReturnedAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, returnPayment.ErrScheduleNotFound):
			h.logger.Warn("POST /schedules/{id}/return - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, returnPayment.ErrInvalidState):
			h.logger.Warn("POST /schedules/{id}/return - Schedule cannot be settled: schedule_id=%d", scheduleID)
			handlers.RespondUnprocessable(w, msgInvalidState)

		case errors.Is(err, returnPayment.ErrInvalidInput):
			h.logger.Warn("POST /schedules/{id}/return - Invalid checklist: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules/{id}/return - Failed to settle: schedule_id=%d, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/{id}/return - Schedule settled: schedule_id=%d, final=%s",
		result.ScheduleID, result.FinalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
