package simulate_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	simulateSchedule "github.com/m04kA/SMC-RentalService/internal/usecase/simulate_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVehicleNotFound    = "автомобиль не найден"
	msgScheduleConflict   = "автомобиль занят на выбранные даты"
	msgInvalidRange       = "дата окончания должна быть позже даты начала"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase SimulateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase SimulateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/simulate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SimulateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/simulate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedules/simulate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, simulateSchedule.ErrVehicleNotFound):
			h.logger.Warn("POST /schedules/simulate - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, simulateSchedule.ErrScheduleConflict):
			h.logger.Warn("POST /schedules/simulate - Vehicle not available: vehicle_id=%d", req.VehicleID)
			handlers.RespondConflict(w, msgScheduleConflict)

		case errors.Is(err, simulateSchedule.ErrInvalidRange):
			h.logger.Warn("POST /schedules/simulate - Invalid date range: vehicle_id=%d", req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, simulateSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules/simulate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules/simulate - Failed to simulate: vehicle_id=%d, error=%v",
				req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/simulate - Simulation completed: vehicle_id=%d, days=%d, amount=%s",
		result.VehicleID, result.Days, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
