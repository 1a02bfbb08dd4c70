package book_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	bookCar "github.com/m04kA/SMC-RentalService/internal/usecase/book_car"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgVehicleNotFound    = "автомобиль не найден"
	msgPersonNotFound     = "клиент не найден"
	msgScheduleConflict   = "автомобиль занят на выбранные даты"
	msgInvalidRange       = "дата окончания должна быть позже даты начала"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase BookCarUseCase
	logger  Logger
}

func NewHandler(useCase BookCarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	personID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(personID)
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookCar.ErrVehicleNotFound):
			h.logger.Warn("POST /schedules - Vehicle not found: vehicle_id=%d, person_id=%d", req.VehicleID, personID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, bookCar.ErrPersonNotFound):
			h.logger.Warn("POST /schedules - Person not found: person_id=%d", personID)
			handlers.RespondNotFound(w, msgPersonNotFound)

		case errors.Is(err, bookCar.ErrScheduleConflict):
			h.logger.Warn("POST /schedules - Vehicle not available: vehicle_id=%d, person_id=%d", req.VehicleID, personID)
			handlers.RespondConflict(w, msgScheduleConflict)

		case errors.Is(err, bookCar.ErrInvalidRange):
			h.logger.Warn("POST /schedules - Invalid date range: vehicle_id=%d, person_id=%d", req.VehicleID, personID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, bookCar.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules - Failed to book: vehicle_id=%d, person_id=%d, error=%v",
				req.VehicleID, personID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Booking created: schedule_id=%d, vehicle_id=%d, person_id=%d",
		result.ScheduleID, result.VehicleID, result.PersonID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
