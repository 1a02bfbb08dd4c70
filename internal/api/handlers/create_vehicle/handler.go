package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDailyRate   = "некорректный формат суточного тарифа"
	msgDuplicatePlate     = "автомобиль с таким госномером уже зарегистрирован"
	msgInvalidInput       = "некорректные данные автомобиля"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /vehicles - Invalid daily rate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDailyRate)
		return
	}

	created, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrDuplicateLicensePlate):
			h.logger.Warn("POST /vehicles - Duplicate license plate: plate=%s", req.LicensePlate)
			handlers.RespondConflict(w, msgDuplicatePlate)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: vehicle_id=%d, plate=%s", created.ID, created.LicensePlate)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}
