package get_history

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/schedules"
)

const (
	msgMissingDocument = "не указан номер документа"
	msgPersonNotFound  = "клиент с указанным документом не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/history/{document}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	document := vars["document"]

	if document == "" {
		h.logger.Warn("GET /schedules/history/{document} - Missing document")
		handlers.RespondBadRequest(w, msgMissingDocument)
		return
	}

	history, err := h.service.GetHistoryByDocument(r.Context(), document)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrPersonNotFound):
			h.logger.Warn("GET /schedules/history/{document} - Person not found: document=%s", document)
			handlers.RespondNotFound(w, msgPersonNotFound)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /schedules/history/{document} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingDocument)

		default:
			h.logger.Error("GET /schedules/history/{document} - Failed to get history: document=%s, error=%v",
				document, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/history/{document} - History retrieved: person_id=%d, schedules=%d",
		history.PersonID, len(history.Schedules))
	handlers.RespondJSON(w, http.StatusOK, history)
}
