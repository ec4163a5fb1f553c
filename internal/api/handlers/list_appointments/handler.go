package list_appointments

import (
	"errors"
	"net/http"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/service/appointments"
)

const msgInvalidParams = "parámetros de consulta inválidos"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: barbershopId, barberId, status, date, startDate, endDate,
// includeInactive (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter, err := ToFilter(
		query.Get("barbershopId"),
		query.Get("barberId"),
		query.Get("status"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("date"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /appointments - error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}
