package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	"github.com/Darioantonio20/BarberPlatform/internal/service/appointments"
)

const (
	msgInvalidID           = "identificador de cita inválido"
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgAppointmentNotFound = "cita no encontrada"
	msgInvalidStatus       = "estado de cita inválido"
	msgInvalidTransition   = "la cita no permite ese cambio de estado"
	msgReasonRequired      = "se requiere un motivo de cancelación"
)

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

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appt, err := h.service.UpdateStatus(r.Context(), id, domain.AppointmentStatus(req.Status), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid transition: id=%d status=%s", id, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, appointments.ErrReasonRequired):
			handlers.RespondBadRequest(w, msgReasonRequired)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - id=%d error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - id=%d status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(appt))
}
