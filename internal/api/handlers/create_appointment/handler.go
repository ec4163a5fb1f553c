package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/api/middleware"
	createAppt "github.com/Darioantonio20/BarberPlatform/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody    = "cuerpo de la solicitud inválido"
	msgInvalidDate           = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgValidationFailed      = "el formulario contiene errores"
	msgSlotNotAvailable      = "el horario seleccionado ya no está disponible"
	msgBarbershopNotFound    = "sucursal no encontrada"
	msgServiceNotFound       = "servicio no encontrado"
	msgServiceNotOffered     = "el servicio no está disponible en esta sucursal"
	msgBarberNotFound        = "barbero no encontrado"
	msgBarberNotAtBarbershop = "el barbero no trabaja en esta sucursal"
	msgBarbershopClosed      = "la sucursal está cerrada en la fecha seleccionada"
	msgInvalidPayment        = "método de pago inválido, se espera cash o card"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sessionID := middleware.SessionID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verrs *createAppt.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /appointments - Validation failed: session=%s violations=%d", sessionID, len(verrs.Fields))
			handlers.RespondValidationErrors(w, msgValidationFailed, verrs.Fields)

		case errors.Is(err, createAppt.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: session=%s time=%s", sessionID, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppt.ErrBarbershopNotFound):
			handlers.RespondNotFound(w, msgBarbershopNotFound)

		case errors.Is(err, createAppt.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppt.ErrServiceNotOffered):
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createAppt.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppt.ErrBarberNotAtBarbershop):
			handlers.RespondBadRequest(w, msgBarberNotAtBarbershop)

		case errors.Is(err, createAppt.ErrBarbershopClosed):
			handlers.RespondBadRequest(w, msgBarbershopClosed)

		case errors.Is(err, createAppt.ErrInvalidPaymentMethod):
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, createAppt.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: session=%s error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d session=%s", result.ID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
