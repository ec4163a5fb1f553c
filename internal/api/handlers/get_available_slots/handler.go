package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	getSlots "github.com/Darioantonio20/BarberPlatform/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate            = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgMissingParams          = "faltan parámetros: serviceId, barberId y date son requeridos"
	msgBarbershopNotFound     = "sucursal no encontrada"
	msgServiceNotFound        = "servicio no encontrado"
	msgServiceNotOffered      = "el servicio no está disponible en esta sucursal"
	msgBarberNotFound         = "barbero no encontrado"
	msgBarberNotAtBarbershop  = "el barbero no trabaja en esta sucursal"
	msgDateInPast             = "la fecha no puede ser en el pasado"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/available-slots
// Query params: serviceId, barberId, date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]

	query := r.URL.Query()
	serviceID := query.Get("serviceId")
	barberID := query.Get("barberId")
	dateStr := query.Get("date")

	if serviceID == "" || barberID == "" || dateStr == "" {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Missing parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(barbershopID, serviceID, barberID, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrBarbershopNotFound):
			handlers.RespondNotFound(w, msgBarbershopNotFound)
		case errors.Is(err, getSlots.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, getSlots.ErrServiceNotOffered):
			handlers.RespondBadRequest(w, msgServiceNotOffered)
		case errors.Is(err, getSlots.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)
		case errors.Is(err, getSlots.ErrBarberNotAtBarbershop):
			handlers.RespondBadRequest(w, msgBarberNotAtBarbershop)
		case errors.Is(err, getSlots.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, getSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingParams)
		default:
			h.logger.Error("GET /barbershops/{id}/available-slots - barbershop=%s error=%v", barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/available-slots - barbershop=%s date=%s slots=%d",
		barbershopID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
