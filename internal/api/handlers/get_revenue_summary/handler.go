package get_revenue_summary

import (
	"net/http"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
)

// RevenueResponse is the admin revenue card: the sum of completed totals.
type RevenueResponse struct {
	BarbershopID *string `json:"barbershopId,omitempty"`
	Revenue      int64   `json:"revenue"`
}

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

// Handle GET /api/v1/appointments/revenue
// Query params: barbershopId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var barbershopID *string
	if id := r.URL.Query().Get("barbershopId"); id != "" {
		barbershopID = &id
	}

	revenue, err := h.service.RevenueSummary(r.Context(), barbershopID)
	if err != nil {
		h.logger.Error("GET /appointments/revenue - error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RevenueResponse{
		BarbershopID: barbershopID,
		Revenue:      revenue,
	})
}
