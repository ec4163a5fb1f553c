package get_cart

import (
	"net/http"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/api/middleware"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	cart, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /cart - session=%s error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(cart))
}
