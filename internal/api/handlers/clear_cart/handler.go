package clear_cart

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

// Handle DELETE /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /cart - session=%s error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cart - session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
