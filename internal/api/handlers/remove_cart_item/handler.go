package remove_cart_item

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle DELETE /api/v1/cart/items/{itemId}
// Removing an item that is not in the cart is a no-op, mirroring the
// storefront behavior.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	itemID := mux.Vars(r)["itemId"]

	result, err := h.service.RemoveItem(r.Context(), sessionID, itemID)
	if err != nil {
		h.logger.Error("DELETE /cart/items/{itemId} - session=%s item=%s error=%v", sessionID, itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cart/items/{itemId} - session=%s item=%s total=%d", sessionID, itemID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
