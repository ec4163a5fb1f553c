package update_cart_item

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/api/middleware"
)

const msgInvalidRequestBody = "cuerpo de la solicitud inválido"

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

// Handle PATCH /api/v1/cart/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	itemID := mux.Vars(r)["itemId"]

	var req UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cart/items/{itemId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetQuantity(r.Context(), sessionID, itemID, req.Quantity)
	if err != nil {
		h.logger.Error("PATCH /cart/items/{itemId} - session=%s item=%s error=%v", sessionID, itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /cart/items/{itemId} - session=%s item=%s quantity=%d", sessionID, itemID, req.Quantity)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
