package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/api/middleware"
	"github.com/Darioantonio20/BarberPlatform/internal/service/cart"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidItem        = "artículo inválido"
	msgBarbershopNotFound = "sucursal no encontrada"
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

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddItem(r.Context(), sessionID, req.ToDomainItem())
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidItem)
		case errors.Is(err, cart.ErrBarbershopNotFound):
			handlers.RespondNotFound(w, msgBarbershopNotFound)
		default:
			h.logger.Error("POST /cart/items - session=%s error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - session=%s item=%s total=%d", sessionID, req.ID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
