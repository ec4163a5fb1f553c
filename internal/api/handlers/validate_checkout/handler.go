package validate_checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/api/middleware"
	"github.com/Darioantonio20/BarberPlatform/internal/service/cart"
)

// The three denial messages the storefront shows, each with its own
// redirect target.
const (
	msgNoLocation      = "Primero debes seleccionar una ubicación (barbería) para continuar."
	msgCartEmpty       = "Tu carrito está vacío. Selecciona una barbería y agrega servicios para continuar."
	msgLocationMissing = "Ha ocurrido un error con la selección de barbería. Por favor, vuelve a seleccionar una ubicación."
)

// AccessResponse tells the client whether it may proceed and, when not,
// what to show and where to send the user.
type AccessResponse struct {
	Allowed    bool   `json:"allowed"`
	Message    string `json:"message,omitempty"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

type Handler struct {
	gate   CartGate
	logger Logger
}

func NewHandler(gate CartGate, logger Logger) *Handler {
	return &Handler{
		gate:   gate,
		logger: logger,
	}
}

// Handle GET /api/v1/cart/access
// Query params: requireItems (optional bool, default true)
//
// A denial is a 200 with allowed=false: the gate steers the user, it does
// not fail the request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	requireItems := true
	if raw := r.URL.Query().Get("requireItems"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err == nil {
			requireItems = parsed
		}
	}

	err := h.gate.CheckAccess(r.Context(), sessionID, requireItems)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrNoLocationSelected):
			handlers.RespondJSON(w, http.StatusOK, AccessResponse{
				Message:    msgNoLocation,
				RedirectTo: "/",
			})

		case errors.Is(err, cart.ErrCartEmpty):
			handlers.RespondJSON(w, http.StatusOK, AccessResponse{
				Message:    msgCartEmpty,
				RedirectTo: "/",
			})

		case errors.Is(err, cart.ErrLocationMissing):
			h.logger.Warn("GET /cart/access - Inconsistent cart state: session=%s", sessionID)
			handlers.RespondJSON(w, http.StatusOK, AccessResponse{
				Message:    msgLocationMissing,
				RedirectTo: "/",
			})

		default:
			h.logger.Error("GET /cart/access - session=%s error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AccessResponse{Allowed: true})
}
