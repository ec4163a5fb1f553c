package list_barbershops

import (
	"net/http"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// BarbershopResponse is the location picker entry.
type BarbershopResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Image       string `json:"image"`
}

type Handler struct {
	catalog CatalogProvider
	logger  Logger
}

func NewHandler(catalog CatalogProvider, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shops := h.catalog.Barbershops()

	out := make([]BarbershopResponse, len(shops))
	for i, shop := range shops {
		out[i] = fromDomain(shop)
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}

func fromDomain(shop *domain.Barbershop) BarbershopResponse {
	return BarbershopResponse{
		ID:          shop.ID,
		Name:        shop.Name,
		Description: shop.Description,
		Address:     shop.Address,
		Phone:       shop.Phone,
		Image:       shop.Image,
	}
}
