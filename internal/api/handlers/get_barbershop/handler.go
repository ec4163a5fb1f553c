package get_barbershop

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
	"github.com/Darioantonio20/BarberPlatform/internal/infra/catalog"
)

const msgBarbershopNotFound = "sucursal no encontrada"

type Handler struct {
	catalog CatalogProvider
	logger  Logger
}

func NewHandler(catalogProvider CatalogProvider, logger Logger) *Handler {
	return &Handler{
		catalog: catalogProvider,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID := mux.Vars(r)["barbershopId"]

	shop, err := h.catalog.GetBarbershop(barbershopID)
	if err != nil {
		if errors.Is(err, catalog.ErrBarbershopNotFound) {
			handlers.RespondNotFound(w, msgBarbershopNotFound)
			return
		}
		h.logger.Error("GET /barbershops/{id} - id=%s error=%v", barbershopID, err)
		handlers.RespondInternalError(w)
		return
	}

	// The id was just resolved, the cross-reference lookups cannot miss
	services, _ := h.catalog.ServicesAt(barbershopID)
	packages, _ := h.catalog.PackagesAt(barbershopID)
	products, _ := h.catalog.ProductsAt(barbershopID)
	barbers, _ := h.catalog.BarbersAt(barbershopID)

	handlers.RespondJSON(w, http.StatusOK, FromDomain(shop, services, packages, products, barbers))
}
