package cart

import (
	"context"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// Storage is the durable mirror of per-session carts. A nil cart from Load
// means the session has no saved state yet.
type Storage interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// CatalogProvider resolves barbershops for location checks.
type CatalogProvider interface {
	GetBarbershop(id string) (*domain.Barbershop, error)
}

// Logger for service-level logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
