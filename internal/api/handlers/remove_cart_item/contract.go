package remove_cart_item

import (
	"context"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

type CartService interface {
	RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
