package add_cart_item

import (
	"context"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

type CartService interface {
	AddItem(ctx context.Context, sessionID string, item domain.CartItem) (*domain.Cart, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
