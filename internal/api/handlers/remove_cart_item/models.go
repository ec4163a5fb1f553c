package remove_cart_item

import "github.com/Darioantonio20/BarberPlatform/internal/domain"

// CartResponse mirrors the storefront cart state.
type CartResponse struct {
	Items        []domain.CartItem `json:"items"`
	Total        int64             `json:"total"`
	ItemCount    int               `json:"itemCount"`
	BarbershopID string            `json:"barbershopId"`
}

// FromDomain converts the cart into the HTTP model.
func FromDomain(cart *domain.Cart) *CartResponse {
	return &CartResponse{
		Items:        cart.Items,
		Total:        cart.Total,
		ItemCount:    cart.ItemCount(),
		BarbershopID: cart.BarbershopID,
	}
}
