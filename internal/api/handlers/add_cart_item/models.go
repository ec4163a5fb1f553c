package add_cart_item

import "github.com/Darioantonio20/BarberPlatform/internal/domain"

// AddItemRequest is one catalog entry being added. Quantity defaults to 1.
type AddItemRequest struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Quantity     int    `json:"quantity,omitempty"`
	Image        string `json:"image,omitempty"`
	BarbershopID string `json:"barbershopId"`
}

// CartResponse mirrors the storefront cart state.
type CartResponse struct {
	Items        []domain.CartItem `json:"items"`
	Total        int64             `json:"total"`
	ItemCount    int               `json:"itemCount"`
	BarbershopID string            `json:"barbershopId"`
}

// ToDomainItem converts the request into a cart line.
func (r *AddItemRequest) ToDomainItem() domain.CartItem {
	return domain.CartItem{
		ID:           r.ID,
		Type:         domain.CartItemType(r.Type),
		Name:         r.Name,
		Price:        r.Price,
		Quantity:     r.Quantity,
		Image:        r.Image,
		BarbershopID: r.BarbershopID,
	}
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
