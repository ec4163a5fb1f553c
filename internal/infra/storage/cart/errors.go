package cart

import "errors"

var (
	ErrLoadCart  = errors.New("cart.repository: failed to load cart")
	ErrSaveCart  = errors.New("cart.repository: failed to save cart")
	ErrClearCart = errors.New("cart.repository: failed to clear cart")
	ErrCorrupted = errors.New("cart.repository: stored cart is corrupted")
)
