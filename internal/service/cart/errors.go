package cart

import "errors"

var (
	// ErrBarbershopNotFound is returned when the barbershop id is unknown
	ErrBarbershopNotFound = errors.New("barbershop not found")

	// ErrInvalidInput is returned on malformed item data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoLocationSelected is returned by the checkout gate when the session
	// has not picked a barbershop yet
	ErrNoLocationSelected = errors.New("no location selected")

	// ErrCartEmpty is returned by the checkout gate when the cart has no items
	ErrCartEmpty = errors.New("cart is empty")

	// ErrLocationMissing is returned by the checkout gate when items exist but
	// the location association was lost
	ErrLocationMissing = errors.New("cart location missing")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("cart service: internal error")
)
