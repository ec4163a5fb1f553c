package catalog

import "errors"

var (
	// ErrBarbershopNotFound is returned when the location id is unknown
	ErrBarbershopNotFound = errors.New("catalog: barbershop not found")

	// ErrServiceNotFound is returned when the service or package id is unknown
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrProductNotFound is returned when the product id is unknown
	ErrProductNotFound = errors.New("catalog: product not found")

	// ErrBarberNotFound is returned when the barber id is unknown
	ErrBarberNotFound = errors.New("catalog: barber not found")
)
