package get_available_slots

import "errors"

var (
	// ErrBarbershopNotFound is returned when the barbershop does not exist
	ErrBarbershopNotFound = errors.New("barbershop not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotOffered is returned when the barbershop does not offer
	// the service
	ErrServiceNotOffered = errors.New("service is not offered at this barbershop")

	// ErrBarberNotFound is returned when the barber does not exist
	ErrBarberNotFound = errors.New("barber not found")

	// ErrBarberNotAtBarbershop is returned when the barber does not work at
	// the barbershop
	ErrBarberNotAtBarbershop = errors.New("barber does not work at this barbershop")

	// ErrDateInPast is returned for a date before today
	ErrDateInPast = errors.New("date is in the past")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on downstream failures
	ErrInternal = errors.New("usecase: internal error")
)
