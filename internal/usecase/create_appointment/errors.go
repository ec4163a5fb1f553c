package create_appointment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

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

	// ErrBarbershopClosed is returned when the barbershop is closed on the
	// requested date
	ErrBarbershopClosed = errors.New("barbershop is closed on this date")

	// ErrSlotNotAvailable is returned when the requested slot is taken or
	// does not fit the business hours
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidPaymentMethod is returned for a payment method outside
	// cash/card
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on downstream failures
	ErrInternal = errors.New("usecase: internal error")
)

// ValidationErrors carries the full ordered list of form violations so the
// handler can return them as one response instead of the first one found.
type ValidationErrors struct {
	Fields []domain.ValidationError
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
