package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus is returned for a status outside the known set
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition is returned when the status flow forbids the move
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrReasonRequired is returned when a cancellation carries no reason
	ErrReasonRequired = errors.New("cancellation reason required")

	// ErrInvalidInput is returned on malformed filter input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on repository failures
	ErrInternal = errors.New("appointments service: internal error")
)
