package domain

import (
	"time"

	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// PaymentMethod is how the client intends to pay at the shop
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Appointment represents a booked visit at one barbershop
type Appointment struct {
	ID           int64
	SessionID    string
	BarbershopID string
	BarberID     string
	ServiceID    string

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string

	// Denormalized cart snapshot taken at booking time
	Items         []CartItem
	PaymentMethod PaymentMethod
	Total         int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the admin status flow allows moving to next.
// The flow mirrors the admin table actions: pending can be confirmed or
// cancelled, confirmed can be completed or cancelled, terminal states stay.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// AppointmentsFilter filters the admin listing of appointments
type AppointmentsFilter struct {
	BarbershopID    *string
	BarberID        *string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
