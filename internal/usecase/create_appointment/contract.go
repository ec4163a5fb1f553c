package create_appointment

import (
	"context"
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// AppointmentRepository persists appointments. GetWithFilter runs inside the
// creation transaction to lock the day's rows while the slot is re-checked.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// CartService supplies the session's cart snapshot and clears it after a
// successful booking.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// CatalogProvider resolves barbershops, services and barbers.
type CatalogProvider interface {
	GetBarbershop(id string) (*domain.Barbershop, error)
	GetService(id string) (*domain.Service, error)
	GetBarber(id string) (*domain.Barber, error)
}

// TransactionManager wraps the slot check and insert in one transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swapped for a fixed clock in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger for use case logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
