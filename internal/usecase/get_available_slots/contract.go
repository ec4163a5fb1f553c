package get_available_slots

import (
	"context"
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// CatalogProvider resolves barbershops, services and barbers.
type CatalogProvider interface {
	GetBarbershop(id string) (*domain.Barbershop, error)
	GetService(id string) (*domain.Service, error)
	GetBarber(id string) (*domain.Barber, error)
}

// AppointmentRepository fetches the appointments occupying slots.
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
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
