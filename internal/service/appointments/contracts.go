package appointments

import (
	"context"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// AppointmentRepository is the persistence port for appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	CompletedRevenue(ctx context.Context, barbershopID *string) (int64, error)
}

// TransactionManager wraps operations that must read and write atomically.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger for service-level logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
