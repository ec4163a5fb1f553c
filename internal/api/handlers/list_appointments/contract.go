package list_appointments

import (
	"context"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

type AppointmentsService interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
