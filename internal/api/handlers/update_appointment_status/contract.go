package update_appointment_status

import (
	"context"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
