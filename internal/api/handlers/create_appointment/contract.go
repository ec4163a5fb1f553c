package create_appointment

import (
	"context"

	createAppt "github.com/Darioantonio20/BarberPlatform/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppt.Request) (*createAppt.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
