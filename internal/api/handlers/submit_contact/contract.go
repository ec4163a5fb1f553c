package submit_contact

import (
	"context"

	submitContact "github.com/Darioantonio20/BarberPlatform/internal/usecase/submit_contact"
)

type SubmitContactUseCase interface {
	Execute(ctx context.Context, req *submitContact.Request) (*submitContact.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
