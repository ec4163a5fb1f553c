package submit_contact

import (
	"context"
	"strings"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// Validation messages shown to the client, matching the storefront locale.
const (
	msgNameRequired    = "El nombre es requerido"
	msgNameInvalid     = "Por favor ingresa un nombre válido"
	msgEmailRequired   = "El correo electrónico es requerido"
	msgEmailInvalid    = "Por favor ingresa un correo electrónico válido"
	msgPhoneInvalid    = "Por favor ingresa un número de teléfono válido"
	msgMessageRequired = "El mensaje es requerido"
	msgMessageTooShort = "El mensaje debe tener al menos 10 caracteres"
)

// Logger for use case logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Request is the contact form. Phone is optional; when present it is
// validated like the booking phone.
type Request struct {
	Name    string
	Email   string
	Phone   *string
	Message string
}

// Response acknowledges the submission.
type Response struct {
	Received bool
}

// UseCase records contact submissions. There is no delivery backend; a valid
// submission is logged and acknowledged.
type UseCase struct {
	logger Logger
}

// NewUseCase creates the use case.
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute validates the form and records it.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if fieldErrs := validateForm(req); len(fieldErrs) > 0 {
		uc.logger.Warn("SubmitContact: form rejected with %d violations", len(fieldErrs))
		return nil, &ValidationErrors{Fields: fieldErrs}
	}

	phone := ""
	if req.Phone != nil {
		phone = *req.Phone
	}
	uc.logger.Info("SubmitContact: name=%q email=%s phone=%q message_len=%d",
		req.Name, req.Email, phone, len(strings.TrimSpace(req.Message)))

	return &Response{Received: true}, nil
}

func validateForm(req *Request) []domain.ValidationError {
	errs := make([]domain.ValidationError, 0)

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.ValidationError{Field: "name", Message: msgNameRequired})
	} else if !domain.ValidateName(req.Name) {
		errs = append(errs, domain.ValidationError{Field: "name", Message: msgNameInvalid})
	}

	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.ValidationError{Field: "email", Message: msgEmailRequired})
	} else if !domain.ValidateEmail(req.Email) {
		errs = append(errs, domain.ValidationError{Field: "email", Message: msgEmailInvalid})
	}

	if req.Phone != nil && *req.Phone != "" && !domain.ValidatePhone(*req.Phone) {
		errs = append(errs, domain.ValidationError{Field: "phone", Message: msgPhoneInvalid})
	}

	if strings.TrimSpace(req.Message) == "" {
		errs = append(errs, domain.ValidationError{Field: "message", Message: msgMessageRequired})
	} else if len(strings.TrimSpace(req.Message)) < domain.MinMessageLength {
		errs = append(errs, domain.ValidationError{Field: "message", Message: msgMessageTooShort})
	}

	return errs
}
