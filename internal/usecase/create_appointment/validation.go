package create_appointment

import (
	"strings"
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// Validation messages shown to the client, matching the storefront locale.
const (
	msgServiceRequired = "Por favor selecciona un servicio"
	msgBarberRequired  = "Por favor selecciona un barbero"
	msgDateRequired    = "Por favor selecciona una fecha"
	msgDateInvalid     = "La fecha seleccionada no es válida"
	msgTimeRequired    = "Por favor selecciona un horario"
	msgTimeInvalid     = "El horario seleccionado no es válido"
	msgNameRequired    = "El nombre es requerido"
	msgNameInvalid     = "Por favor ingresa un nombre válido"
	msgEmailRequired   = "El correo electrónico es requerido"
	msgEmailInvalid    = "Por favor ingresa un correo electrónico válido"
	msgPhoneRequired   = "El teléfono es requerido"
	msgPhoneInvalid    = "Por favor ingresa un número de teléfono válido"
	msgNotesTooLong    = "Las notas son demasiado largas"
)

// validateForm collects every violation in field order rather than stopping
// at the first, so the client can mark all offending inputs at once.
func validateForm(req *Request, now time.Time) []domain.ValidationError {
	errs := make([]domain.ValidationError, 0)

	if strings.TrimSpace(req.ServiceID) == "" {
		errs = append(errs, domain.ValidationError{Field: "serviceId", Message: msgServiceRequired})
	}

	if strings.TrimSpace(req.BarberID) == "" {
		errs = append(errs, domain.ValidationError{Field: "barberId", Message: msgBarberRequired})
	}

	if req.Date.IsZero() {
		errs = append(errs, domain.ValidationError{Field: "date", Message: msgDateRequired})
	} else if domain.IsDateInPast(req.Date, now) {
		errs = append(errs, domain.ValidationError{Field: "date", Message: msgDateInvalid})
	}

	if strings.TrimSpace(req.StartTime.String()) == "" {
		errs = append(errs, domain.ValidationError{Field: "time", Message: msgTimeRequired})
	} else if !domain.ValidateTimeFormat(req.StartTime.String()) {
		errs = append(errs, domain.ValidationError{Field: "time", Message: msgTimeInvalid})
	}

	if strings.TrimSpace(req.ClientName) == "" {
		errs = append(errs, domain.ValidationError{Field: "clientName", Message: msgNameRequired})
	} else if !domain.ValidateName(req.ClientName) {
		errs = append(errs, domain.ValidationError{Field: "clientName", Message: msgNameInvalid})
	}

	if strings.TrimSpace(req.ClientEmail) == "" {
		errs = append(errs, domain.ValidationError{Field: "clientEmail", Message: msgEmailRequired})
	} else if !domain.ValidateEmail(req.ClientEmail) {
		errs = append(errs, domain.ValidationError{Field: "clientEmail", Message: msgEmailInvalid})
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		errs = append(errs, domain.ValidationError{Field: "clientPhone", Message: msgPhoneRequired})
	} else if !domain.ValidatePhone(req.ClientPhone) {
		errs = append(errs, domain.ValidationError{Field: "clientPhone", Message: msgPhoneInvalid})
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		errs = append(errs, domain.ValidationError{Field: "notes", Message: msgNotesTooLong})
	}

	return errs
}

func validatePaymentMethod(method domain.PaymentMethod) error {
	switch method {
	case domain.PaymentCash, domain.PaymentCard:
		return nil
	default:
		return ErrInvalidPaymentMethod
	}
}
