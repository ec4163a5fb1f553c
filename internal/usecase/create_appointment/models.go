package create_appointment

import (
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

// Request carries the booking form plus the session whose cart backs it.
type Request struct {
	SessionID    string
	BarbershopID string
	ServiceID    string
	BarberID     string
	Date         time.Time
	StartTime    types.TimeString

	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string

	PaymentMethod domain.PaymentMethod
}

// Response is the created appointment.
type Response struct {
	ID              int64
	BarbershopID    string
	ServiceID       string
	BarberID        string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          domain.AppointmentStatus
	ClientName      string
	Items           []domain.CartItem
	PaymentMethod   domain.PaymentMethod
	Total           int64
	CreatedAt       time.Time
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		BarbershopID:    appt.BarbershopID,
		ServiceID:       appt.ServiceID,
		BarberID:        appt.BarberID,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          appt.Status,
		ClientName:      appt.ClientName,
		Items:           appt.Items,
		PaymentMethod:   appt.PaymentMethod,
		Total:           appt.Total,
		CreatedAt:       appt.CreatedAt,
	}
}
