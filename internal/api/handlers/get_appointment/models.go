package get_appointment

import (
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// ItemResponse is one cart line frozen into the appointment.
type ItemResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// AppointmentResponse is the full admin view of one appointment.
type AppointmentResponse struct {
	ID                 int64          `json:"id"`
	BarbershopID       string         `json:"barbershopId"`
	BarberID           string         `json:"barberId"`
	ServiceID          string         `json:"serviceId"`
	Date               string         `json:"date"`
	Time               string         `json:"time"`
	DurationMinutes    int            `json:"durationMinutes"`
	Status             string         `json:"status"`
	ClientName         string         `json:"clientName"`
	ClientEmail        string         `json:"clientEmail"`
	ClientPhone        string         `json:"clientPhone"`
	Notes              *string        `json:"notes,omitempty"`
	Items              []ItemResponse `json:"items"`
	PaymentMethod      string         `json:"paymentMethod"`
	Total              int64          `json:"total"`
	CancellationReason *string        `json:"cancellationReason,omitempty"`
	CancelledAt        *string        `json:"cancelledAt,omitempty"`
	CreatedAt          string         `json:"createdAt"`
	UpdatedAt          string         `json:"updatedAt"`
}

// FromDomain converts a domain appointment into the HTTP model.
func FromDomain(appt *domain.Appointment) *AppointmentResponse {
	items := make([]ItemResponse, len(appt.Items))
	for i, item := range appt.Items {
		items[i] = ItemResponse{
			ID:       item.ID,
			Type:     string(item.Type),
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	var cancelledAt *string
	if appt.CancelledAt != nil {
		s := appt.CancelledAt.Format(time.RFC3339)
		cancelledAt = &s
	}

	return &AppointmentResponse{
		ID:                 appt.ID,
		BarbershopID:       appt.BarbershopID,
		BarberID:           appt.BarberID,
		ServiceID:          appt.ServiceID,
		Date:               appt.Date.Format(domain.DateFormat),
		Time:               appt.StartTime.String(),
		DurationMinutes:    appt.DurationMinutes,
		Status:             string(appt.Status),
		ClientName:         appt.ClientName,
		ClientEmail:        appt.ClientEmail,
		ClientPhone:        appt.ClientPhone,
		Notes:              appt.Notes,
		Items:              items,
		PaymentMethod:      string(appt.PaymentMethod),
		Total:              appt.Total,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          appt.UpdatedAt.Format(time.RFC3339),
	}
}
