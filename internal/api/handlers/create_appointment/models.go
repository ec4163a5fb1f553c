package create_appointment

import (
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	createAppt "github.com/Darioantonio20/BarberPlatform/internal/usecase/create_appointment"
	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

// CreateAppointmentRequest is the booking form as submitted by the wizard.
type CreateAppointmentRequest struct {
	BarbershopID  string  `json:"barbershopId"`
	ServiceID     string  `json:"serviceId"`
	BarberID      string  `json:"barberId"`
	Date          string  `json:"date"` // "2026-09-07"
	Time          string  `json:"time"` // "10:00"
	ClientName    string  `json:"clientName"`
	ClientEmail   string  `json:"clientEmail"`
	ClientPhone   string  `json:"clientPhone"`
	Notes         *string `json:"notes,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`
}

// ItemResponse is one cart line frozen into the appointment.
type ItemResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// AppointmentResponse is the created appointment.
type AppointmentResponse struct {
	ID              int64          `json:"id"`
	BarbershopID    string         `json:"barbershopId"`
	ServiceID       string         `json:"serviceId"`
	BarberID        string         `json:"barberId"`
	Date            string         `json:"date"`
	Time            string         `json:"time"`
	DurationMinutes int            `json:"durationMinutes"`
	Status          string         `json:"status"`
	ClientName      string         `json:"clientName"`
	Items           []ItemResponse `json:"items"`
	PaymentMethod   string         `json:"paymentMethod"`
	Total           int64          `json:"total"`
	CreatedAt       string         `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time. Empty
// date or time pass through as zero values so the use case can report them
// as collected validation errors instead of a bare 400.
func (r *CreateAppointmentRequest) ToUseCaseRequest(sessionID string) (*createAppt.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createAppt.Request{
		SessionID:     sessionID,
		BarbershopID:  r.BarbershopID,
		ServiceID:     r.ServiceID,
		BarberID:      r.BarberID,
		Date:          date,
		StartTime:     types.TimeString(r.Time),
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientPhone:   r.ClientPhone,
		Notes:         r.Notes,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createAppt.Response) *AppointmentResponse {
	items := make([]ItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = ItemResponse{
			ID:       item.ID,
			Type:     string(item.Type),
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	return &AppointmentResponse{
		ID:              resp.ID,
		BarbershopID:    resp.BarbershopID,
		ServiceID:       resp.ServiceID,
		BarberID:        resp.BarberID,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		ClientName:      resp.ClientName,
		Items:           items,
		PaymentMethod:   string(resp.PaymentMethod),
		Total:           resp.Total,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
