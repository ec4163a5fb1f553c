package list_appointments

import (
	"strconv"
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// AppointmentResponse is one row of the admin table.
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	BarbershopID  string  `json:"barbershopId"`
	BarberID      string  `json:"barberId"`
	ServiceID     string  `json:"serviceId"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	ClientName    string  `json:"clientName"`
	ClientPhone   string  `json:"clientPhone"`
	PaymentMethod string  `json:"paymentMethod"`
	Total         int64   `json:"total"`
	Notes         *string `json:"notes,omitempty"`
}

// ListResponse wraps the table rows.
type ListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Count        int                   `json:"count"`
}

// ToFilter parses the optional query parameters into a domain filter.
func ToFilter(barbershopID, barberID, status, startDate, endDate, date, includeInactive string) (domain.AppointmentsFilter, error) {
	var filter domain.AppointmentsFilter

	if barbershopID != "" {
		filter.BarbershopID = &barbershopID
	}
	if barberID != "" {
		filter.BarberID = &barberID
	}
	if status != "" {
		s := domain.AppointmentStatus(status)
		filter.Status = &s
	}

	// date is shorthand for a single-day range
	if date != "" {
		startDate, endDate = date, date
	}
	if startDate != "" {
		parsed, err := time.Parse(domain.DateFormat, startDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &parsed
	}
	if endDate != "" {
		parsed, err := time.Parse(domain.DateFormat, endDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &parsed
	}

	if includeInactive != "" {
		parsed, err := strconv.ParseBool(includeInactive)
		if err != nil {
			return filter, err
		}
		filter.IncludeInactive = parsed
	}

	return filter, nil
}

// FromDomainList converts the appointments into table rows.
func FromDomainList(appointments []*domain.Appointment) *ListResponse {
	rows := make([]AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		rows[i] = AppointmentResponse{
			ID:            appt.ID,
			BarbershopID:  appt.BarbershopID,
			BarberID:      appt.BarberID,
			ServiceID:     appt.ServiceID,
			Date:          appt.Date.Format(domain.DateFormat),
			Time:          appt.StartTime.String(),
			Status:        string(appt.Status),
			ClientName:    appt.ClientName,
			ClientPhone:   appt.ClientPhone,
			PaymentMethod: string(appt.PaymentMethod),
			Total:         appt.Total,
			Notes:         appt.Notes,
		}
	}

	return &ListResponse{
		Appointments: rows,
		Count:        len(rows),
	}
}
