package update_appointment_status

import (
	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// UpdateStatusRequest is the admin action payload. Reason is required when
// status is cancelled.
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// StatusResponse reflects the appointment after the move.
type StatusResponse struct {
	ID                 int64   `json:"id"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// FromDomain converts the updated appointment into the HTTP model.
func FromDomain(appt *domain.Appointment) *StatusResponse {
	return &StatusResponse{
		ID:                 appt.ID,
		Status:             string(appt.Status),
		CancellationReason: appt.CancellationReason,
	}
}
