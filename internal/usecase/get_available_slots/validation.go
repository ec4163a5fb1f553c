package get_available_slots

import (
	"fmt"
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

func validateRequest(req *Request) error {
	if req.BarbershopID == "" {
		return fmt.Errorf("%w: barbershopId is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.BarberID == "" {
		return fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

func validateDate(date, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return ErrDateInPast
	}
	return nil
}
