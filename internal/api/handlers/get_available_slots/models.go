package get_available_slots

import (
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	getSlots "github.com/Darioantonio20/BarberPlatform/internal/usecase/get_available_slots"
)

// SlotResponse is one slot in the grid. Unavailable slots are included so
// the client renders them disabled.
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotsResponse is the full grid for one date.
type SlotsResponse struct {
	Date            string         `json:"date"`
	BarbershopID    string         `json:"barbershopId"`
	ServiceID       string         `json:"serviceId"`
	BarberID        string         `json:"barberId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest parses the query parameters into a use case request.
func ToUseCaseRequest(barbershopID, serviceID, barberID, dateStr string) (*getSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getSlots.Request{
		BarbershopID: barbershopID,
		ServiceID:    serviceID,
		BarberID:     barberID,
		Date:         date,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
		}
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BarbershopID:    resp.BarbershopID,
		ServiceID:       resp.ServiceID,
		BarberID:        resp.BarberID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
