package get_available_slots

import (
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// Request asks for the slots of one (barbershop, barber, service) on a date.
type Request struct {
	BarbershopID string
	ServiceID    string
	BarberID     string
	Date         time.Time // calendar day, no time component
}

// Response carries the full slot sequence with availability flags. Taken
// slots stay in the list flagged unavailable so the client can render them
// greyed out instead of collapsing the grid.
type Response struct {
	Date            time.Time
	BarbershopID    string
	ServiceID       string
	BarberID        string
	DurationMinutes int
	Slots           []domain.TimeSlot
}
