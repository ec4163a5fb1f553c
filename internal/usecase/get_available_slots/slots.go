package get_available_slots

import (
	"time"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

// generateTimeSlots produces the ordered slot sequence for one day. Slots
// start at open and step forward in fixed 30-minute increments; the last
// slot must still fit the full service duration before close. Booked slots
// and, on the current day, slots already in the past are kept in the
// sequence flagged unavailable.
func generateTimeSlots(
	open, close types.TimeString,
	durationMinutes int,
	booked map[types.TimeString]struct{},
	date time.Time,
	now time.Time,
) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)

	isToday := domain.IsSameDay(date, now)
	nowLabel := types.NewTimeString(now)

	current := open
	for current.IsBefore(close) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// would run past midnight, nothing fits here or later
			break
		}
		if end.IsAfter(close) {
			break
		}

		_, taken := booked[current]
		past := isToday && current.IsBefore(nowLabel)

		slots = append(slots, domain.TimeSlot{
			Time:      current,
			Available: !taken && !past,
		})

		current, err = current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
	}

	return slots, nil
}
