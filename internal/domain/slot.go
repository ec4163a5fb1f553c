package domain

import "github.com/Darioantonio20/BarberPlatform/pkg/types"

// TimeSlot is one candidate appointment start time on a given day.
// Unavailable slots are kept in the sequence (flagged, not filtered) so the
// caller can render them greyed out.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}
