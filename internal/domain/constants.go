package domain

// Slot generation constants
const (
	// SlotStepMinutes is the fixed distance between candidate slot starts.
	// Service duration only shortens the tail of the day, never the step.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinClientNameLength = 2
	MinMessageLength    = 10
	MaxNotesLength      = 500

	// Valid lengths of a phone number after stripping non-digits
	// (10 national, 12 with the country prefix)
	PhoneDigitsShort = 10
	PhoneDigitsLong  = 12
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses that free the appointment's slot.
// Used when counting booked slots for availability.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that keep the slot occupied.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
