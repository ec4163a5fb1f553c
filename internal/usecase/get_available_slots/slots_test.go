package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

func labels(slots ...string) map[types.TimeString]struct{} {
	booked := make(map[types.TimeString]struct{}, len(slots))
	for _, s := range slots {
		booked[types.TimeString(s)] = struct{}{}
	}
	return booked
}

func ts(s string) types.TimeString { return types.TimeString(s) }

func TestGenerateTimeSlots_FullDay(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)     // Monday
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)     // a week earlier

	slots, err := generateTimeSlots(ts("09:30"), ts("20:00"), 30, nil, date, now)
	require.NoError(t, err)

	// 09:30 .. 19:30 inclusive, 30-minute step
	require.Len(t, slots, 21)
	assert.Equal(t, ts("09:30"), slots[0].Time)
	assert.Equal(t, ts("19:30"), slots[len(slots)-1].Time)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateTimeSlots_StrictlyIncreasingAndEndsBeforeClose(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	close := ts("20:00")
	duration := 55

	slots, err := generateTimeSlots(ts("09:30"), close, duration, nil, date, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Time.IsBefore(slots[i].Time))
	}

	last := slots[len(slots)-1].Time
	end, err := last.AddMinutes(duration)
	require.NoError(t, err)
	assert.False(t, end.IsAfter(close))

	// the next step would not fit anymore
	next, err := last.AddMinutes(30)
	require.NoError(t, err)
	nextEnd, err := next.AddMinutes(duration)
	require.NoError(t, err)
	assert.True(t, nextEnd.IsAfter(close))
}

func TestGenerateTimeSlots_DurationLargerThanWindow(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(ts("11:30"), ts("12:00"), 45, nil, date, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_ExactFitYieldsOneSlot(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(ts("11:30"), ts("12:00"), 30, nil, date, now)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, ts("11:30"), slots[0].Time)
}

func TestGenerateTimeSlots_BookedSlotsFlaggedNotFiltered(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	booked := labels("10:00", "11:30")

	slots, err := generateTimeSlots(ts("09:30"), ts("12:30"), 30, booked, date, now)
	require.NoError(t, err)
	require.Len(t, slots, 6)

	byTime := map[types.TimeString]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.False(t, byTime[ts("10:00")])
	assert.False(t, byTime[ts("11:30")])
	assert.True(t, byTime[ts("09:30")])
	assert.True(t, byTime[ts("10:30")])
	assert.True(t, byTime[ts("11:00")])
	assert.True(t, byTime[ts("12:00")])
}

func TestGenerateTimeSlots_PastSlotsOnCurrentDay(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 7, 11, 15, 0, 0, time.UTC) // same day, 11:15

	slots, err := generateTimeSlots(ts("09:30"), ts("13:00"), 30, nil, date, now)
	require.NoError(t, err)
	require.Len(t, slots, 7)

	for _, s := range slots {
		if s.Time.IsBefore(ts("11:15")) {
			assert.False(t, s.Available, "slot %s should be in the past", s.Time)
		} else {
			assert.True(t, s.Available, "slot %s should be available", s.Time)
		}
	}
}

func TestGenerateTimeSlots_FutureDayIgnoresClock(t *testing.T) {
	date := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 7, 19, 45, 0, 0, time.UTC)

	slots, err := generateTimeSlots(ts("09:30"), ts("11:00"), 30, nil, date, now)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}
