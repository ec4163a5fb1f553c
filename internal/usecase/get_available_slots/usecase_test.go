package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	"github.com/Darioantonio20/BarberPlatform/internal/infra/catalog"
	"github.com/Darioantonio20/BarberPlatform/pkg/types"
)

type fakeApptRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.AppointmentsFilter
}

func (f *fakeApptRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeApptRepo, now time.Time) *UseCase {
	uc := NewUseCase(catalog.New(), repo, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func validRequest(date time.Time) *Request {
	return &Request{
		BarbershopID: "barberweb-centro",
		ServiceID:    "corte-normal",
		BarberID:     "leon-rivera-jr",
		Date:         date,
	}
}

func TestUseCase_Execute_GeneratesSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // Monday, 09:30-20:00
	repo := &fakeApptRepo{}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), validRequest(date))
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[0].Time)
	assert.Equal(t, 25, resp.DurationMinutes)

	require.NotNil(t, repo.lastFilter.BarbershopID)
	assert.Equal(t, "barberweb-centro", *repo.lastFilter.BarbershopID)
	require.NotNil(t, repo.lastFilter.BarberID)
	assert.Equal(t, "leon-rivera-jr", *repo.lastFilter.BarberID)
}

func TestUseCase_Execute_BookedAppointmentsFlagged(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	repo := &fakeApptRepo{appointments: []*domain.Appointment{
		{StartTime: types.TimeString("10:00"), Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), validRequest(date))
	require.NoError(t, err)

	found := false
	for _, s := range resp.Slots {
		if s.Time == types.TimeString("10:00") {
			found = true
			assert.False(t, s.Available)
		}
	}
	assert.True(t, found)
}

func TestUseCase_Execute_ShortSundayWindow(t *testing.T) {
	// Sunday runs 11:30-15:00, which narrows what a 90-minute package fits
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC) // Sunday
	uc := newTestUseCase(&fakeApptRepo{}, now)

	req := validRequest(date)
	req.ServiceID = "paquete-lion-king" // 90 minutes
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 11:30..13:30 fit a 90-minute slot before 15:00
	require.NotEmpty(t, resp.Slots)
	last := resp.Slots[len(resp.Slots)-1].Time
	end, err := last.AddMinutes(90)
	require.NoError(t, err)
	assert.False(t, end.IsAfter(types.TimeString("15:00")))
}

func TestUseCase_Execute_DateInPast(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeApptRepo{}, now)

	_, err := uc.Execute(context.Background(), validRequest(date))
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestUseCase_Execute_UnknownCatalogIDs(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeApptRepo{}, now)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "unknown barbershop",
			mutate:  func(r *Request) { r.BarbershopID = "no-such-shop" },
			wantErr: ErrBarbershopNotFound,
		},
		{
			name:    "unknown service",
			mutate:  func(r *Request) { r.ServiceID = "no-such-service" },
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "unknown barber",
			mutate:  func(r *Request) { r.BarberID = "no-such-barber" },
			wantErr: ErrBarberNotFound,
		},
		{
			name:    "missing service id",
			mutate:  func(r *Request) { r.ServiceID = "" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(date)
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
