package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	apptRepo "github.com/Darioantonio20/BarberPlatform/internal/infra/storage/appointment"
	"github.com/Darioantonio20/BarberPlatform/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	listed       []*domain.Appointment
	revenue      int64
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{}}
	for _, a := range appts {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.listed, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	now := time.Now()
	appt.Status = domain.StatusCancelled
	appt.CancellationReason = &reason
	appt.CancelledAt = &now
	return nil
}

func (f *fakeAppointmentRepo) CompletedRevenue(_ context.Context, _ *string) (int64, error) {
	return f.revenue, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func appointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:           id,
		BarbershopID: "barberweb-centro",
		BarberID:     "leon-rivera-jr",
		ServiceID:    "corte-normal",
		Status:       status,
		Total:        120,
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	s := NewService(newFakeAppointmentRepo(), fakeTxManager{}, nopLogger{})

	_, err := s.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_List_InvalidDateRange(t *testing.T) {
	s := NewService(newFakeAppointmentRepo(), fakeTxManager{}, nopLogger{})

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err := s.List(context.Background(), domain.AppointmentsFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      domain.AppointmentStatus
		reason  *string
		wantErr error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: domain.StatusConfirmed},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: domain.StatusCompleted},
		{name: "pending to cancelled", from: domain.StatusPending, to: domain.StatusCancelled, reason: ptr.Ptr("cliente no llegó")},
		{name: "pending to completed rejected", from: domain.StatusPending, to: domain.StatusCompleted, wantErr: ErrInvalidTransition},
		{name: "completed is terminal", from: domain.StatusCompleted, to: domain.StatusCancelled, reason: ptr.Ptr("x"), wantErr: ErrInvalidTransition},
		{name: "cancelled is terminal", from: domain.StatusCancelled, to: domain.StatusPending, wantErr: ErrInvalidTransition},
		{name: "cancel without reason", from: domain.StatusPending, to: domain.StatusCancelled, wantErr: ErrReasonRequired},
		{name: "unknown status", from: domain.StatusPending, to: domain.AppointmentStatus("paused"), wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeAppointmentRepo(appointment(1, tt.from))
			s := NewService(repo, fakeTxManager{}, nopLogger{})

			appt, err := s.UpdateStatus(context.Background(), 1, tt.to, tt.reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, appt.Status)
			if tt.to == domain.StatusCancelled {
				require.NotNil(t, appt.CancellationReason)
				assert.Equal(t, *tt.reason, *appt.CancellationReason)
				assert.NotNil(t, appt.CancelledAt)
			}
		})
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	s := NewService(newFakeAppointmentRepo(), fakeTxManager{}, nopLogger{})

	_, err := s.UpdateStatus(context.Background(), 42, domain.StatusConfirmed, nil)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_RevenueSummary(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.revenue = 970
	s := NewService(repo, fakeTxManager{}, nopLogger{})

	revenue, err := s.RevenueSummary(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(970), revenue)
}
