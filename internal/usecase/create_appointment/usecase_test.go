package create_appointment

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
	existing []*domain.Appointment
	created  *domain.Appointment
	nextID   int64
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	f.created = appt
	return appt, nil
}

func (f *fakeApptRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeCartService struct {
	cart    *domain.Cart
	cleared bool
}

func (f *fakeCartService) Get(_ context.Context, _ string) (*domain.Cart, error) {
	if f.cart == nil {
		return domain.NewCart(), nil
	}
	return f.cart, nil
}

func (f *fakeCartService) Clear(_ context.Context, _ string) error {
	f.cleared = true
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeApptRepo, carts *fakeCartService, now time.Time) *UseCase {
	uc := NewUseCase(repo, carts, catalog.New(), fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func cartFor(shop string, items ...domain.CartItem) *domain.Cart {
	cart := domain.NewCart()
	cart.BarbershopID = shop
	cart.Items = items
	cart.RecomputeTotal()
	return cart
}

func validRequest() *Request {
	return &Request{
		SessionID:     "3b9f8a64-6f0e-4f6e-9f4e-2d1a5b7c8d90",
		BarbershopID:  "barberweb-centro",
		ServiceID:     "corte-normal",
		BarberID:      "leon-rivera-jr",
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // Monday
		StartTime:     types.TimeString("10:00"),
		ClientName:    "María López",
		ClientEmail:   "maria@example.com",
		ClientPhone:   "5512345678",
		PaymentMethod: domain.PaymentCash,
	}
}

func testNow() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute_CreatesAppointmentFromCart(t *testing.T) {
	repo := &fakeApptRepo{}
	carts := &fakeCartService{cart: cartFor("barberweb-centro",
		domain.CartItem{ID: "corte-normal", Type: domain.ItemService, Name: "Corte Normal", Price: 120, Quantity: 1, BarbershopID: "barberweb-centro"},
		domain.CartItem{ID: "pomada-mate", Type: domain.ItemProduct, Name: "Pomada Mate", Price: 180, Quantity: 2, BarbershopID: "barberweb-centro"},
	)}
	uc := newTestUseCase(repo, carts, testNow())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, int64(480), resp.Total)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 25, resp.DurationMinutes)
	assert.True(t, carts.cleared)

	require.NotNil(t, repo.created)
	assert.Equal(t, "3b9f8a64-6f0e-4f6e-9f4e-2d1a5b7c8d90", repo.created.SessionID)
}

func TestUseCase_Execute_EmptyCartFallsBackToServicePrice(t *testing.T) {
	repo := &fakeApptRepo{}
	carts := &fakeCartService{}
	uc := newTestUseCase(repo, carts, testNow())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(120), resp.Total)
	assert.Empty(t, resp.Items)
}

func TestUseCase_Execute_CollectsAllFormViolations(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{}, &fakeCartService{}, testNow())

	req := validRequest()
	req.ClientName = ""
	req.ClientEmail = "abc"
	req.ClientPhone = "123"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Fields, 3)

	fields := []string{verrs.Fields[0].Field, verrs.Fields[1].Field, verrs.Fields[2].Field}
	assert.Equal(t, []string{"clientName", "clientEmail", "clientPhone"}, fields)
}

func TestUseCase_Execute_SlotAlreadyTaken(t *testing.T) {
	repo := &fakeApptRepo{existing: []*domain.Appointment{
		{StartTime: types.TimeString("10:00"), Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(repo, &fakeCartService{}, testNow())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_CancelledAppointmentFreesSlot(t *testing.T) {
	repo := &fakeApptRepo{existing: []*domain.Appointment{
		{StartTime: types.TimeString("10:00"), Status: domain.StatusCancelled},
	}}
	carts := &fakeCartService{}
	uc := newTestUseCase(repo, carts, testNow())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_SlotOutsideBusinessHours(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
	}{
		{name: "before open", start: types.TimeString("08:00")},
		{name: "runs past close", start: types.TimeString("19:50")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeApptRepo{}, &fakeCartService{}, testNow())
			req := validRequest()
			req.StartTime = tt.start

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		})
	}
}

func TestUseCase_Execute_CartFromAnotherBarbershop(t *testing.T) {
	carts := &fakeCartService{cart: cartFor("barberweb-norte",
		domain.CartItem{ID: "corte-normal", Price: 120, Quantity: 1, BarbershopID: "barberweb-norte"},
	)}
	uc := newTestUseCase(&fakeApptRepo{}, carts, testNow())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_InvalidPaymentMethod(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{}, &fakeCartService{}, testNow())
	req := validRequest()
	req.PaymentMethod = domain.PaymentMethod("crypto")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestUseCase_Execute_CatalogMismatches(t *testing.T) {
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeApptRepo{}, &fakeCartService{}, testNow())
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
