package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	cartRepo "github.com/Darioantonio20/BarberPlatform/internal/infra/storage/cart"
)

type fakeStorage struct {
	carts    map[string]*domain.Cart
	loadErr  error
	saveErr  error
	clearErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{carts: map[string]*domain.Cart{}}
}

func (f *fakeStorage) Load(_ context.Context, sessionID string) (*domain.Cart, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	cart, ok := f.carts[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *cart
	copied.Items = append([]domain.CartItem{}, cart.Items...)
	return &copied, nil
}

func (f *fakeStorage) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if cart == nil || cart.IsEmpty() {
		delete(f.carts, sessionID)
		return nil
	}
	copied := *cart
	copied.Items = append([]domain.CartItem{}, cart.Items...)
	f.carts[sessionID] = &copied
	return nil
}

func (f *fakeStorage) Clear(_ context.Context, sessionID string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	delete(f.carts, sessionID)
	return nil
}

type fakeCatalog struct {
	known map[string]bool
}

func (f *fakeCatalog) GetBarbershop(id string) (*domain.Barbershop, error) {
	if !f.known[id] {
		return nil, errors.New("not found")
	}
	return &domain.Barbershop{ID: id}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(storage Storage) *Service {
	catalog := &fakeCatalog{known: map[string]bool{
		"barberweb-centro": true,
		"barberweb-norte":  true,
	}}
	return NewService(storage, catalog, nopLogger{})
}

func item(id string, price int64, shop string) domain.CartItem {
	return domain.CartItem{
		ID:           id,
		Type:         domain.ItemService,
		Name:         id,
		Price:        price,
		Quantity:     1,
		BarbershopID: shop,
	}
}

func TestService_Get_EmptySession(t *testing.T) {
	s := newTestService(newFakeStorage())

	cart, err := s.Get(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.BarbershopID)
	assert.Equal(t, int64(0), cart.Total)
}

func TestService_Get_CorruptedStateRecoversEmpty(t *testing.T) {
	storage := newFakeStorage()
	storage.loadErr = cartRepo.ErrCorrupted
	s := newTestService(storage)

	cart, err := s.Get(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestService_AddItem_SameItemTwiceAccumulates(t *testing.T) {
	s := newTestService(newFakeStorage())
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", item("corte-normal", 120, "barberweb-centro"))
	require.NoError(t, err)

	cart, err := s.AddItem(ctx, "s1", item("corte-normal", 120, "barberweb-centro"))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(240), cart.Total)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestService_AddItem_DifferentBarbershopResetsCart(t *testing.T) {
	s := newTestService(newFakeStorage())
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", item("corte-normal", 120, "barberweb-centro"))
	require.NoError(t, err)

	cart, err := s.AddItem(ctx, "s1", item("arreglo-barba", 100, "barberweb-norte"))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "arreglo-barba", cart.Items[0].ID)
	assert.Equal(t, "barberweb-norte", cart.BarbershopID)
	assert.Equal(t, int64(100), cart.Total)
}

func TestService_AddItem_UnknownBarbershop(t *testing.T) {
	s := newTestService(newFakeStorage())

	_, err := s.AddItem(context.Background(), "s1", item("corte-normal", 120, "no-such-shop"))
	assert.ErrorIs(t, err, ErrBarbershopNotFound)
}

func TestService_AddItem_InvalidItem(t *testing.T) {
	s := newTestService(newFakeStorage())

	_, err := s.AddItem(context.Background(), "s1", domain.CartItem{Name: "x", BarbershopID: "barberweb-centro"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_RemoveItem_AbsentIsNoop(t *testing.T) {
	s := newTestService(newFakeStorage())
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", item("corte-normal", 120, "barberweb-centro"))
	require.NoError(t, err)

	cart, err := s.RemoveItem(ctx, "s1", "no-such-item")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(120), cart.Total)
}

func TestService_RemoveItem_LastItemEmptiesCart(t *testing.T) {
	storage := newFakeStorage()
	s := newTestService(storage)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", item("corte-normal", 120, "barberweb-centro"))
	require.NoError(t, err)

	cart, err := s.RemoveItem(ctx, "s1", "corte-normal")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total)

	// empty cart drops the saved state entirely
	_, ok := storage.carts["s1"]
	assert.False(t, ok)
}

func TestService_SetQuantity_ZeroRemoves(t *testing.T) {
	s := newTestService(newFakeStorage())
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", item("corte-normal", 120, "barberweb-centro"))
	require.NoError(t, err)

	cart, err := s.SetQuantity(ctx, "s1", "corte-normal", 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestService_SetQuantity_AbsentItemIsNoOp(t *testing.T) {
	s := newTestService(newFakeStorage())
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", item("corte-normal", 120, "barberweb-centro"))
	require.NoError(t, err)

	cart, err := s.SetQuantity(ctx, "s1", "no-such-item", 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, int64(120), cart.Total)
}

func TestService_TotalAlwaysDerivedFromItems(t *testing.T) {
	s := newTestService(newFakeStorage())
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", item("corte-normal", 100, "barberweb-centro"))
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "s1", item("delineado-ceja", 50, "barberweb-centro"))
	require.NoError(t, err)

	cart, err := s.SetQuantity(ctx, "s1", "corte-normal", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(350), cart.Total)

	cart, err = s.RemoveItem(ctx, "s1", "delineado-ceja")
	require.NoError(t, err)
	assert.Equal(t, int64(300), cart.Total)
}

func TestService_Clear(t *testing.T) {
	storage := newFakeStorage()
	s := newTestService(storage)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", item("corte-normal", 120, "barberweb-centro"))
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx, "s1"))

	cart, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
