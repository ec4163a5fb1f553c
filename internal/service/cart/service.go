package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	cartRepo "github.com/Darioantonio20/BarberPlatform/internal/infra/storage/cart"
)

// Service manages per-session carts. Every mutation goes through the durable
// mirror so a session survives restarts of both the client and the server.
type Service struct {
	storage Storage
	catalog CatalogProvider
	logger  Logger
}

// NewService creates a new cart service.
func NewService(storage Storage, catalog CatalogProvider, logger Logger) *Service {
	return &Service{
		storage: storage,
		catalog: catalog,
		logger:  logger,
	}
}

// Get returns the session's cart. A session without saved state gets a fresh
// empty cart. A corrupted saved payload is dropped and replaced with an empty
// cart rather than failing the request.
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.load(ctx, sessionID)
}

// AddItem adds an item to the session's cart. Adding an item from a different
// barbershop than the current cart's resets the cart first, so a cart never
// mixes locations. Adding an item already present accumulates its quantity.
func (s *Service) AddItem(ctx context.Context, sessionID string, item domain.CartItem) (*domain.Cart, error) {
	if item.ID == "" || item.Name == "" || item.BarbershopID == "" {
		return nil, fmt.Errorf("%w: item id, name and barbershopId are required", ErrInvalidInput)
	}
	if item.Price < 0 {
		return nil, fmt.Errorf("%w: item price must not be negative", ErrInvalidInput)
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	if _, err := s.catalog.GetBarbershop(item.BarbershopID); err != nil {
		s.logger.Warn("AddItem: unknown barbershop=%s for session=%s", item.BarbershopID, sessionID)
		return nil, ErrBarbershopNotFound
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if cart.BarbershopID != "" && cart.BarbershopID != item.BarbershopID {
		s.logger.Info("AddItem: session=%s switched barbershop %s -> %s, resetting cart",
			sessionID, cart.BarbershopID, item.BarbershopID)
		cart = domain.NewCart()
	}
	cart.BarbershopID = item.BarbershopID

	if i := cart.FindItem(item.ID); i >= 0 {
		cart.Items[i].Quantity += item.Quantity
	} else {
		cart.Items = append(cart.Items, item)
	}
	cart.RecomputeTotal()

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.logger.Info("AddItem: session=%s item=%s quantity=%d total=%d",
		sessionID, item.ID, item.Quantity, cart.Total)
	return cart, nil
}

// RemoveItem removes an item from the session's cart. Removing an item that
// is not in the cart leaves the cart unchanged.
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(itemID) {
		return cart, nil
	}
	cart.RecomputeTotal()

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.logger.Info("RemoveItem: session=%s item=%s total=%d", sessionID, itemID, cart.Total)
	return cart, nil
}

// SetQuantity sets an item's quantity. A quantity of zero or less removes the
// item, the same as RemoveItem. An absent item id leaves the cart unchanged.
func (s *Service) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, itemID)
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItem(itemID)
	if i < 0 {
		s.logger.Warn("SetQuantity: session=%s item=%s not in cart", sessionID, itemID)
		return cart, nil
	}
	cart.Items[i].Quantity = quantity
	cart.RecomputeTotal()

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.logger.Info("SetQuantity: session=%s item=%s quantity=%d total=%d",
		sessionID, itemID, quantity, cart.Total)
	return cart, nil
}

// Clear empties the session's cart and drops its saved state.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.storage.Clear(ctx, sessionID); err != nil {
		s.logger.Error("Clear: session=%s storage error: %v", sessionID, err)
		return fmt.Errorf("%w: Clear - storage error: %v", ErrInternal, err)
	}
	s.logger.Info("Clear: session=%s cart cleared", sessionID)
	return nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCorrupted) {
			s.logger.Warn("load: session=%s has corrupted cart state, starting empty: %v", sessionID, err)
			return domain.NewCart(), nil
		}
		s.logger.Error("load: session=%s storage error: %v", sessionID, err)
		return nil, fmt.Errorf("%w: load - storage error: %v", ErrInternal, err)
	}
	if cart == nil {
		return domain.NewCart(), nil
	}
	return cart, nil
}

func (s *Service) save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if err := s.storage.Save(ctx, sessionID, cart); err != nil {
		s.logger.Error("save: session=%s storage error: %v", sessionID, err)
		return fmt.Errorf("%w: save - storage error: %v", ErrInternal, err)
	}
	return nil
}
