package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

const (
	cartKeyPrefix     = "cart:"
	locationKeyPrefix = "barbershopId:"
)

// Repository mirrors per-session carts in Redis. Items and the selected
// barbershop live under separate keys, always written together; emptying the
// cart deletes both.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository creates a cart repository over the given Redis client.
// ttl <= 0 keeps sessions forever.
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// Load returns the stored cart for the session, or nil when the session has
// no cart yet. A stored payload that no longer decodes returns ErrCorrupted
// so the caller can recover with an empty cart instead of failing the request.
func (r *Repository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	pipe := r.client.Pipeline()
	itemsCmd := pipe.Get(ctx, cartKeyPrefix+sessionID)
	locationCmd := pipe.Get(ctx, locationKeyPrefix+sessionID)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("%w: Load: %v", ErrLoadCart, err)
	}

	itemsRaw, itemsErr := itemsCmd.Result()
	location, locationErr := locationCmd.Result()

	if itemsErr == redis.Nil && locationErr == redis.Nil {
		return nil, nil
	}

	cart := domain.NewCart()
	if locationErr == nil {
		cart.BarbershopID = location
	}
	if itemsErr == nil {
		if err := json.Unmarshal([]byte(itemsRaw), &cart.Items); err != nil {
			return nil, fmt.Errorf("%w: Load: %v", ErrCorrupted, err)
		}
	}
	cart.RecomputeTotal()

	return cart, nil
}

// Save writes both keys for the session. An empty cart removes its keys, the
// same way the storefront drops its saved state once the last item goes away.
func (r *Repository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if cart == nil || cart.IsEmpty() {
		return r.Clear(ctx, sessionID)
	}

	items, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("%w: Save - encode items: %v", ErrSaveCart, err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, cartKeyPrefix+sessionID, items, r.ttl)
	pipe.Set(ctx, locationKeyPrefix+sessionID, cart.BarbershopID, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrSaveCart, err)
	}

	return nil
}

// Clear removes the session's cart and location keys.
func (r *Repository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+sessionID, locationKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: Clear: %v", ErrClearCart, err)
	}
	return nil
}
