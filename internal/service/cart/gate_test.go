package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

func TestCheckAccess(t *testing.T) {
	tests := []struct {
		name         string
		cart         *domain.Cart
		requireItems bool
		wantErr      error
	}{
		{
			name:         "no saved state",
			cart:         nil,
			requireItems: true,
			wantErr:      ErrNoLocationSelected,
		},
		{
			name:         "location chosen, empty cart, items required",
			cart:         &domain.Cart{Items: []domain.CartItem{}, BarbershopID: "barberweb-centro"},
			requireItems: true,
			wantErr:      ErrCartEmpty,
		},
		{
			name:         "location chosen, empty cart, items not required",
			cart:         &domain.Cart{Items: []domain.CartItem{}, BarbershopID: "barberweb-centro"},
			requireItems: false,
			wantErr:      nil,
		},
		{
			name: "items without location",
			cart: &domain.Cart{
				Items: []domain.CartItem{{ID: "corte-normal", Price: 120, Quantity: 1}},
			},
			requireItems: true,
			wantErr:      ErrLocationMissing,
		},
		{
			name: "location and items",
			cart: &domain.Cart{
				Items:        []domain.CartItem{{ID: "corte-normal", Price: 120, Quantity: 1}},
				BarbershopID: "barberweb-centro",
			},
			requireItems: true,
			wantErr:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newFakeStorage()
			if tt.cart != nil {
				storage.carts["s1"] = tt.cart
			}
			s := newTestService(storage)

			err := s.CheckAccess(context.Background(), "s1", tt.requireItems)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
