package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"tecstore/internal/domain"
	"tecstore/internal/store"
)

// Apply loads a demo account, its profile and a small cart into the store
// for manual testing. It skips any aggregate that already has data.
func Apply(ctx context.Context, st store.Store, logger *logrus.Logger) error {
	users := map[string]domain.User{}
	if err := store.ReadJSON(ctx, st, store.UsersKey, &users); err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if len(users) == 0 {
		users["demo@tecstore.pe"] = domain.User{Password: "demo1234"}
		if err := store.WriteJSON(ctx, st, store.UsersKey, users); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		profiles := map[string]domain.Profile{
			"demo@tecstore.pe": {
				FullName:  "Cuenta Demo",
				Birthdate: "1990-01-01",
				Postal:    "15001",
				Address:   "Av. Arequipa 1234, Lima",
				DNI:       "12345678",
				Phone:     "+51987654321",
			},
		}
		if err := store.WriteJSON(ctx, st, store.ProfilesKey, profiles); err != nil {
			return fmt.Errorf("seed profiles: %w", err)
		}
		logger.Info("seeded demo account")
	}

	cart := []domain.CartItem{}
	if err := store.ReadJSON(ctx, st, store.CartKey, &cart); err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	if len(cart) == 0 {
		cart = []domain.CartItem{
			{ID: "laptop-14", Name: "Laptop 14\"", Price: 2499.90, Image: "img/laptop.png", Quantity: 1},
			{ID: "mouse-usb", Name: "Mouse USB", Price: 49.90, Image: "img/mouse.png", Quantity: 2},
		}
		if err := store.WriteJSON(ctx, st, store.CartKey, cart); err != nil {
			return fmt.Errorf("seed cart: %w", err)
		}
		logger.Info("seeded demo cart")
	}

	return nil
}
