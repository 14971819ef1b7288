// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/your-org/auramart-backend/internal/catalog"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/infrastructure/kv"
)

// Service persists session carts in the key-value store
type Service struct {
	store  *kv.Client
	config *config.Config
}

// NewService creates a new cart service
func NewService(store *kv.Client, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

// Get rehydrates the cart for a session. A missing or unparsable value
// yields an empty cart, never an error.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, found, err := s.store.Get(ctx, cartKey(sessionID))
	if err != nil {
		return nil, err
	}
	if !found {
		return emptyCart(sessionID), nil
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		// Corrupt payload: fall back to an empty cart rather than
		// locking the session out of its cart forever.
		return emptyCart(sessionID), nil
	}

	return &c, nil
}

// Add adds one unit of the product to the session cart and persists it
func (s *Service) Add(ctx context.Context, sessionID string, p catalog.Product) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Add(p)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity sets a line item's quantity; zero or less removes it
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(productID, quantity)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove deletes a line item from the session cart
func (s *Service) Remove(ctx context.Context, sessionID string, productID int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Remove(productID)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear removes the session cart entirely
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required")
	}
	return s.store.Del(ctx, cartKey(sessionID))
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	c.UpdatedAt = time.Now().UTC()
	return s.store.SetJSON(ctx, cartKey(c.SessionID), c, s.config.Session.TTL)
}

func emptyCart(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
