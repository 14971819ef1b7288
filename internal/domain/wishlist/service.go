// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/infrastructure/kv"
)

// Service persists a per-session set of wishlisted product IDs.
// Membership order is irrelevant; IDs are stored in toggle order.
type Service struct {
	store  *kv.Client
	config *config.Config
}

// NewService creates a new wishlist service
func NewService(store *kv.Client, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

// IDs rehydrates the wishlisted product IDs for a session. Missing or
// unparsable values yield an empty list.
func (s *Service) IDs(ctx context.Context, sessionID string) ([]int, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, found, err := s.store.Get(ctx, wishlistKey(sessionID))
	if err != nil {
		return nil, err
	}
	if !found {
		return []int{}, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return []int{}, nil
	}

	return ids, nil
}

// Toggle adds the product ID if absent and removes it if present.
// Returns whether the ID is in the wishlist after the toggle.
func (s *Service) Toggle(ctx context.Context, sessionID string, productID int) (bool, error) {
	ids, err := s.IDs(ctx, sessionID)
	if err != nil {
		return false, err
	}

	added := true
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			added = false
			break
		}
	}
	if added {
		ids = append(ids, productID)
	}

	if err := s.store.SetJSON(ctx, wishlistKey(sessionID), ids, s.config.Session.TTL); err != nil {
		return false, err
	}

	return added, nil
}

// Contains reports whether the product ID is in the session's wishlist
func (s *Service) Contains(ctx context.Context, sessionID string, productID int) (bool, error) {
	ids, err := s.IDs(ctx, sessionID)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func wishlistKey(sessionID string) string {
	return fmt.Sprintf("wishlist:session:%s", sessionID)
}
