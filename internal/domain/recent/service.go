// internal/domain/recent/service.go
package recent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/infrastructure/kv"
)

// maxEntries bounds the recently-viewed list to the 8 most recent views
const maxEntries = 8

// Service persists a per-session recently-viewed product list:
// most-recent-first, deduplicated, at most maxEntries long.
type Service struct {
	store  *kv.Client
	config *config.Config
}

// NewService creates a new recently-viewed service
func NewService(store *kv.Client, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

// List rehydrates the recently-viewed product IDs for a session,
// most recent first. Missing or unparsable values yield an empty list.
func (s *Service) List(ctx context.Context, sessionID string) ([]int, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, found, err := s.store.Get(ctx, recentKey(sessionID))
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

// Add records a product view: any prior occurrence of the ID is removed,
// the ID is prepended, and the list is truncated to maxEntries.
func (s *Service) Add(ctx context.Context, sessionID string, productID int) ([]int, error) {
	ids, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	filtered := make([]int, 0, len(ids)+1)
	filtered = append(filtered, productID)
	for _, id := range ids {
		if id != productID {
			filtered = append(filtered, id)
		}
	}
	if len(filtered) > maxEntries {
		filtered = filtered[:maxEntries]
	}

	if err := s.store.SetJSON(ctx, recentKey(sessionID), filtered, s.config.Session.TTL); err != nil {
		return nil, err
	}

	return filtered, nil
}

func recentKey(sessionID string) string {
	return fmt.Sprintf("recent:session:%s", sessionID)
}
