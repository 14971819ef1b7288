// internal/domain/rewards/service.go
package rewards

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/infrastructure/kv"
)

// pointsCollectorThreshold unlocks the points-collector badge
const pointsCollectorThreshold = 1000

// Service persists session points and badges under separate keys.
// Either key may exist without the other; rehydration tolerates that.
type Service struct {
	store  *kv.Client
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new rewards service
func NewService(store *kv.Client, cfg *config.Config, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// Get rehydrates the gamification state for a session. Points and badges
// are read independently; a missing or unparsable value falls back to
// zero points or the default badge set.
func (s *Service) Get(ctx context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	points, err := s.loadPoints(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	badges, err := s.loadBadges(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &State{
		Points: points,
		Level:  levelFor(points),
		Badges: badges,
	}, nil
}

// AddPoints credits points to the session. The reason is recorded in the
// log only; it does not affect the balance. Negative amounts are
// accepted unchanged, as the storefront has always done.
func (s *Service) AddPoints(ctx context.Context, sessionID string, amount int, reason string) (*State, error) {
	state, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Points += amount
	state.Level = levelFor(state.Points)

	if err := s.savePoints(ctx, sessionID, state.Points); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"amount":     amount,
		"points":     state.Points,
		"reason":     reason,
	}).Debug("Points awarded")

	return state, nil
}

// CheckBadges evaluates the badge unlock rules against the current state
// and persists any newly earned badges. Badges are never unearned.
// Callers invoke this after point-affecting actions; AddPoints does not
// trigger it.
func (s *Service) CheckBadges(ctx context.Context, sessionID string) (*State, error) {
	state, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range state.Badges {
		if state.Badges[i].Earned {
			continue
		}
		if state.Badges[i].ID == "points-collector" && state.Points >= pointsCollectorThreshold {
			state.Badges[i].Earned = true
			changed = true
		}
	}

	if changed {
		if err := s.saveBadges(ctx, sessionID, state.Badges); err != nil {
			return nil, err
		}
	}

	return state, nil
}

func (s *Service) loadPoints(ctx context.Context, sessionID string) (int, error) {
	data, found, err := s.store.Get(ctx, pointsKey(sessionID))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	points, err := strconv.Atoi(data)
	if err != nil {
		return 0, nil
	}
	return points, nil
}

func (s *Service) loadBadges(ctx context.Context, sessionID string) ([]Badge, error) {
	data, found, err := s.store.Get(ctx, badgesKey(sessionID))
	if err != nil {
		return nil, err
	}
	if !found {
		return defaultBadges(), nil
	}

	var badges []Badge
	if err := json.Unmarshal([]byte(data), &badges); err != nil {
		return defaultBadges(), nil
	}
	return badges, nil
}

func (s *Service) savePoints(ctx context.Context, sessionID string, points int) error {
	return s.store.Set(ctx, pointsKey(sessionID), strconv.Itoa(points), s.config.Session.TTL)
}

func (s *Service) saveBadges(ctx context.Context, sessionID string, badges []Badge) error {
	return s.store.SetJSON(ctx, badgesKey(sessionID), badges, s.config.Session.TTL)
}

func pointsKey(sessionID string) string {
	return fmt.Sprintf("points:session:%s", sessionID)
}

func badgesKey(sessionID string) string {
	return fmt.Sprintf("badges:session:%s", sessionID)
}
