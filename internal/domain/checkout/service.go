// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"math"

	"github.com/your-org/auramart-backend/internal/domain/cart"
	"github.com/your-org/auramart-backend/internal/domain/rewards"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart
var ErrEmptyCart = errors.New("cart is empty")

// Service runs the simulated checkout: no payment is taken and no order
// record is written. Placing an order clears the cart and credits
// loyalty points.
type Service struct {
	cartService    *cart.Service
	rewardsService *rewards.Service
}

// NewService creates a new checkout service
func NewService(cartService *cart.Service, rewardsService *rewards.Service) *Service {
	return &Service{
		cartService:    cartService,
		rewardsService: rewardsService,
	}
}

// Result summarizes a completed checkout
type Result struct {
	OrderTotal    float64        `json:"order_total"`
	ItemCount     int            `json:"item_count"`
	PointsAwarded int            `json:"points_awarded"`
	Rewards       *rewards.State `json:"rewards"`
}

// Checkout places the session's order: the cart is cleared, one point is
// awarded per whole dollar of the order total, and badge rules are
// re-evaluated. An empty cart cannot be checked out.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*Result, error) {
	c, err := s.cartService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	total := c.Total()
	count := c.Count()

	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	points := int(math.Floor(total))
	if _, err := s.rewardsService.AddPoints(ctx, sessionID, points, "order placed"); err != nil {
		return nil, err
	}

	state, err := s.rewardsService.CheckBadges(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &Result{
		OrderTotal:    total,
		ItemCount:     count,
		PointsAwarded: points,
		Rewards:       state,
	}, nil
}
