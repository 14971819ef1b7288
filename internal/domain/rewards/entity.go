// internal/domain/rewards/entity.go
package rewards

// pointsPerLevel is the fixed level step: level = points/500 + 1
const pointsPerLevel = 500

// Badge represents a loyalty badge. The set is fixed; only the earned
// flag ever changes, and it is never cleared once set.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

// State represents a session's gamification state. Level is derived from
// points on read and never stored.
type State struct {
	Points int     `json:"points"`
	Level  int     `json:"level"`
	Badges []Badge `json:"badges"`
}

// levelFor derives the level for a points total. The quotient must floor
// toward negative infinity, not truncate: balances can go negative and
// Go's integer division would otherwise round them up a level.
func levelFor(points int) int {
	level := points / pointsPerLevel
	if points < 0 && points%pointsPerLevel != 0 {
		level--
	}
	return level + 1
}

// defaultBadges is the initial badge set for a fresh session.
// Only the points-collector rule is evaluated today; the other badges
// are declared for the storefront UI but have no unlock rule yet.
func defaultBadges() []Badge {
	return []Badge{
		{ID: "first-purchase", Name: "First Steps", Description: "Make your first purchase", Icon: "🎯"},
		{ID: "five-purchases", Name: "Regular Shopper", Description: "Make 5 purchases", Icon: "🛍️"},
		{ID: "wishlist-master", Name: "Wishlist Master", Description: "Add 10 items to wishlist", Icon: "❤️"},
		{ID: "review-writer", Name: "Reviewer", Description: "Write your first review", Icon: "⭐"},
		{ID: "points-collector", Name: "Points Collector", Description: "Earn 1000 points", Icon: "💎"},
	}
}
