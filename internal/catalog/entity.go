// internal/catalog/entity.go
package catalog

// Category identifies a fixed product category
type Category string

// Product categories
const (
	CategoryAudio    Category = "audio"
	CategoryWearable Category = "wearable"
	CategoryGaming   Category = "gaming"
	CategorySmart    Category = "smart"
	CategoryVR       Category = "vr"
)

// Product represents a catalog product. Products are seeded at process
// start and never mutated afterwards.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"` // Price in dollars
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	InStock     bool     `json:"in_stock"`
	Trending    bool     `json:"trending,omitempty"`
	AIGenerated bool     `json:"ai_generated,omitempty"`
}

// CategoryInfo represents a selectable category filter option
type CategoryInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
