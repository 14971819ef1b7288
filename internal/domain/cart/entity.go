// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/auramart-backend/internal/catalog"
)

// Item represents a cart line item. Name, price and image are snapshots
// taken when the product was first added; the catalog is immutable, so
// the snapshot never drifts, but the copy is deliberate.
type Item struct {
	ID       int     `json:"id"` // Product ID
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart represents a session shopping cart. All mutations are pure state
// transitions; persistence is the Service's concern.
type Cart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Add inserts the product with quantity 1, or increments the quantity of
// the existing line item.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, Item{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	})
}

// UpdateQuantity sets the quantity of the line item with the given
// product ID. A quantity of zero or less removes the item. Absent IDs
// are a no-op.
func (c *Cart) UpdateQuantity(id, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}

	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line item with the given product ID, if present
func (c *Cart) Remove(id int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []Item{}
}

// Total is the sum of price times quantity over all items, derived on
// every read
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count is the sum of quantities, not the number of line items: three
// units of one product count as three.
func (c *Cart) Count() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
