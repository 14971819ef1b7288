package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/auramart-backend/internal/catalog"
)

func testProduct(id int, name string, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: name, Price: price, Image: "/img.jpg"}
}

func TestAddSameProductIncrementsQuantity(t *testing.T) {
	c := &Cart{}
	p := testProduct(1, "Headphones", 299)

	for i := 0; i < 4; i++ {
		c.Add(p)
	}

	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.Equal(t, 4, c.Count())
}

func TestAddSnapshotsProductFields(t *testing.T) {
	c := &Cart{}
	c.Add(testProduct(2, "Watch", 449))

	require.Len(t, c.Items, 1)
	item := c.Items[0]
	assert.Equal(t, 2, item.ID)
	assert.Equal(t, "Watch", item.Name)
	assert.Equal(t, 449.0, item.Price)
	assert.Equal(t, "/img.jpg", item.Image)
	assert.Equal(t, 1, item.Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantItems int
		wantQty   int
	}{
		{"positive sets quantity", 5, 1, 5},
		{"zero removes item", 0, 0, 0},
		{"negative removes item", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cart{}
			c.Add(testProduct(1, "Headphones", 299))

			c.UpdateQuantity(1, tt.quantity)

			assert.Len(t, c.Items, tt.wantItems)
			if tt.wantItems > 0 {
				assert.Equal(t, tt.wantQty, c.Items[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantityAbsentIDIsNoOp(t *testing.T) {
	c := &Cart{}
	c.Add(testProduct(1, "Headphones", 299))

	c.UpdateQuantity(99, 3)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	c := &Cart{}
	c.Add(testProduct(1, "Headphones", 299))

	c.Remove(99)

	assert.Len(t, c.Items, 1)
}

func TestTotalAndCount(t *testing.T) {
	c := &Cart{}
	p1 := testProduct(1, "Headphones", 299)
	p3 := testProduct(3, "Keyboard", 199)

	c.Add(p1)
	c.Add(p1)
	c.Add(p3)

	// Two distinct line items, three units in total
	require.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 797.00, c.Total(), 0.001)
}

func TestClearDrivesTotalToZero(t *testing.T) {
	c := &Cart{}
	c.Add(testProduct(1, "Headphones", 299))
	c.Add(testProduct(3, "Keyboard", 199))

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total())
	assert.Zero(t, c.Count())
}
