package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsSixProducts(t *testing.T) {
	cat := New()

	assert.Equal(t, 6, cat.Len())
	assert.Len(t, cat.All(), 6)
}

func TestLookup(t *testing.T) {
	cat := New()

	p, ok := cat.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Quantum Wireless Headphones", p.Name)
	assert.Equal(t, 299.0, p.Price)
	assert.Equal(t, CategoryAudio, p.Category)
	assert.True(t, p.Trending)

	_, ok = cat.Lookup(42)
	assert.False(t, ok)
}

func TestCategoriesIncludesAll(t *testing.T) {
	cat := New()

	categories := cat.Categories()
	require.Len(t, categories, 6)
	assert.Equal(t, "all", categories[0].ID)
	assert.Equal(t, "All Products", categories[0].Label)
}

func TestAllReturnsCopy(t *testing.T) {
	cat := New()

	products := cat.All()
	products[0].Name = "mutated"

	p, ok := cat.Lookup(products[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", p.Name)
}
