// internal/catalog/catalog.go
package catalog

// Catalog holds the immutable product seed and serves lookups.
// Construct once at application start and share between consumers.
type Catalog struct {
	products   []Product
	byID       map[int]Product
	categories []CategoryInfo
}

// New creates a catalog from the static seed
func New() *Catalog {
	products := seedProducts()

	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Catalog{
		products:   products,
		byID:       byID,
		categories: seedCategories(),
	}
}

// All returns every product in seed order. The returned slice is a copy;
// callers may reorder it freely.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup returns the product with the given ID
func (c *Catalog) Lookup(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the fixed category filter list
func (c *Catalog) Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of seeded products
func (c *Catalog) Len() int {
	return len(c.products)
}
