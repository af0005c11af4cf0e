package catalog

import (
	"errors"
	"strings"
	"sync"

	"shopdesk/internal/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock quantity")
)

// minSuggestWordLen filters out short filler words before the
// token-overlap lookup.
const minSuggestWordLen = 3

// Catalog is an in-memory, read-mostly view of the product list.
// Iteration order is the order products were supplied in; lookups that
// return several products preserve it. Stock levels are the only mutable
// part and change only through Reserve.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
}

// New copies the supplied products into a catalog.
func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make([]domain.Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.index[p.ID] = i
	}
	return c
}

// Products returns a snapshot of the catalog in catalog order.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id and its current stock level.
func (c *Catalog) Get(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// FindByPhrase resolves an utterance to the first product (catalog order)
// whose lower-cased name appears verbatim inside it.
func (c *Catalog) FindByPhrase(utterance string) (domain.Product, bool) {
	lower := strings.ToLower(utterance)
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Suggest is the token-overlap fallback: the utterance is split into
// words, words longer than minSuggestWordLen are kept, and products whose
// name contains any such word are returned in catalog order, capped at
// limit.
func (c *Catalog) Suggest(utterance string, limit int) []domain.Product {
	words := strings.Fields(strings.ToLower(utterance))
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Product
	for _, p := range c.products {
		name := strings.ToLower(p.Name)
		for _, w := range words {
			if len(w) > minSuggestWordLen && strings.Contains(name, w) {
				out = append(out, p)
				break
			}
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// InStockByCategory returns up to limit in-stock products, optionally
// restricted to one category. An empty category matches everything.
func (c *Catalog) InStockByCategory(category string, limit int) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Product
	for _, p := range c.products {
		if p.StockQuantity <= 0 {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Reserve decrements a product's stock by quantity. The check and
// decrement happen under one lock so stock can never go negative; on
// ErrInsufficientStock the stock level is untouched.
func (c *Catalog) Reserve(id string, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[id]
	if !ok {
		return ErrProductNotFound
	}
	if c.products[i].StockQuantity < quantity {
		return ErrInsufficientStock
	}
	c.products[i].StockQuantity -= quantity
	return nil
}
