// Package memory implements an in-memory SKU catalog.
package memory

import (
	"context"
	"sync"

	"skuflow/pkg/sku"
)

// Catalog provides an in-memory implementation of sku.Catalog. Lookups by id
// and barcode go through separate indices so duplicate checks stay constant
// time; List preserves insertion order.
type Catalog struct {
	mu        sync.RWMutex
	byID      map[string]sku.SKU
	byBarcode map[string]string
	order     []string
}

// New creates a new in-memory catalog.
func New() *Catalog {
	return &Catalog{
		byID:      make(map[string]sku.SKU),
		byBarcode: make(map[string]string),
	}
}

// Add stores the SKU. Both indices and the insertion sequence are updated
// under one lock, so a rejected insert leaves no partial state behind.
func (c *Catalog) Add(ctx context.Context, s sku.SKU) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[s.ID]; ok {
		return sku.ErrDuplicateID
	}
	if _, ok := c.byBarcode[s.Barcode]; ok {
		return sku.ErrDuplicateBarcode
	}
	c.byID[s.ID] = s
	c.byBarcode[s.Barcode] = s.ID
	c.order = append(c.order, s.ID)
	return nil
}

// GetByID retrieves a SKU by its id.
func (c *Catalog) GetByID(ctx context.Context, id string) (sku.SKU, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byID[id]
	if !ok {
		return sku.SKU{}, sku.ErrNotFound
	}
	return s, nil
}

// GetByBarcode retrieves a SKU by its barcode.
func (c *Catalog) GetByBarcode(ctx context.Context, code string) (sku.SKU, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.byBarcode[code]
	if !ok {
		return sku.SKU{}, sku.ErrNotFound
	}
	return c.byID[id], nil
}

// List returns all SKUs in insertion order.
func (c *Catalog) List(ctx context.Context) ([]sku.SKU, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]sku.SKU, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out, nil
}
