// Package memory implements an in-memory order ledger.
package memory

import (
	"context"
	"sync"

	"skuflow/pkg/order"
)

// Ledger provides an in-memory implementation of order.Ledger.
type Ledger struct {
	mu     sync.RWMutex
	orders map[string]order.Order
}

// New creates a new in-memory ledger.
func New() *Ledger {
	return &Ledger{orders: make(map[string]order.Order)}
}

// Upsert stores the order, replacing any existing record for the same SKU.
func (l *Ledger) Upsert(ctx context.Context, o order.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders[o.SKUID] = o
	return nil
}

// GetBySKU retrieves the delivery record for a SKU.
func (l *Ledger) GetBySKU(ctx context.Context, skuID string) (order.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	o, ok := l.orders[skuID]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return o, nil
}
