package order

import (
	"context"
	"errors"
	"time"
)

// Order records that a SKU's delivery happened at a given time. Orders are
// keyed by SKU: a retried or corrected delivery notification replaces the
// stored timestamp rather than adding a second record.
type Order struct {
	SKUID       string    `json:"sku_id"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// Ledger defines behavior for persisting delivery records.
type Ledger interface {
	Upsert(ctx context.Context, o Order) error
	GetBySKU(ctx context.Context, skuID string) (Order, error)
}

// ErrNotFound indicates no delivery record exists for the SKU.
var ErrNotFound = errors.New("order not found")
