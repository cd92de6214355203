// Package postgres implements a PostgreSQL-backed order ledger.
package postgres

import (
	"context"
	"database/sql"

	"skuflow/pkg/order"
)

// Ledger persists delivery records in PostgreSQL.
type Ledger struct {
	db *sql.DB
}

// New creates a PostgreSQL ledger.
func New(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Migrate creates the orders table if it does not exist.
func (l *Ledger) Migrate(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS orders (sku_id TEXT PRIMARY KEY, delivered_at TIMESTAMPTZ NOT NULL)")
	return err
}

// Upsert inserts a delivery record, replacing the timestamp when one already
// exists for the SKU.
func (l *Ledger) Upsert(ctx context.Context, o order.Order) error {
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO orders (sku_id, delivered_at) VALUES ($1,$2) ON CONFLICT (sku_id) DO UPDATE SET delivered_at=EXCLUDED.delivered_at",
		o.SKUID, o.DeliveredAt)
	return err
}

// GetBySKU retrieves the delivery record for a SKU.
func (l *Ledger) GetBySKU(ctx context.Context, skuID string) (order.Order, error) {
	var o order.Order
	err := l.db.QueryRowContext(ctx,
		"SELECT sku_id, delivered_at FROM orders WHERE sku_id=$1", skuID).
		Scan(&o.SKUID, &o.DeliveredAt)
	if err == sql.ErrNoRows {
		return order.Order{}, order.ErrNotFound
	}
	return o, err
}
