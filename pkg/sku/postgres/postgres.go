// Package postgres implements a PostgreSQL-backed SKU catalog.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"skuflow/pkg/sku"
)

// Catalog persists SKUs in PostgreSQL.
type Catalog struct {
	db *sql.DB
}

// New creates a PostgreSQL catalog. The caller must ensure the skus table
// exists with unique constraints on id and barcode.
func New(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// Migrate creates the skus table if it does not exist.
func (c *Catalog) Migrate(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS skus (
		id TEXT PRIMARY KEY,
		barcode TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		brand TEXT NOT NULL,
		image_url TEXT NOT NULL,
		tags TEXT[] NOT NULL DEFAULT '{}',
		position SERIAL
	)`)
	return err
}

// Add inserts a new SKU. Unique violations map to the catalog's duplicate
// sentinels so callers handle memory and postgres backends the same way.
func (c *Catalog) Add(ctx context.Context, s sku.SKU) error {
	_, err := c.db.ExecContext(ctx,
		"INSERT INTO skus (id, barcode, title, brand, image_url, tags) VALUES ($1,$2,$3,$4,$5,$6)",
		s.ID, s.Barcode, s.Title, s.Brand, s.ImageURL, pq.Array(s.Tags))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "barcode") {
			return sku.ErrDuplicateBarcode
		}
		return sku.ErrDuplicateID
	}
	return err
}

// GetByID retrieves a SKU by id.
func (c *Catalog) GetByID(ctx context.Context, id string) (sku.SKU, error) {
	return c.get(ctx, "SELECT id, barcode, title, brand, image_url, tags FROM skus WHERE id=$1", id)
}

// GetByBarcode retrieves a SKU by barcode.
func (c *Catalog) GetByBarcode(ctx context.Context, code string) (sku.SKU, error) {
	return c.get(ctx, "SELECT id, barcode, title, brand, image_url, tags FROM skus WHERE barcode=$1", code)
}

func (c *Catalog) get(ctx context.Context, query, arg string) (sku.SKU, error) {
	var s sku.SKU
	err := c.db.QueryRowContext(ctx, query, arg).
		Scan(&s.ID, &s.Barcode, &s.Title, &s.Brand, &s.ImageURL, pq.Array(&s.Tags))
	if err == sql.ErrNoRows {
		return sku.SKU{}, sku.ErrNotFound
	}
	return s, err
}

// List fetches all SKUs in insertion order.
func (c *Catalog) List(ctx context.Context) ([]sku.SKU, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT id, barcode, title, brand, image_url, tags FROM skus ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var skus []sku.SKU
	for rows.Next() {
		var s sku.SKU
		if err := rows.Scan(&s.ID, &s.Barcode, &s.Title, &s.Brand, &s.ImageURL, pq.Array(&s.Tags)); err != nil {
			return nil, err
		}
		skus = append(skus, s)
	}
	return skus, rows.Err()
}
