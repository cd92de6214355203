package sku

import (
	"context"
	"errors"
)

// SKU represents one catalog entry. Entries are immutable once added.
type SKU struct {
	ID       string   `json:"sku_id"`
	Barcode  string   `json:"barcode"`
	Title    string   `json:"title"`
	Brand    string   `json:"brand"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

// Catalog defines behavior for storing and looking up SKUs. There is no
// update or delete: the catalog is append-only for the process lifetime.
type Catalog interface {
	Add(ctx context.Context, s SKU) error
	GetByID(ctx context.Context, id string) (SKU, error)
	GetByBarcode(ctx context.Context, code string) (SKU, error)
	List(ctx context.Context) ([]SKU, error)
}

// ErrNotFound indicates the requested SKU does not exist.
var ErrNotFound = errors.New("sku not found")

// ErrDuplicateID indicates an insert collided on sku_id.
var ErrDuplicateID = errors.New("duplicate sku id")

// ErrDuplicateBarcode indicates an insert collided on barcode.
var ErrDuplicateBarcode = errors.New("duplicate barcode")
