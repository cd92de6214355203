package memory

import (
	"context"
	"errors"
	"testing"

	"skuflow/pkg/sku"
)

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	c := New()
	s := sku.SKU{ID: "1", Barcode: "b1", Title: "Air Max 90", Brand: "Nike", Tags: []string{"air", "max", "90"}}
	if err := c.Add(ctx, s); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := c.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Title != "Air Max 90" {
		t.Fatalf("expected Air Max 90, got %s", got.Title)
	}
	got, err = c.GetByBarcode(ctx, "b1")
	if err != nil {
		t.Fatalf("get by barcode: %v", err)
	}
	if got.ID != "1" {
		t.Fatalf("expected id 1, got %s", got.ID)
	}
	if _, err := c.GetByID(ctx, "missing"); !errors.Is(err, sku.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	c := New()
	if err := c.Add(ctx, sku.SKU{ID: "1", Barcode: "b1"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.Add(ctx, sku.SKU{ID: "1", Barcode: "b2"}); !errors.Is(err, sku.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := c.Add(ctx, sku.SKU{ID: "2", Barcode: "b1"}); !errors.Is(err, sku.ErrDuplicateBarcode) {
		t.Fatalf("expected ErrDuplicateBarcode, got %v", err)
	}

	// rejected inserts must leave the store unchanged
	list, err := c.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if _, err := c.GetByBarcode(ctx, "b2"); !errors.Is(err, sku.ErrNotFound) {
		t.Fatalf("rejected insert leaked into barcode index: %v", err)
	}
}

func TestCatalogListOrder(t *testing.T) {
	ctx := context.Background()
	c := New()
	for _, id := range []string{"c", "a", "b"} {
		if err := c.Add(ctx, sku.SKU{ID: id, Barcode: "bc-" + id}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	list, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"c", "a", "b"}
	for i, s := range list {
		if s.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], s.ID)
		}
	}
}
