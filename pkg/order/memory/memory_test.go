package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"skuflow/pkg/order"
)

func TestLedger(t *testing.T) {
	ctx := context.Background()
	l := New()
	first := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	if err := l.Upsert(ctx, order.Order{SKUID: "1", DeliveredAt: first}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := l.GetBySKU(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.DeliveredAt.Equal(first) {
		t.Fatalf("expected %v, got %v", first, got.DeliveredAt)
	}
	if _, err := l.GetBySKU(ctx, "missing"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLedgerUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	l := New()
	first := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	if err := l.Upsert(ctx, order.Order{SKUID: "1", DeliveredAt: first}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := l.Upsert(ctx, order.Order{SKUID: "1", DeliveredAt: second}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err := l.GetBySKU(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.DeliveredAt.Equal(second) {
		t.Fatalf("expected latest timestamp %v, got %v", second, got.DeliveredAt)
	}
}
