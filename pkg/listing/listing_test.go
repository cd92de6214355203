package listing

import (
	"reflect"
	"testing"

	"skuflow/pkg/sku"
)

func TestGenerateTags(t *testing.T) {
	cases := []struct {
		title, brand string
		want         []string
	}{
		{"Nike Air Max 90", "Nike", []string{"air", "max", "90"}},
		{"", "", []string{}},
		{"Levi's 501 Jeans", "Levi's", []string{"501", "jeans"}},
		{"Air Air Max", "Nike", []string{"air", "max"}},
		{"NIKE dunk low", "nike", []string{"dunk", "low"}},
	}
	for _, tc := range cases {
		got := GenerateTags(tc.title, tc.brand)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("GenerateTags(%q, %q) = %v, want %v", tc.title, tc.brand, got, tc.want)
		}
	}
}

func TestCategoryIDStable(t *testing.T) {
	first := CategoryID("sneakers")
	for i := 0; i < 100; i++ {
		if got := CategoryID("sneakers"); got != first {
			t.Fatalf("category id changed between calls: %d vs %d", first, got)
		}
	}
	for _, tag := range []string{"", "a", "jeans", "vintage", "90"} {
		id := CategoryID(tag)
		if id < 0 || id > 999 {
			t.Fatalf("CategoryID(%q) = %d, out of range", tag, id)
		}
	}
}

func TestMockPrice(t *testing.T) {
	if got := MockPrice("Nike", nil); got != DefaultPrice {
		t.Fatalf("expected default price %v without tags, got %v", DefaultPrice, got)
	}
	if got := MockPrice("AnyBrand", []string{}); got != DefaultPrice {
		t.Fatalf("expected default price %v for empty tags, got %v", DefaultPrice, got)
	}

	tags := []string{"air", "max", "90"}
	first := MockPrice("Nike", tags)
	for i := 0; i < 50; i++ {
		if got := MockPrice("Nike", tags); got != first {
			t.Fatalf("price not idempotent: %v vs %v", first, got)
		}
	}

	// weighted sum bounds: base 999 + 30..300 + 60..600 + 10..100 cents
	if first < 10.99 || first > 19.99 {
		t.Fatalf("price %v outside derivable range", first)
	}
}

func TestBuild(t *testing.T) {
	s := sku.SKU{
		ID:       "1",
		Barcode:  "b1",
		Title:    "Nike Air Max 90",
		Brand:    "Nike",
		ImageURL: "https://img.example/airmax.jpg",
		Tags:     []string{"air", "max", "90"},
	}
	l := Build(s)
	if l.Depop.Title != s.Title || l.Depop.Brand != s.Brand || l.Depop.Image != s.ImageURL {
		t.Fatalf("depop projection mismatch: %+v", l.Depop)
	}
	if !reflect.DeepEqual(l.Depop.Tags, s.Tags) {
		t.Fatalf("depop tags = %v, want %v", l.Depop.Tags, s.Tags)
	}
	if l.EBay.CategoryID != CategoryID("90") {
		t.Fatalf("ebay category = %d, want %d", l.EBay.CategoryID, CategoryID("90"))
	}
	if l.Depop.Price != l.EBay.Price {
		t.Fatalf("price differs between marketplaces: %v vs %v", l.Depop.Price, l.EBay.Price)
	}
}

func TestBuildWithoutTags(t *testing.T) {
	l := Build(sku.SKU{ID: "1", Brand: "Nike", Title: "Nike"})
	if l.EBay.CategoryID != 0 {
		t.Fatalf("expected category 0 without tags, got %d", l.EBay.CategoryID)
	}
	if l.EBay.Price != DefaultPrice {
		t.Fatalf("expected default price without tags, got %v", l.EBay.Price)
	}
}
