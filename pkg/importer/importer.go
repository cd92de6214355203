// Package importer loads SKUs into the catalog from CSV files.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"skuflow/pkg/listing"
	"skuflow/pkg/sku"
)

// ErrInvalidHeader indicates the CSV is missing one of the required columns.
var ErrInvalidHeader = errors.New("csv must contain barcode, title, brand and image_url columns")

var requiredColumns = []string{"barcode", "title", "brand", "image_url"}

// SkippedRow describes one row that was not imported.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Report summarizes one import run. Duplicate rows are counted and reported
// instead of being silently dropped.
type Report struct {
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped,omitempty"`
}

// Importer reads CSV rows and inserts them into a catalog.
type Importer struct {
	catalog sku.Catalog
}

// New creates an Importer backed by the given catalog.
func New(catalog sku.Catalog) *Importer {
	return &Importer{catalog: catalog}
}

// ImportCSV reads the file and inserts one SKU per row. Each row gets a
// freshly generated id and its tags derived from title and brand. Rows that
// collide on id or barcode are skipped and reported; a structurally invalid
// file aborts the whole import.
func (i *Importer) ImportCSV(ctx context.Context, r io.Reader) (Report, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return Report{}, ErrInvalidHeader
	}
	cols := make(map[string]int, len(header))
	for idx, name := range header {
		cols[name] = idx
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return Report{}, ErrInvalidHeader
		}
	}

	var report Report
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Report{}, fmt.Errorf("row %d: %w", row, err)
		}
		title := record[cols["title"]]
		brand := record[cols["brand"]]
		s := sku.SKU{
			ID:       uuid.NewString(),
			Barcode:  record[cols["barcode"]],
			Title:    title,
			Brand:    brand,
			ImageURL: record[cols["image_url"]],
			Tags:     listing.GenerateTags(title, brand),
		}
		if err := i.catalog.Add(ctx, s); err != nil {
			if errors.Is(err, sku.ErrDuplicateID) || errors.Is(err, sku.ErrDuplicateBarcode) {
				report.Skipped = append(report.Skipped, SkippedRow{Row: row, Reason: err.Error()})
				continue
			}
			return Report{}, fmt.Errorf("row %d: %w", row, err)
		}
		report.Imported++
	}
	return report, nil
}
