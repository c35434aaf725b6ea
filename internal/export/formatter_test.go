// Package export tests for the workbook formatter.
package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/labops/labstock/internal/models"
	"github.com/labops/labstock/internal/tabular"
)

func fixedClock() time.Time {
	return time.Date(2025, 8, 14, 15, 30, 0, 0, time.UTC)
}

func TestFormatFilenameEmbedsDate(t *testing.T) {
	formatter := NewFormatterAt(fixedClock)

	result, err := formatter.Format(nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	want := "refrigerator_stock_list2025-08-14.xlsx"
	if result.Filename != want {
		t.Errorf("Filename = %q, want %q", result.Filename, want)
	}
}

func TestFormatSerializesEveryField(t *testing.T) {
	formatter := NewFormatterAt(fixedClock)
	records := []models.StockRecord{
		{
			ID:              7,
			Item:            "Anti-GFP antibody",
			Quantity:        3,
			ExpiryDate:      models.ParseDate("2026-11-30"),
			StorageLocation: "Fridge 2, shelf A",
			Vendor:          "Abcam",
			CatalogNumber:   "ab290",
			AddedBy:         "kim",
			AddedDate:       models.ParseDate("2025-06-02"),
		},
	}

	result, err := formatter.Format(records)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if result.ItemCount != 1 {
		t.Errorf("ItemCount = %d, want 1", result.ItemCount)
	}

	rows, err := tabular.ParseWorkbook(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("exported workbook should parse back: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("exported rows = %d, want 1", len(rows))
	}

	row := rows[0]
	want := map[string]string{
		"ID":               "7",
		"Item":             "Anti-GFP antibody",
		"Quantity":         "3",
		"Expiry_Date":      "2026-11-30",
		"Storage_Location": "Fridge 2, shelf A",
		"Vendor":           "Abcam",
		"Catalog_Number":   "ab290",
		"Added_By":         "kim",
		"Added_Date":       "2025-06-02",
	}
	for col, val := range want {
		if row[col] != val {
			t.Errorf("column %s = %q, want %q", col, row[col], val)
		}
	}
}

func TestFormatNullDatesSerializeEmpty(t *testing.T) {
	formatter := NewFormatterAt(fixedClock)

	result, err := formatter.Format([]models.StockRecord{{ID: 1, Item: "Agarose"}})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	rows, err := tabular.ParseWorkbook(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("exported workbook should parse back: %v", err)
	}
	if rows[0]["Expiry_Date"] != "" || rows[0]["Added_Date"] != "" {
		t.Errorf("null dates should export as empty cells, got %v", rows[0])
	}
}

func TestFormatEmptyCollection(t *testing.T) {
	formatter := NewFormatterAt(fixedClock)

	result, err := formatter.Format(nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if result.ItemCount != 0 {
		t.Errorf("ItemCount = %d, want 0", result.ItemCount)
	}

	rows, err := tabular.ParseWorkbook(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("empty export should still parse: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("empty export should have only a header row, got %d rows", len(rows))
	}
}
