// Package inventory tests for import reconciliation.
package inventory

import (
	"testing"

	"github.com/labops/labstock/internal/models"
	"github.com/labops/labstock/internal/tabular"
)

func TestReconcileAppendsAfterExisting(t *testing.T) {
	existing := []models.StockRecord{
		{ID: 1, Item: "Agarose"},
		{ID: 2, Item: "DMEM"},
	}
	rows := []tabular.Row{
		{"Item": "Taq", "Quantity": "10"},
		{"Item": "Trypsin", "Quantity": "4"},
	}

	out := Reconcile(existing, rows)

	if len(out) != 4 {
		t.Fatalf("reconciled size = %d, want 4", len(out))
	}
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Error("existing records must come first, unchanged")
	}
	if out[2].Item != "Taq" || out[3].Item != "Trypsin" {
		t.Error("imported rows must append in input order")
	}
}

func TestReconcileFreshDistinctIDs(t *testing.T) {
	existing := []models.StockRecord{{ID: 5}}
	rows := []tabular.Row{
		{"Item": "a"}, {"Item": "b"}, {"Item": "c"},
	}

	out := Reconcile(existing, rows)

	seen := map[int64]bool{5: true}
	for _, rec := range out[1:] {
		if rec.ID <= 5 {
			t.Errorf("imported ID %d must be greater than prior max 5", rec.ID)
		}
		if seen[rec.ID] {
			t.Errorf("duplicate ID %d in reconciled batch", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestReconcileDropsSourceID(t *testing.T) {
	rows := []tabular.Row{
		{"ID": "999", "Item": "Taq"},
	}

	out := Reconcile(nil, rows)

	if out[0].ID != 1 {
		t.Errorf("source ID column must be discarded; got ID %d, want 1", out[0].ID)
	}
}

func TestReconcileSchemaClosure(t *testing.T) {
	// A row missing most required columns and carrying an extraneous one.
	rows := []tabular.Row{
		{"Item": "Taq", "Unrelated_Column": "noise"},
	}

	out := Reconcile(nil, rows)
	rec := out[0]

	if rec.Item != "Taq" {
		t.Errorf("Item = %q, want Taq", rec.Item)
	}
	if rec.Quantity != 0 {
		t.Errorf("missing Quantity should be 0, got %d", rec.Quantity)
	}
	if rec.ExpiryDate.Valid || rec.AddedDate.Valid {
		t.Error("missing date columns should be null")
	}
	if rec.StorageLocation != "" || rec.Vendor != "" || rec.CatalogNumber != "" || rec.AddedBy != "" {
		t.Error("missing string columns should be empty")
	}
}

func TestReconcilePermissiveCells(t *testing.T) {
	rows := []tabular.Row{
		{
			"Item":        "Taq",
			"Quantity":    "not-a-number",
			"Expiry_Date": "garbage",
			"Added_Date":  "2025-06-10",
		},
		{
			"Item":     "DMEM",
			"Quantity": "3.0",
		},
	}

	out := Reconcile(nil, rows)

	if out[0].Quantity != 0 {
		t.Errorf("bad quantity should coerce to 0, got %d", out[0].Quantity)
	}
	if out[0].ExpiryDate.Valid {
		t.Error("bad expiry date should coerce to null")
	}
	if out[0].AddedDate.String() != "2025-06-10" {
		t.Errorf("AddedDate = %q, want 2025-06-10", out[0].AddedDate.String())
	}
	if out[1].Quantity != 3 {
		t.Errorf("decimal quantity should coerce to 3, got %d", out[1].Quantity)
	}
	if len(out) != 2 {
		t.Fatalf("bad cells must never drop rows; got %d rows, want 2", len(out))
	}
}

func TestReconcileEmptyBatch(t *testing.T) {
	existing := []models.StockRecord{{ID: 1}}

	out := Reconcile(existing, nil)

	if len(out) != 1 || out[0].ID != 1 {
		t.Error("empty batch should leave the collection unchanged")
	}
}
