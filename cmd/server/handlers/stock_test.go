// Package handlers tests for the stock REST endpoints.
package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/labops/labstock/internal/db"
	"github.com/labops/labstock/internal/export"
	"github.com/labops/labstock/internal/inventory"
	"github.com/labops/labstock/internal/models"
	"github.com/labops/labstock/internal/store"
)

// setupTestService builds an inventory Service over an in-memory SQLite
// snapshot store.
func setupTestService(t *testing.T, initial []models.StockRecord) *inventory.Service {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	migrator := db.NewMigrator(sqlDB)
	if err := migrator.Initialize(); err != nil {
		t.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Up(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	snapshots := db.NewSnapshotStore(sqlDB)
	if initial != nil {
		if err := snapshots.Save(initial); err != nil {
			t.Fatalf("Failed to seed snapshot: %v", err)
		}
	}

	return inventory.NewService(store.New(initial), snapshots, export.NewFormatter(), nil)
}

func TestListReturnsDisplayOrder(t *testing.T) {
	svc := setupTestService(t, []models.StockRecord{
		{ID: 1, Item: "Antibody A", AddedDate: models.ParseDate("2025-06-01")},
		{ID: 2, Item: "Enzyme B", AddedDate: models.ParseDate("2025-06-10")},
	})
	handler := NewStockHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response struct {
		Items []models.StockRecord `json:"items"`
		Total int                  `json:"total"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Total != 2 {
		t.Errorf("total = %d, want 2", response.Total)
	}
	if response.Items[0].ID != 2 || response.Items[1].ID != 1 {
		t.Errorf("display order = [%d, %d], want [2, 1]", response.Items[0].ID, response.Items[1].ID)
	}
}

func TestListRejectsWrongMethod(t *testing.T) {
	handler := NewStockHandler(setupTestService(t, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/stock", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestAddCreatesRecord(t *testing.T) {
	svc := setupTestService(t, []models.StockRecord{
		{ID: 3, Item: "Agarose", AddedDate: models.ParseDate("2025-06-01")},
	})
	handler := NewStockHandler(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"item":             "Taq DNA polymerase",
		"quantity":         10,
		"vendor":           "NEB",
		"catalog_number":   "M0273",
		"storage_location": "Freezer 1, box 4",
		"added_by":         "kim",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/stock", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Add(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var record models.StockRecord
	if err := json.NewDecoder(w.Body).Decode(&record); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if record.ID != 4 {
		t.Errorf("new ID = %d, want 4", record.ID)
	}
	if record.Item != "Taq DNA polymerase" || record.Quantity != 10 {
		t.Errorf("record = %+v, want submitted field values", record)
	}
	if !record.AddedDate.Valid {
		t.Error("AddedDate should default to today")
	}
}

func TestAddRejectsBadBody(t *testing.T) {
	handler := NewStockHandler(setupTestService(t, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/stock", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	handler.Add(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRemoveSelectedRow(t *testing.T) {
	svc := setupTestService(t, []models.StockRecord{
		{ID: 1, Item: "Antibody A", AddedDate: models.ParseDate("2025-06-01")},
		{ID: 2, Item: "Enzyme B", AddedDate: models.ParseDate("2025-06-10")},
	})
	handler := NewStockHandler(svc)

	body, _ := json.Marshal(RemoveRequest{Indices: []int{0}})
	req := httptest.NewRequest(http.MethodPost, "/api/stock/remove", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Remove(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var response map[string]int
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["removed"] != 1 {
		t.Errorf("removed = %d, want 1", response["removed"])
	}

	// Index 0 of the displayed order is the newest record, ID 2.
	remaining := svc.List()
	if len(remaining) != 1 || remaining[0].ID != 1 {
		t.Errorf("remaining = %+v, want only ID 1", remaining)
	}
}

func TestRemoveEmptySelection(t *testing.T) {
	svc := setupTestService(t, []models.StockRecord{{ID: 1}})
	handler := NewStockHandler(svc)

	body, _ := json.Marshal(RemoveRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/stock/remove", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Remove(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (no-op, not an error)", w.Code)
	}
	if len(svc.List()) != 1 {
		t.Error("empty selection must not remove anything")
	}
}
