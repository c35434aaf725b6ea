// Package handlers provides the localhost REST API consumed by the UI.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labops/labstock/internal/inventory"
)

// StockHandler handles record listing, manual add, and removal.
type StockHandler struct {
	svc *inventory.Service
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(svc *inventory.Service) *StockHandler {
	return &StockHandler{svc: svc}
}

// List handles GET /api/stock, returning records in display order
// (most recent AddedDate first). Row indices into this response are the
// selection indices the remove endpoint accepts.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items := h.svc.List()
	response := map[string]interface{}{
		"items": items,
		"total": len(items),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Add handles POST /api/stock with the manually entered field values.
func (h *StockHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input inventory.AddInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.svc.Add(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// RemoveRequest carries the selected display-row indices. An empty or
// absent selection is a no-op, not an error.
type RemoveRequest struct {
	Indices []int `json:"indices"`
}

// Remove handles POST /api/stock/remove.
func (h *StockHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	removed, err := h.svc.Remove(req.Indices)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"removed": removed,
	})
}
