// Package handlers provides the duplicate audit endpoint.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labops/labstock/internal/inventory"
)

// AuditHandler handles read-only inventory diagnostics.
type AuditHandler struct {
	svc *inventory.Service
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(svc *inventory.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// Duplicates handles GET /api/stock/duplicates, returning the count of
// Item groups appearing more than once. Zero is a normal result.
func (h *AuditHandler) Duplicates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"duplicate_item_groups": h.svc.FindDuplicates(),
	})
}
