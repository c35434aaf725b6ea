// Package handlers provides the export download endpoint.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labops/labstock/internal/inventory"
)

// xlsxContentType is the MIME type for xlsx workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles export downloads.
type ExportHandler struct {
	svc    *inventory.Service
	events Events
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc *inventory.Service, events Events) *ExportHandler {
	return &ExportHandler{svc: svc, events: events}
}

// Export handles GET /api/export, streaming the current collection as an
// xlsx attachment whose filename embeds today's date.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.svc.Export()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if h.events != nil {
		h.events.ExportCompleted(result.Filename, int64(len(result.Data)), result.ItemCount)
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Write(result.Data)
}
