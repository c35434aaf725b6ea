// Package handlers provides the bulk-import REST endpoint.
package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/labops/labstock/internal/errors"
	"github.com/labops/labstock/internal/inventory"
)

// maxUploadBytes caps uploaded workbook size.
const maxUploadBytes = 16 << 20

// Events receives notifications the hub pushes to the UI. A nil Events is
// valid; core behavior never depends on it.
type Events interface {
	ImportCompleted(added int)
	ImportFailed(errMsg string)
	ExportCompleted(filename string, sizeBytes int64, itemCount int)
}

// ImportHandler handles bulk imports of uploaded workbooks.
type ImportHandler struct {
	svc    *inventory.Service
	events Events
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(svc *inventory.Service, events Events) *ImportHandler {
	return &ImportHandler{svc: svc, events: events}
}

// Import handles POST /api/import with an xlsx file in the "file"
// multipart field. A malformed workbook rejects the whole upload and
// leaves the store unchanged.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	added, err := h.svc.Import(file)
	if err != nil {
		if h.events != nil {
			h.events.ImportFailed(err.Error())
		}
		status := http.StatusInternalServerError
		if apperrors.Is(err, apperrors.ErrBadWorkbook) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	if h.events != nil {
		h.events.ImportCompleted(added)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"added": added,
	})
}
