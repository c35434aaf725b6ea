// Package export serializes the record collection into downloadable
// tabular workbooks.
package export

import (
	"time"

	apperrors "github.com/labops/labstock/internal/errors"
	"github.com/labops/labstock/internal/models"
	"github.com/labops/labstock/internal/tabular"
)

// filenamePrefix matches the download name the operator expects.
const filenamePrefix = "refrigerator_stock_list"

// Result represents a produced export file.
type Result struct {
	Filename  string
	Data      []byte
	ItemCount int
}

// Formatter builds xlsx exports of the full collection.
type Formatter struct {
	now func() time.Time
}

// NewFormatter creates a Formatter using the wall clock for filenames.
func NewFormatter() *Formatter {
	return &Formatter{now: time.Now}
}

// NewFormatterAt creates a Formatter with an injected clock.
func NewFormatterAt(now func() time.Time) *Formatter {
	return &Formatter{now: now}
}

// Format serializes every field of every record, in the store's natural
// (unsorted) order, into a workbook whose filename embeds today's date.
func (f *Formatter) Format(records []models.StockRecord) (*Result, error) {
	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		rows[i] = []interface{}{
			rec.ID,
			rec.Item,
			rec.Quantity,
			rec.ExpiryDate.String(),
			rec.StorageLocation,
			rec.Vendor,
			rec.CatalogNumber,
			rec.AddedBy,
			rec.AddedDate.String(),
		}
	}

	data, err := tabular.BuildWorkbook(models.ExportColumns(), rows)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExportFailed, "failed to build workbook", err)
	}

	return &Result{
		Filename:  filenamePrefix + f.now().Format("2006-01-02") + ".xlsx",
		Data:      data,
		ItemCount: len(records),
	}, nil
}
