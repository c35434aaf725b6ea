package inventory

import (
	"strconv"

	"github.com/labops/labstock/internal/models"
	"github.com/labops/labstock/internal/tabular"
)

// Reconcile normalizes externally supplied rows into schema-complete
// records and appends them after the existing collection. A source column
// outside models.ImportColumns (including any ID column) is dropped; a
// required column missing from the source fills with its zero value.
// Each row gets a fresh identifier from a single batch allocation over
// the whole input, in row order. Unparseable date cells coerce to null
// and unparseable quantities to zero; a bad cell never aborts the batch.
func Reconcile(existing []models.StockRecord, rows []tabular.Row) []models.StockRecord {
	ids := NextIDs(existing, len(rows))

	out := models.CloneRecords(existing)
	for i, row := range rows {
		out = append(out, models.StockRecord{
			ID:              ids[i],
			Item:            row[models.ColumnItem],
			Quantity:        parseQuantity(row[models.ColumnQuantity]),
			ExpiryDate:      models.ParseDate(row[models.ColumnExpiryDate]),
			StorageLocation: row[models.ColumnStorageLocation],
			Vendor:          row[models.ColumnVendor],
			CatalogNumber:   row[models.ColumnCatalogNumber],
			AddedBy:         row[models.ColumnAddedBy],
			AddedDate:       models.ParseDate(row[models.ColumnAddedDate]),
		})
	}
	return out
}

// parseQuantity coerces a raw quantity cell to an integer, tolerating
// decimal renderings from spreadsheet tools ("3.0"). Anything else is 0.
func parseQuantity(raw string) int {
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}
