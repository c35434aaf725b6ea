// Package models defines the fixed tabular schema for import and export.
package models

// Column names of the fixed tabular schema. Import projects every source
// row onto exactly this set; export emits it preceded by ID.
const (
	ColumnItem            = "Item"
	ColumnQuantity        = "Quantity"
	ColumnExpiryDate      = "Expiry_Date"
	ColumnStorageLocation = "Storage_Location"
	ColumnVendor          = "Vendor"
	ColumnCatalogNumber   = "Catalog_Number"
	ColumnAddedBy         = "Added_By"
	ColumnAddedDate       = "Added_Date"
)

// ImportColumns is the required import schema in canonical column order.
var ImportColumns = []string{
	ColumnItem,
	ColumnQuantity,
	ColumnExpiryDate,
	ColumnStorageLocation,
	ColumnVendor,
	ColumnCatalogNumber,
	ColumnAddedBy,
	ColumnAddedDate,
}

// ExportColumns is the export column order: ID followed by the import
// schema.
func ExportColumns() []string {
	return append([]string{"ID"}, ImportColumns...)
}
