// Package db provides the demonstration seed collection.
package db

import "github.com/labops/labstock/internal/models"

// SeedRecords returns the fixed five-record demonstration collection used
// when the service starts with no prior snapshot.
func SeedRecords() []models.StockRecord {
	return []models.StockRecord{
		{
			ID:              1,
			Item:            "Anti-GFP antibody",
			Quantity:        3,
			ExpiryDate:      models.ParseDate("2026-11-30"),
			StorageLocation: "Fridge 2, shelf A",
			Vendor:          "Abcam",
			CatalogNumber:   "ab290",
			AddedBy:         "demo",
			AddedDate:       models.ParseDate("2025-06-02"),
		},
		{
			ID:              2,
			Item:            "Taq DNA polymerase",
			Quantity:        10,
			ExpiryDate:      models.ParseDate("2027-03-15"),
			StorageLocation: "Freezer 1, box 4",
			Vendor:          "NEB",
			CatalogNumber:   "M0273",
			AddedBy:         "demo",
			AddedDate:       models.ParseDate("2025-06-10"),
		},
		{
			ID:              3,
			Item:            "DMEM high glucose",
			Quantity:        6,
			ExpiryDate:      models.ParseDate("2026-04-01"),
			StorageLocation: "Fridge 1, door",
			Vendor:          "Gibco",
			CatalogNumber:   "11965092",
			AddedBy:         "demo",
			AddedDate:       models.ParseDate("2025-07-01"),
		},
		{
			ID:              4,
			Item:            "Trypsin-EDTA 0.25%",
			Quantity:        4,
			ExpiryDate:      models.ParseDate("2026-09-20"),
			StorageLocation: "Fridge 1, shelf B",
			Vendor:          "Gibco",
			CatalogNumber:   "25200056",
			AddedBy:         "demo",
			AddedDate:       models.ParseDate("2025-07-18"),
		},
		{
			ID:              5,
			Item:            "Agarose, molecular grade",
			Quantity:        2,
			ExpiryDate:      models.Date{},
			StorageLocation: "Cabinet 3",
			Vendor:          "Sigma-Aldrich",
			CatalogNumber:   "A9539",
			AddedBy:         "demo",
			AddedDate:       models.ParseDate("2025-08-05"),
		},
	}
}
