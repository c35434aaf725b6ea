package inventory

import (
	"sort"

	"github.com/labops/labstock/internal/models"
)

// DisplayOrder returns the collection sorted for presentation: most
// recent AddedDate first, null dates last, ties in stable store order.
// Row selection from the UI is resolved against exactly this order.
func DisplayOrder(records []models.StockRecord) []models.StockRecord {
	displayed := models.CloneRecords(records)
	sort.SliceStable(displayed, func(i, j int) bool {
		return displayed[j].AddedDate.Before(displayed[i].AddedDate)
	})
	return displayed
}

// ResolveSelection maps display-order indices to record IDs. Indices out
// of range are ignored; duplicates resolve to a single ID. The returned
// set preserves display order.
func ResolveSelection(records []models.StockRecord, indices []int) []int64 {
	displayed := DisplayOrder(records)
	seen := make(map[int64]bool, len(indices))
	var ids []int64
	for _, idx := range indices {
		if idx < 0 || idx >= len(displayed) {
			continue
		}
		id := displayed[idx].ID
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
