// Package inventory implements the record store mutation and
// reconciliation logic: identity allocation, import reconciliation,
// duplicate auditing, selection-based removal, and export.
package inventory

import "github.com/labops/labstock/internal/models"

// NextID computes the next unique record identifier: 1 for an empty
// collection, otherwise max(existing IDs)+1. The allocator is the sole
// source of identity; IDs supplied in input are always discarded.
func NextID(records []models.StockRecord) int64 {
	return maxID(records) + 1
}

// NextIDs allocates n consecutive identifiers for a batch in one step,
// max+1..max+n. A batch is covered by a single allocation so imported
// rows can never collide with one another.
func NextIDs(records []models.StockRecord, n int) []int64 {
	base := maxID(records)
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = base + int64(i) + 1
	}
	return ids
}

func maxID(records []models.StockRecord) int64 {
	var max int64
	for _, rec := range records {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max
}
