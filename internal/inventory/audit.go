package inventory

import "github.com/labops/labstock/internal/models"

// CountDuplicateItems groups records by exact, case-sensitive Item string
// and returns the number of groups with more than one record. Purely
// diagnostic; zero is a normal result.
func CountDuplicateItems(records []models.StockRecord) int {
	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.Item]++
	}
	groups := 0
	for _, n := range counts {
		if n > 1 {
			groups++
		}
	}
	return groups
}
