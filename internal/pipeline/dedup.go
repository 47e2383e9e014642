package pipeline

import "github.com/kurochkinivan/result_analysis/internal/domain"

// Deduplicate keeps the records whose natural key is neither in existing nor
// seen earlier in the batch. Surviving records keep their relative order.
func Deduplicate(existing domain.KeySet, batch []*domain.GradeRecord) (fresh []*domain.GradeRecord, duplicates int) {
	seen := make(domain.KeySet, len(batch))

	for _, record := range batch {
		key := record.Key()
		if existing.Has(key) || seen.Has(key) {
			duplicates++
			continue
		}

		seen.Add(key)
		fresh = append(fresh, record)
	}

	return fresh, duplicates
}
