package service

import (
	"sort"

	"github.com/doitintl/bq-audit/domain"
)

// TopNMostExpensive returns the n most expensive jobs, ordered by billed
// bytes descending with slot-milliseconds as the tie-breaker. Jobs that tie
// on both keys keep their collection order. The input is never mutated.
func TopNMostExpensive(jobs []domain.JobRecord, n int) []domain.JobRecord {
	if n <= 0 {
		return nil
	}

	ranked := make([]domain.JobRecord, len(jobs))
	copy(ranked, jobs)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalBytesBilled != ranked[j].TotalBytesBilled {
			return ranked[i].TotalBytesBilled > ranked[j].TotalBytesBilled
		}

		return ranked[i].TotalSlotMS > ranked[j].TotalSlotMS
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}
