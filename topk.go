package ngramlab

import "sort"

// TopK returns the k highest-scoring entries, best first.
//
// The sort is stable, so equal scores keep their input order, and every
// TopK(entries, k) is a prefix of TopK(entries, k+1). k <= 0 yields an empty
// result. The input slice is left untouched.
//
// Example:
//
//	entries = [{a 0.1} {b 0.3} {c 0.3} {d 0.2}]
//	TopK(entries, 3)
//	// Returns: [{b 0.3} {c 0.3} {d 0.2}]
func TopK(entries []ScoredEntry, k int) []ScoredEntry {
	if k <= 0 {
		return []ScoredEntry{}
	}

	sorted := make([]ScoredEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	return limitResults(sorted, k)
}

func limitResults(entries []ScoredEntry, k int) []ScoredEntry {
	return entries[:min(k, len(entries))]
}
