package ngramlab

// FrequencyEntry pairs an n-gram with the number of times it occurs across
// the whole flattened n-gram stream.
type FrequencyEntry struct {
	NGram NGram
	Count float64
}

// Frequencies groups n-grams by Key and counts each group.
//
// The result is ordered by first occurrence and each entry keeps the first
// occurrence as its representative. Counts sum to len(ngrams).
//
// Example:
//
//	Frequencies([]NGram{{"a", "b"}, {"a", "b"}, {"c", "d"}})
//	// Returns: [{[a b] 2} {[c d] 1}]
func Frequencies(ngrams []NGram) []FrequencyEntry {
	entries := make([]FrequencyEntry, 0)
	slot := make(map[string]int, len(ngrams))

	for _, gram := range ngrams {
		key := gram.Key()
		if i, seen := slot[key]; seen {
			entries[i].Count++
			continue
		}
		slot[key] = len(entries)
		entries = append(entries, FrequencyEntry{NGram: gram, Count: 1})
	}

	return entries
}

// TotalCount sums the counts of all entries.
func TotalCount(entries []FrequencyEntry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Count
	}
	return total
}
