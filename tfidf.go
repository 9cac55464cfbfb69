package ngramlab

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ═══════════════════════════════════════════════════════════════════════════════
// RELEVANCE SCORING: TF-IDF
// ═══════════════════════════════════════════════════════════════════════════════
// Each frequency entry gets one score:
//
//	tf    = count / number of distinct entries
//	idf   = ln(|corpus| / documents containing the n-gram)
//	score = tf * idf
//
// Note that tf is normalized by the vocabulary size of the entry list, not by
// the total number of occurrences and not per document.
//
// EXAMPLE:
// --------
// Corpus (3 docs): "a b", "a b c", "c d"
// Entries:         [a b]:2  [b c]:1  [c d]:1      (3 distinct entries)
//
//	[a b]: tf = 2/3, idf = ln(3/2) ≈ 0.405 → 0.270
//	[b c]: tf = 1/3, idf = ln(3/1) ≈ 1.099 → 0.366
//	[c d]: tf = 1/3, idf = ln(3/1) ≈ 1.099 → 0.366
//
// An n-gram present in every document has idf = ln(1) = 0 and so scores 0.
// ═══════════════════════════════════════════════════════════════════════════════

// ErrUnmatchedNGram is matched by errors.Is for every *UnmatchedNGramError.
var ErrUnmatchedNGram = errors.New("n-gram does not occur in any corpus document")

// UnmatchedNGramError reports an entry whose n-gram cannot be found in the
// corpus it is scored against; its IDF would divide by zero.
type UnmatchedNGramError struct {
	NGram NGram
	Index int // Position of the entry in the scored input
}

func (e *UnmatchedNGramError) Error() string {
	return fmt.Sprintf("tfidf: entry %d %q: %v", e.Index, e.NGram.Key(), ErrUnmatchedNGram)
}

func (e *UnmatchedNGramError) Unwrap() error {
	return ErrUnmatchedNGram
}

// ScoredEntry pairs an n-gram with a real-valued weight.
type ScoredEntry struct {
	NGram NGram
	Score float64
}

// TFIDF scores entries against corpus. See (*CorpusIndex).TFIDF.
func TFIDF(entries []FrequencyEntry, corpus []string) ([]ScoredEntry, error) {
	return BuildCorpusIndex(corpus).TFIDF(entries)
}

// TFIDF scores every entry against the indexed corpus, keeping input order
// and length.
//
// An entry whose n-gram occurs in no document fails the whole call with an
// *UnmatchedNGramError; no NaN or infinite score is ever returned.
func (idx *CorpusIndex) TFIDF(entries []FrequencyEntry) ([]ScoredEntry, error) {
	scored := make([]ScoredEntry, 0, len(entries))
	if len(entries) == 0 {
		return scored, nil
	}

	distinct := float64(len(entries))
	corpusSize := float64(idx.TotalDocs)

	for i, entry := range entries {
		containing := idx.ContainingCount(entry.NGram)
		if containing == 0 {
			return nil, &UnmatchedNGramError{NGram: entry.NGram, Index: i}
		}

		tf := entry.Count / distinct
		idf := math.Log(corpusSize / float64(containing))

		scored = append(scored, ScoredEntry{
			NGram: entry.NGram,
			Score: tf * idf,
		})
	}

	slog.Debug("tfidf scored", slog.Int("entries", len(scored)), slog.Int("documents", idx.TotalDocs))
	return scored, nil
}

// FrequencyScores converts frequency entries into scored entries carrying the
// raw count, for ranking by frequency.
func FrequencyScores(entries []FrequencyEntry) []ScoredEntry {
	scored := make([]ScoredEntry, len(entries))
	for i, e := range entries {
		scored[i] = ScoredEntry{NGram: e.NGram, Score: e.Count}
	}
	return scored
}
