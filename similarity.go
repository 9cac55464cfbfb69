package ngramlab

import (
	"math"
	"sort"
)

// ═══════════════════════════════════════════════════════════════════════════════
// DOCUMENT SIMILARITY: Cosine Cross Matrix
// ═══════════════════════════════════════════════════════════════════════════════
// Each document becomes a bag-of-words vector of raw token counts. Two
// documents are compared by the cosine of the angle between their vectors:
//
//	cos(a, b) = (a · b) / (‖a‖ · ‖b‖)
//
// EXAMPLE:
// --------
// "a b a" → {a:2, b:1}     "a c" → {a:1, c:1}
//
//	dot = 2*1 = 2, ‖a‖² = 5, ‖b‖² = 2
//	cos = 2 / √10 ≈ 0.632
//
// An empty document has a zero vector and is 0-similar to everything,
// itself included.
// ═══════════════════════════════════════════════════════════════════════════════

// SimilarityMatrix computes cosine similarity for every ordered pair of
// documents in corpus.
func SimilarityMatrix(corpus []string) [][]float64 {
	return BuildCorpusIndex(corpus).SimilarityMatrix()
}

// SimilarityMatrix computes the cross matrix from the indexed term counts.
//
// Every cell is computed, the diagonal included. Dot products run over the
// sorted union vocabulary so cell (i, j) and (j, i) are bit-identical.
func (idx *CorpusIndex) SimilarityMatrix() [][]float64 {
	n := len(idx.DocStats)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			matrix[i][j] = CosineSimilarity(idx.DocStats[i].TermFreqs, idx.DocStats[j].TermFreqs)
		}
	}
	return matrix
}

// CosineSimilarity compares two bag-of-words count vectors. The result is in
// [0, 1] and is 0 when either vector is empty.
func CosineSimilarity(a, b map[string]int) float64 {
	vocabulary := make([]string, 0, len(a)+len(b))
	for term := range a {
		vocabulary = append(vocabulary, term)
	}
	for term := range b {
		if _, shared := a[term]; !shared {
			vocabulary = append(vocabulary, term)
		}
	}
	sort.Strings(vocabulary)

	var dot, normA, normB float64
	for _, term := range vocabulary {
		x, y := float64(a[term]), float64(b[term])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	// sqrt of the product keeps the diagonal exactly 1.
	return math.Min(1, dot/math.Sqrt(normA*normB))
}
