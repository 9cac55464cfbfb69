package ngramlab

import "strings"

// ═══════════════════════════════════════════════════════════════════════════════
// N-GRAM EXTRACTION
// ═══════════════════════════════════════════════════════════════════════════════
// An n-gram is a window of n consecutive tokens taken from ONE document.
//
// EXAMPLE (n=2):
// --------------
// Tokens:  ["мама", "мыла", "раму"]
// Windows: ["мама" "мыла"], ["мыла" "раму"]
//
// For L tokens there are max(0, L-n+1) windows. Windows never cross a document
// boundary: the corpus is windowed document by document and then concatenated.
// ═══════════════════════════════════════════════════════════════════════════════

// NGram is an ordered, fixed-length sequence of tokens
type NGram []string

// Key returns the space-joined form used for grouping and lookups.
func (g NGram) Key() string {
	return strings.Join(g, " ")
}

// Equals reports element-wise equality.
func (g NGram) Equals(other NGram) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

// Extract slides a window of size n over tokens with stride 1.
//
// n <= 0 and len(tokens) < n both produce an empty result.
//
// Example:
//
//	Extract([]string{"a", "b", "c", "d"}, 2)
//	// Returns: [a b] [b c] [c d]
func Extract(tokens []string, n int) []NGram {
	if n <= 0 || len(tokens) < n {
		return []NGram{}
	}

	grams := make([]NGram, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		gram := make(NGram, n)
		copy(gram, tokens[i:i+n])
		grams = append(grams, gram)
	}
	return grams
}

// ExtractCorpus windows every document's whitespace tokens and concatenates
// the results in corpus order.
func ExtractCorpus(corpus []string, n int) []NGram {
	var grams []NGram
	for _, doc := range corpus {
		grams = append(grams, Extract(Tokens(doc), n)...)
	}
	if grams == nil {
		return []NGram{}
	}
	return grams
}
