// ═══════════════════════════════════════════════════════════════════════════════
// TEXT NORMALIZATION OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Normalization turns a raw document into a clean, space-separated token string
// that the n-gram extractor can window over.
//
// NORMALIZATION PIPELINE:
// -----------------------
//  1. Fragmenting    → Split on every excluded punctuation character
//  2. Trimming       → Drop surrounding whitespace from each fragment
//  3. Lowercasing    → Normalize case ("Мама" → "мама")
//  4. Empty filter   → Drop fragments that became empty
//  5. Joining        → Rejoin fragments with a single space
//
// EXAMPLE TRANSFORMATION:
// -----------------------
// Input:  "  A, b.. C "
// Step 1: ["  A", " b", "", " C "]   (split on ',' and '.')
// Step 2: ["A", "b", "", "C"]         (trim)
// Step 3: ["a", "b", "", "c"]         (lowercase)
// Step 4: ["a", "b", "c"]             (drop empty)
// Step 5: "a b c"                     (join)
//
// A document made only of punctuation normalizes to "" and simply yields no
// tokens downstream.
// ═══════════════════════════════════════════════════════════════════════════════

package ngramlab

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultExcludedChars is the punctuation set stripped by Normalize.
const DefaultExcludedChars = "./,<>@`-=+\"\\()[]{}«»:;–_"

// AnalyzerConfig holds configuration options for normalization and stemming
type AnalyzerConfig struct {
	ExcludedChars string // Characters treated as fragment separators
}

// DefaultConfig returns the standard analyzer configuration
func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		ExcludedChars: DefaultExcludedChars,
	}
}

// Normalize strips the default punctuation set, lowercases and collapses
// whitespace.
//
// Example:
//
//	Normalize("Мама мыла раму, мылом!")
//	// Returns: "мама мыла раму мылом!"
func Normalize(document string) string {
	return NormalizeWithConfig(document, DefaultConfig())
}

// NormalizeWithConfig normalizes a document using a custom excluded set.
func NormalizeWithConfig(document string, config AnalyzerConfig) string {
	lower := cases.Lower(language.Und)

	fragments := splitOn(document, config.ExcludedChars)
	kept := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		words := strings.Fields(lower.String(fragment))
		if len(words) == 0 {
			continue
		}
		kept = append(kept, strings.Join(words, " "))
	}

	return strings.Join(kept, " ")
}

// NormalizeCorpus applies NormalizeWithConfig to every document and returns a new corpus.
func NormalizeCorpus(corpus []string, config AnalyzerConfig) []string {
	out := make([]string, len(corpus))
	for i, doc := range corpus {
		out[i] = NormalizeWithConfig(doc, config)
	}
	return out
}

// Tokens splits an already transformed document into its whitespace tokens.
func Tokens(document string) []string {
	return strings.Fields(document)
}

// splitOn splits text on any rune contained in separators, keeping empty
// fragments. Unlike strings.FieldsFunc the empty fragments survive so the
// trimming stage sees exactly what the separators left behind.
func splitOn(text, separators string) []string {
	if separators == "" {
		return []string{text}
	}
	var fragments []string
	start := 0
	for i := 0; i < len(text); {
		r, width := utf8.DecodeRuneInString(text[i:])
		if strings.ContainsRune(separators, r) {
			fragments = append(fragments, text[start:i])
			start = i + width
		}
		i += width
	}
	return append(fragments, text[start:])
}
