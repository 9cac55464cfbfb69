package ngramlab

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// ═══════════════════════════════════════════════════════════════════════════════
// STEMMING SERVICE
// ═══════════════════════════════════════════════════════════════════════════════
// Stemming reduces a word to its root so inflected forms collapse together:
//
//	"мыла", "мыли" → "мыл"      "running", "runs" → "run"
//
// A StemChain is an ordered list of strategies. Each word is offered to the
// strategies in turn; the first one that succeeds wins. When every strategy
// refuses, fails or panics, the word is kept as it is, so stemming never
// aborts a pipeline run.
//
//	StemChain[russian, english]
//	    "мамы"    → russian ok            → "мам"
//	    "windows" → russian refuses, english ok → "window"
//	    "42"      → both refuse           → "42"
// ═══════════════════════════════════════════════════════════════════════════════

var ErrUnsupportedWord = errors.New("word not supported by stemmer")

// Stemmer reduces a single word to its stem.
type Stemmer interface {
	Stem(word string) (string, error)
}

// StemmerFunc adapts a function to the Stemmer interface.
type StemmerFunc func(word string) (string, error)

func (f StemmerFunc) Stem(word string) (string, error) {
	return f(word)
}

// SnowballStemmer stems words of one language with the snowball algorithms.
// Words without any letter of the language's script are refused with
// ErrUnsupportedWord.
type SnowballStemmer struct {
	Language string
}

var languageScripts = map[string]*unicode.RangeTable{
	"russian":   unicode.Cyrillic,
	"english":   unicode.Latin,
	"french":    unicode.Latin,
	"spanish":   unicode.Latin,
	"swedish":   unicode.Latin,
	"norwegian": unicode.Latin,
}

// NewSnowballStemmer validates language against the supported snowball set.
func NewSnowballStemmer(language string) (*SnowballStemmer, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if _, ok := languageScripts[language]; !ok {
		return nil, fmt.Errorf("snowball: unsupported language %q", language)
	}
	return &SnowballStemmer{Language: language}, nil
}

func (s *SnowballStemmer) Stem(word string) (string, error) {
	script, ok := languageScripts[s.Language]
	if !ok {
		return "", fmt.Errorf("snowball: unsupported language %q", s.Language)
	}
	if !strings.ContainsFunc(word, func(r rune) bool { return unicode.Is(script, r) }) {
		return "", ErrUnsupportedWord
	}
	return snowball.Stem(word, s.Language, true)
}

// StemChain tries its strategies in order and falls back to the word itself.
type StemChain struct {
	strategies []Stemmer
}

// NewStemChain builds a chain from strategies in priority order.
func NewStemChain(strategies ...Stemmer) *StemChain {
	return &StemChain{strategies: strategies}
}

// DefaultStemChain tries russian first, then english.
func DefaultStemChain() *StemChain {
	return NewStemChain(
		&SnowballStemmer{Language: "russian"},
		&SnowballStemmer{Language: "english"},
	)
}

// StemChainFor builds a chain of snowball stemmers for languages.
func StemChainFor(languages []string) (*StemChain, error) {
	strategies := make([]Stemmer, 0, len(languages))
	for _, lang := range languages {
		s, err := NewSnowballStemmer(lang)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return NewStemChain(strategies...), nil
}

// Stem never returns an error; it satisfies Stemmer so chains nest.
func (c *StemChain) Stem(word string) (string, error) {
	return c.StemWord(word), nil
}

// StemWord returns the first successful stem, or word when none succeeds.
func (c *StemChain) StemWord(word string) string {
	for _, strategy := range c.strategies {
		stem, err := tryStem(strategy, word)
		if err == nil {
			return stem
		}
		if !errors.Is(err, ErrUnsupportedWord) {
			slog.Debug("stem attempt failed", slog.String("word", word), slog.Any("error", err))
		}
	}
	return word
}

// tryStem runs one strategy, turning panics and empty stems into errors.
func tryStem(s Stemmer, word string) (stem string, err error) {
	defer func() {
		if r := recover(); r != nil {
			stem, err = "", fmt.Errorf("stemmer panicked: %v", r)
		}
	}()

	stem, err = s.Stem(word)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(stem) == "" {
		return "", fmt.Errorf("stemmer produced an empty stem for %q", word)
	}
	return stem, nil
}

// StemDocument splits document on whitespace and the excluded characters,
// stems every word and rejoins them with single spaces.
func StemDocument(document string, stemmer Stemmer, config AnalyzerConfig) string {
	separators := config.ExcludedChars
	words := strings.FieldsFunc(document, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
	})

	for i, word := range words {
		if stem, err := tryStem(stemmer, word); err == nil {
			words[i] = stem
		}
	}
	return strings.Join(words, " ")
}

// StemCorpus applies StemDocument to every document and returns a new corpus.
func StemCorpus(corpus []string, stemmer Stemmer, config AnalyzerConfig) []string {
	out := make([]string, len(corpus))
	for i, doc := range corpus {
		out[i] = StemDocument(doc, stemmer, config)
	}
	return out
}
