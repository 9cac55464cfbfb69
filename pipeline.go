package ngramlab

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"
)

// ═══════════════════════════════════════════════════════════════════════════════
// ANALYSIS PIPELINE
// ═══════════════════════════════════════════════════════════════════════════════
// One pass turns a corpus stage into statistics:
//
//	corpus ─► transform ─► n-grams ─► frequencies ─► TF-IDF ─► top-K
//	   └──────────────────────────► similarity matrix
//
// The transform is either normalization or stemming, never both in the same
// pass. RunTwice normalizes the raw corpus first, then stems the normalized
// corpus, so the two results can be compared side by side.
//
// One CorpusIndex is built per pass and shared by TF-IDF (document
// frequencies) and the similarity matrix (term counts).
// ═══════════════════════════════════════════════════════════════════════════════

var (
	ErrEmptyCorpus = errors.New("corpus has no documents")
	ErrInvalidN    = errors.New("n-gram size must be positive")
)

// Pass selects the corpus transform applied before analysis.
type Pass int

const (
	PassNormalize Pass = iota
	PassStem
)

func (p Pass) String() string {
	switch p {
	case PassNormalize:
		return "normalize"
	case PassStem:
		return "stem"
	default:
		return fmt.Sprintf("pass(%d)", int(p))
	}
}

// WeightedLabel is one renderer input item: a joined n-gram and its weight.
type WeightedLabel struct {
	Label  string
	Weight float64
}

// Renderer turns weighted labels into an artifact named name. The slice is
// fully materialized and may be iterated more than once.
type Renderer interface {
	Render(name string, weights []WeightedLabel) error
}

// PassConfig controls one analysis pass.
type PassConfig struct {
	N         int // n-gram size
	TopK      int // number of entries kept by the top-K selector
	CloudSize int // number of most frequent n-grams handed to the cloud renderer
	Analyzer  AnalyzerConfig
}

// DefaultPassConfig returns bigrams, top 10, cloud of 100.
func DefaultPassConfig() PassConfig {
	return PassConfig{
		N:         2,
		TopK:      10,
		CloudSize: 100,
		Analyzer:  DefaultConfig(),
	}
}

// PassResult holds everything one pass computed.
type PassResult struct {
	Pass        Pass
	RunID       string
	Corpus      []string // transformed corpus the statistics were computed on
	NGrams      []NGram
	Frequencies []FrequencyEntry
	Scores      []ScoredEntry
	Top         []ScoredEntry
	Similarity  [][]float64
}

// Pipeline runs analysis passes. Stemmer is used by PassStem; Renderer is
// optional.
type Pipeline struct {
	Stemmer  Stemmer
	Config   PassConfig
	Renderer Renderer

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewPipeline creates a pipeline with an explicit stemming service.
func NewPipeline(stemmer Stemmer, config PassConfig) *Pipeline {
	return &Pipeline{
		Stemmer: stemmer,
		Config:  config,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (p *Pipeline) newRunID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.entropy == nil {
		p.entropy = ulid.Monotonic(rand.Reader, 0)
	}
	return ulid.MustNew(ulid.Now(), p.entropy).String()
}

// Transform applies the pass transform and returns a new corpus.
func (p *Pipeline) Transform(pass Pass, corpus []string) ([]string, error) {
	switch pass {
	case PassNormalize:
		return NormalizeCorpus(corpus, p.Config.Analyzer), nil
	case PassStem:
		stemmer := p.Stemmer
		if stemmer == nil {
			stemmer = DefaultStemChain()
		}
		return StemCorpus(corpus, stemmer, p.Config.Analyzer), nil
	default:
		return nil, fmt.Errorf("unknown pass %v", pass)
	}
}

// Analyze transforms corpus for pass and computes its statistics.
func (p *Pipeline) Analyze(ctx context.Context, pass Pass, corpus []string) (*PassResult, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}
	if p.Config.N <= 0 {
		return nil, ErrInvalidN
	}

	result := &PassResult{Pass: pass, RunID: p.newRunID()}
	logger := slog.With(slog.String("run", result.RunID), slog.String("pass", pass.String()))
	logger.Info("analysis pass started", slog.Int("documents", len(corpus)), slog.Int("n", p.Config.N))

	transformed, err := p.Transform(pass, corpus)
	if err != nil {
		return nil, err
	}
	result.Corpus = transformed

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.NGrams = ExtractCorpus(transformed, p.Config.N)
	result.Frequencies = Frequencies(result.NGrams)
	logger.Debug("n-grams counted",
		slog.Int("ngrams", len(result.NGrams)),
		slog.Int("distinct", len(result.Frequencies)))

	if err := p.render(fmt.Sprintf("cloud%d", int(pass)), cloudWeights(result.Frequencies, p.Config.CloudSize)); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := BuildCorpusIndex(transformed)
	result.Scores, err = idx.TFIDF(result.Frequencies)
	if err != nil {
		return nil, fmt.Errorf("%s pass: %w", pass, err)
	}

	if err := p.render(fmt.Sprintf("TF_IDF(%d)", int(pass)), labelWeights(result.Scores)); err != nil {
		return nil, err
	}

	result.Top = TopK(result.Scores, p.Config.TopK)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.Similarity = idx.SimilarityMatrix()

	logger.Info("analysis pass finished", slog.Int("top", len(result.Top)))
	return result, nil
}

// RunTwice runs a normalize pass on corpus and a stem pass on the normalized
// corpus.
func (p *Pipeline) RunTwice(ctx context.Context, corpus []string) ([2]*PassResult, error) {
	var results [2]*PassResult

	first, err := p.Analyze(ctx, PassNormalize, corpus)
	if err != nil {
		return results, err
	}
	results[0] = first

	second, err := p.Analyze(ctx, PassStem, first.Corpus)
	if err != nil {
		return results, err
	}
	results[1] = second

	return results, nil
}

func (p *Pipeline) render(name string, weights []WeightedLabel) error {
	if p.Renderer == nil {
		return nil
	}
	if err := p.Renderer.Render(name, weights); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// cloudWeights picks the size most frequent n-grams.
func cloudWeights(entries []FrequencyEntry, size int) []WeightedLabel {
	return labelWeights(TopK(FrequencyScores(entries), size))
}

func labelWeights(entries []ScoredEntry) []WeightedLabel {
	weights := make([]WeightedLabel, len(entries))
	for i, e := range entries {
		weights[i] = WeightedLabel{Label: e.NGram.Key(), Weight: e.Score}
	}
	return weights
}
