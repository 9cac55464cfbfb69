// ═══════════════════════════════════════════════════════════════════════════════
// CORPUS INDEX
// ═══════════════════════════════════════════════════════════════════════════════
// The corpus index is an inverted index over the whitespace tokens of one
// corpus stage (normalized or stemmed). It answers two questions the scorers
// keep asking:
//
//  1. Which documents contain this n-gram as a contiguous run of tokens?
//     (document frequency for IDF)
//  2. How often does each token occur in each document?
//     (bag-of-words vectors for cosine similarity)
//
// Example: Given
//
//	Doc 0: "мама мыла раму"
//	Doc 1: "мыла мама раму"
//
// the index holds
//
//	"мама" → docs {0,1}  positions [d0:0, d1:1]
//	"мыла" → docs {0,1}  positions [d0:1, d1:0]
//	"раму" → docs {0,1}  positions [d0:2, d1:2]
//
// and "мама мыла" is found contiguously only in doc 0.
//
// Tokens are indexed exactly as they appear: the index never re-normalizes or
// re-stems, so it must be built from the same stage the n-grams came from.
// ═══════════════════════════════════════════════════════════════════════════════

package ngramlab

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/RoaringBitmap/roaring"
)

var (
	ErrNoPostingList = errors.New("no posting list exists for token")
)

// DocumentStats stores statistics about a single document
type DocumentStats struct {
	DocID     int            // Position of the document in the corpus
	Length    int            // Number of tokens in the document
	TermFreqs map[string]int // How many times each token appears
}

// CorpusIndex keeps document bitmaps and positional postings for every token.
type CorpusIndex struct {
	mu sync.Mutex

	DocBitmaps   map[string]*roaring.Bitmap // Token → documents containing it
	PostingsList map[string]*SkipList       // Token → positions

	DocStats  []DocumentStats // Indexed by DocID
	TotalDocs int
}

// NewCorpusIndex creates an empty index
func NewCorpusIndex() *CorpusIndex {
	return &CorpusIndex{
		DocBitmaps:   make(map[string]*roaring.Bitmap),
		PostingsList: make(map[string]*SkipList),
	}
}

// BuildCorpusIndex indexes every document of corpus under its position.
func BuildCorpusIndex(corpus []string) *CorpusIndex {
	idx := NewCorpusIndex()
	for _, doc := range corpus {
		idx.Add(doc)
	}
	return idx
}

// Add indexes the next document and returns its DocID.
//
// The document is split on whitespace only. An empty document still takes a
// DocID so corpus positions and DocIDs stay aligned.
func (idx *CorpusIndex) Add(document string) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	docID := idx.TotalDocs
	tokens := Tokens(document)

	stats := DocumentStats{
		DocID:     docID,
		Length:    len(tokens),
		TermFreqs: make(map[string]int, len(tokens)),
	}
	for offset, token := range tokens {
		idx.indexToken(token, docID, offset)
		stats.TermFreqs[token]++
	}

	idx.DocStats = append(idx.DocStats, stats)
	idx.TotalDocs++

	slog.Debug("indexed document", slog.Int("docID", docID), slog.Int("tokens", len(tokens)))
	return docID
}

func (idx *CorpusIndex) indexToken(token string, docID, offset int) {
	bitmap, ok := idx.DocBitmaps[token]
	if !ok {
		bitmap = roaring.NewBitmap()
		idx.DocBitmaps[token] = bitmap
	}
	bitmap.Add(uint32(docID))

	postings, ok := idx.PostingsList[token]
	if !ok {
		postings = NewSkipList()
		idx.PostingsList[token] = postings
	}
	postings.Insert(Position{DocumentID: docID, Offset: offset})
}

// DocumentFrequency returns how many documents contain token at least once.
func (idx *CorpusIndex) DocumentFrequency(token string) int {
	bitmap, ok := idx.DocBitmaps[token]
	if !ok {
		return 0
	}
	return int(bitmap.GetCardinality())
}

// ═══════════════════════════════════════════════════════════════════════════════
// POSTING NAVIGATION
// ═══════════════════════════════════════════════════════════════════════════════
// Next and Previous are the two primitives phrase search is built on: jump to
// the next (or previous) occurrence of a token relative to a position.
// ═══════════════════════════════════════════════════════════════════════════════

// Next finds the first occurrence of token after currentPos.
func (idx *CorpusIndex) Next(token string, currentPos Position) (Position, error) {
	if currentPos.IsEnd() {
		return EOFDocument, nil
	}
	postings, ok := idx.PostingsList[token]
	if !ok {
		return EOFDocument, ErrNoPostingList
	}
	if currentPos.IsBeginning() {
		return postings.First(), nil
	}
	next, _ := postings.FindGreaterThan(currentPos)
	return next, nil
}

// Previous finds the last occurrence of token before currentPos.
func (idx *CorpusIndex) Previous(token string, currentPos Position) (Position, error) {
	if currentPos.IsBeginning() {
		return BOFDocument, nil
	}
	postings, ok := idx.PostingsList[token]
	if !ok {
		return BOFDocument, ErrNoPostingList
	}
	if currentPos.IsEnd() {
		return postings.Last(), nil
	}
	prev, _ := postings.FindLessThan(currentPos)
	return prev, nil
}
