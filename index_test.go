package ngramlab

import (
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// CORPUS INDEX TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestNewCorpusIndex(t *testing.T) {
	idx := NewCorpusIndex()

	if idx.PostingsList == nil || idx.DocBitmaps == nil {
		t.Fatal("NewCorpusIndex() left maps nil")
	}
	if idx.TotalDocs != 0 {
		t.Errorf("TotalDocs = %d, want 0", idx.TotalDocs)
	}
}

func TestCorpusIndex_Add_AssignsSequentialIDs(t *testing.T) {
	idx := NewCorpusIndex()

	for want, doc := range []string{"a b", "", "c"} {
		if got := idx.Add(doc); got != want {
			t.Errorf("Add(%q) = %d, want %d", doc, got, want)
		}
	}
	if idx.TotalDocs != 3 || len(idx.DocStats) != 3 {
		t.Errorf("TotalDocs = %d, DocStats = %d, want 3 and 3", idx.TotalDocs, len(idx.DocStats))
	}
	if idx.DocStats[1].Length != 0 {
		t.Errorf("empty document Length = %d, want 0", idx.DocStats[1].Length)
	}
}

func TestCorpusIndex_TokensIndexedVerbatim(t *testing.T) {
	idx := BuildCorpusIndex([]string{"The quick, fox"})

	// No lowercasing or punctuation stripping happens at index time.
	for _, token := range []string{"The", "quick,", "fox"} {
		if _, ok := idx.PostingsList[token]; !ok {
			t.Errorf("token %q was not indexed", token)
		}
	}
	if _, ok := idx.PostingsList["the"]; ok {
		t.Error("index should not lowercase tokens")
	}
}

func TestCorpusIndex_TermFreqs(t *testing.T) {
	idx := BuildCorpusIndex([]string{"a b a", "a c"})

	stats := idx.DocStats[0]
	if stats.TermFreqs["a"] != 2 || stats.TermFreqs["b"] != 1 {
		t.Errorf("doc 0 TermFreqs = %v, want a:2 b:1", stats.TermFreqs)
	}
	if stats.Length != 3 {
		t.Errorf("doc 0 Length = %d, want 3", stats.Length)
	}
}

func TestCorpusIndex_DocumentFrequency(t *testing.T) {
	idx := BuildCorpusIndex([]string{"a b a", "a c", "d"})

	tests := []struct {
		token string
		want  int
	}{
		{"a", 2},
		{"b", 1},
		{"d", 1},
		{"missing", 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := idx.DocumentFrequency(tt.token); got != tt.want {
				t.Errorf("DocumentFrequency(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// NAVIGATION TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestCorpusIndex_Next(t *testing.T) {
	idx := BuildCorpusIndex([]string{"x brown y brown", "brown"})

	pos, err := idx.Next("brown", BOFDocument)
	if err != nil || pos != (Position{0, 1}) {
		t.Fatalf("Next(BOF) = %v, %v; want d0:1", pos, err)
	}
	pos, _ = idx.Next("brown", pos)
	if pos != (Position{0, 3}) {
		t.Errorf("second Next = %v, want d0:3", pos)
	}
	pos, _ = idx.Next("brown", pos)
	if pos != (Position{1, 0}) {
		t.Errorf("third Next = %v, want d1:0", pos)
	}
	pos, _ = idx.Next("brown", pos)
	if !pos.IsEnd() {
		t.Errorf("fourth Next = %v, want EOF", pos)
	}
}

func TestCorpusIndex_Previous(t *testing.T) {
	idx := BuildCorpusIndex([]string{"x brown y brown", "brown"})

	pos, err := idx.Previous("brown", EOFDocument)
	if err != nil || pos != (Position{1, 0}) {
		t.Fatalf("Previous(EOF) = %v, %v; want d1:0", pos, err)
	}
	pos, _ = idx.Previous("brown", pos)
	if pos != (Position{0, 3}) {
		t.Errorf("second Previous = %v, want d0:3", pos)
	}
	pos, _ = idx.Previous("brown", Position{0, 1})
	if !pos.IsBeginning() {
		t.Errorf("Previous before first = %v, want BOF", pos)
	}
}

func TestCorpusIndex_Navigation_MissingToken(t *testing.T) {
	idx := BuildCorpusIndex([]string{"a b"})

	if pos, err := idx.Next("zzz", BOFDocument); err != ErrNoPostingList || !pos.IsEnd() {
		t.Errorf("Next(missing) = %v, %v; want EOF, ErrNoPostingList", pos, err)
	}
	if pos, err := idx.Previous("zzz", EOFDocument); err != ErrNoPostingList || !pos.IsBeginning() {
		t.Errorf("Previous(missing) = %v, %v; want BOF, ErrNoPostingList", pos, err)
	}
}
