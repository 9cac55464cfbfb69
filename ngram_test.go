package ngramlab

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tokens := []string{"a", "b", "c", "d"}

	tests := []struct {
		name string
		n    int
		want []NGram
	}{
		{"Bigrams", 2, []NGram{{"a", "b"}, {"b", "c"}, {"c", "d"}}},
		{"Unigrams", 1, []NGram{{"a"}, {"b"}, {"c"}, {"d"}}},
		{"Whole sequence", 4, []NGram{{"a", "b", "c", "d"}}},
		{"Longer than sequence", 5, []NGram{}},
		{"Zero", 0, []NGram{}},
		{"Negative", -1, []NGram{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tokens, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(n=%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestExtract_Length(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f", "g"}
	for n := 1; n <= len(tokens)+2; n++ {
		want := max(0, len(tokens)-n+1)
		if got := len(Extract(tokens, n)); got != want {
			t.Errorf("len(Extract(n=%d)) = %d, want %d", n, got, want)
		}
	}
}

func TestExtract_CopiesTokens(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	grams := Extract(tokens, 2)

	tokens[1] = "x"
	if grams[0][1] != "b" {
		t.Error("Extract() n-grams should not alias the token slice")
	}
}

func TestExtractCorpus_NoCrossDocumentGrams(t *testing.T) {
	got := ExtractCorpus([]string{"a b a", "a c"}, 2)
	want := []NGram{{"a", "b"}, {"b", "a"}, {"a", "c"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractCorpus() = %v, want %v", got, want)
	}
}

func TestExtractCorpus_Empty(t *testing.T) {
	if got := ExtractCorpus([]string{"", "a"}, 2); len(got) != 0 {
		t.Errorf("ExtractCorpus() = %v, want empty", got)
	}
}

func TestNGram_KeyAndEquals(t *testing.T) {
	g := NGram{"мама", "мыла"}

	if g.Key() != "мама мыла" {
		t.Errorf("Key() = %q", g.Key())
	}
	if !g.Equals(NGram{"мама", "мыла"}) {
		t.Error("Equals() should match the same tokens")
	}
	if g.Equals(NGram{"мыла", "мама"}) {
		t.Error("Equals() should respect order")
	}
	if g.Equals(NGram{"Мама", "мыла"}) {
		t.Error("Equals() should respect case")
	}
}
