package ngramlab

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kljensen/snowball"
)

func failing(err error) Stemmer {
	return StemmerFunc(func(string) (string, error) { return "", err })
}

func suffix(s string) Stemmer {
	return StemmerFunc(func(word string) (string, error) { return word + s, nil })
}

func TestStemChain_FirstSuccessWins(t *testing.T) {
	chain := NewStemChain(suffix("-1"), suffix("-2"))

	if got := chain.StemWord("w"); got != "w-1" {
		t.Errorf("StemWord() = %q, want %q", got, "w-1")
	}
}

func TestStemChain_FallsThrough(t *testing.T) {
	tests := []struct {
		name  string
		chain *StemChain
		want  string
	}{
		{"Error then success", NewStemChain(failing(errors.New("boom")), suffix("-2")), "w-2"},
		{"Unsupported then success", NewStemChain(failing(ErrUnsupportedWord), suffix("-2")), "w-2"},
		{"Panic then success", NewStemChain(StemmerFunc(func(string) (string, error) { panic("bad word") }), suffix("-2")), "w-2"},
		{"Empty stem then success", NewStemChain(StemmerFunc(func(string) (string, error) { return " ", nil }), suffix("-2")), "w-2"},
		{"Everything fails", NewStemChain(failing(errors.New("a")), failing(errors.New("b"))), "w"},
		{"No strategies", NewStemChain(), "w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chain.StemWord("w"); got != tt.want {
				t.Errorf("StemWord() = %q, want %q", got, tt.want)
			}
			if got, err := tt.chain.Stem("w"); err != nil || got != tt.want {
				t.Errorf("Stem() = %q, %v; want %q, nil", got, err, tt.want)
			}
		})
	}
}

func TestSnowballStemmer_ScriptGate(t *testing.T) {
	russian := &SnowballStemmer{Language: "russian"}
	english := &SnowballStemmer{Language: "english"}

	if _, err := russian.Stem("running"); !errors.Is(err, ErrUnsupportedWord) {
		t.Errorf("russian.Stem(latin) error = %v, want ErrUnsupportedWord", err)
	}
	if _, err := english.Stem("мамы"); !errors.Is(err, ErrUnsupportedWord) {
		t.Errorf("english.Stem(cyrillic) error = %v, want ErrUnsupportedWord", err)
	}
	if _, err := english.Stem("42"); !errors.Is(err, ErrUnsupportedWord) {
		t.Errorf("english.Stem(digits) error = %v, want ErrUnsupportedWord", err)
	}
}

func TestSnowballStemmer_UnknownLanguage(t *testing.T) {
	if _, err := NewSnowballStemmer("klingon"); err == nil {
		t.Error("NewSnowballStemmer(klingon) should fail")
	}
	if _, err := (&SnowballStemmer{Language: "klingon"}).Stem("word"); err == nil {
		t.Error("Stem() with unknown language should fail")
	}
}

func TestDefaultStemChain(t *testing.T) {
	chain := DefaultStemChain()

	wantRussian, err := snowball.Stem("мамы", "russian", true)
	if err != nil {
		t.Fatalf("snowball.Stem() error = %v", err)
	}

	tests := []struct {
		word string
		want string
	}{
		{"мамы", wantRussian},
		{"running", "run"},
		{"windows", "window"},
		{"42", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := chain.StemWord(tt.word); got != tt.want {
				t.Errorf("StemWord(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestStemChainFor(t *testing.T) {
	chain, err := StemChainFor([]string{"English"})
	if err != nil {
		t.Fatalf("StemChainFor() error = %v", err)
	}
	if got := chain.StemWord("cats"); got != "cat" {
		t.Errorf("StemWord(cats) = %q, want cat", got)
	}

	if _, err := StemChainFor([]string{"english", "elvish"}); err == nil {
		t.Error("StemChainFor() should reject unknown languages")
	}
}

func TestStemDocument(t *testing.T) {
	upper := StemmerFunc(func(word string) (string, error) { return strings.ToUpper(word), nil })

	got := StemDocument("  a, b..c  d ", upper, DefaultConfig())
	if got != "A B C D" {
		t.Errorf("StemDocument() = %q, want %q", got, "A B C D")
	}
}

func TestStemDocument_StemmerFailureKeepsWord(t *testing.T) {
	got := StemDocument("keep these words", failing(errors.New("down")), DefaultConfig())
	if got != "keep these words" {
		t.Errorf("StemDocument() = %q, want the words unchanged", got)
	}
}

func TestStemCorpus(t *testing.T) {
	corpus := []string{"cats run", ""}
	got := StemCorpus(corpus, DefaultStemChain(), DefaultConfig())

	if !reflect.DeepEqual(got, []string{"cat run", ""}) {
		t.Errorf("StemCorpus() = %q", got)
	}
	if corpus[0] != "cats run" {
		t.Error("StemCorpus() mutated its input")
	}
}
