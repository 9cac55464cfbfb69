package ngramlab

import (
	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PHRASE SEARCH: Finding Contiguous N-Grams
// ═══════════════════════════════════════════════════════════════════════════════
// A document "contains" an n-gram when the n-gram's tokens sit at consecutive
// offsets of that document.
//
// THE ALGORITHM:
// --------------
// 1. Hop forward through the terms with Next to find a candidate END
// 2. Walk backwards with Previous to find the matching START
// 3. Accept if start and end share a document and are n-1 tokens apart
// 4. Otherwise resume from the start and try again
//
// VISUAL EXAMPLE:
// ---------------
// Doc 0: "мыла мама раму мылом"     Doc 1: "мама мыла раму"
//
// Searching "мама мыла":
//   - Next("мама", BOF)  → d0:1
//   - Next("мыла", d0:1) → d1:1   (end candidate)
//   - Previous("мама", d1:1) → d1:0
//   - d1:0 .. d1:1 is one token apart in one document → match in doc 1
// ═══════════════════════════════════════════════════════════════════════════════

// NextPhrase finds the first occurrence of terms strictly after startPos and
// returns its [start, end] positions, or [EOF, EOF] when none is left.
func (idx *CorpusIndex) NextPhrase(terms []string, startPos Position) [2]Position {
	notFound := [2]Position{EOFDocument, EOFDocument}
	if len(terms) == 0 {
		return notFound
	}

	for {
		endPos := idx.findPhraseEnd(terms, startPos)
		if endPos.IsEnd() {
			return notFound
		}

		phraseStart := idx.findPhraseStart(terms, endPos)
		if isValidPhrase(phraseStart, endPos, len(terms)) {
			return [2]Position{phraseStart, endPos}
		}

		startPos = phraseStart
	}
}

// findPhraseEnd hops through the terms in order starting at startPos.
func (idx *CorpusIndex) findPhraseEnd(terms []string, startPos Position) Position {
	currentPos := startPos
	for _, term := range terms {
		currentPos, _ = idx.Next(term, currentPos)
		if currentPos.IsEnd() {
			return EOFDocument
		}
	}
	return currentPos
}

// findPhraseStart walks back from the last term to the first.
func (idx *CorpusIndex) findPhraseStart(terms []string, endPos Position) Position {
	currentPos := endPos
	for i := len(terms) - 2; i >= 0; i-- {
		currentPos, _ = idx.Previous(terms[i], currentPos)
	}
	return currentPos
}

func isValidPhrase(start, end Position, termCount int) bool {
	return start.DocumentID == end.DocumentID && end.Offset-start.Offset == termCount-1
}

// FindAllPhrases returns every occurrence of terms in index order.
func (idx *CorpusIndex) FindAllPhrases(terms []string) [][2]Position {
	var matches [][2]Position
	for current := BOFDocument; ; {
		match := idx.NextPhrase(terms, current)
		if match[0].IsEnd() {
			return matches
		}
		matches = append(matches, match)
		current = match[0]
	}
}

// DocumentsContaining returns the set of documents in which gram occurs as a
// contiguous token run.
//
// Documents missing any of the terms are ruled out by intersecting the term
// bitmaps before any positions are walked.
func (idx *CorpusIndex) DocumentsContaining(gram NGram) *roaring.Bitmap {
	result := roaring.NewBitmap()
	if len(gram) == 0 {
		return result
	}

	bitmaps := make([]*roaring.Bitmap, 0, len(gram))
	for _, term := range gram {
		bitmap, ok := idx.DocBitmaps[term]
		if !ok {
			return result
		}
		bitmaps = append(bitmaps, bitmap)
	}

	if len(bitmaps) == 1 {
		return bitmaps[0].Clone()
	}
	if roaring.FastAnd(bitmaps...).IsEmpty() {
		return result
	}

	for _, match := range idx.FindAllPhrases(gram) {
		result.Add(uint32(match[0].DocumentID))
	}
	return result
}

// ContainingCount is the cardinality of DocumentsContaining.
func (idx *CorpusIndex) ContainingCount(gram NGram) int {
	return int(idx.DocumentsContaining(gram).GetCardinality())
}
