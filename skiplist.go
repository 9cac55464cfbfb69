package ngramlab

import (
	"errors"
	"math"
	"math/rand"
)

// ═══════════════════════════════════════════════════════════════════════════════
// POSITIONAL POSTINGS: SKIP LIST
// ═══════════════════════════════════════════════════════════════════════════════
// Every token of the corpus index keeps a sorted list of the places it occurs.
// A skip list gives O(log n) "next occurrence after" and "previous occurrence
// before" lookups, which is all phrase search needs.
//
// Level 2: HEAD ----------------> [d0:4] ---------------------> NULL
// Level 1: HEAD ------> [d0:1] -> [d0:4] ------> [d2:0] ------> NULL
// Level 0: HEAD -> [d0:0] -> [d0:1] -> [d0:4] -> [d1:3] -> [d2:0] -> NULL
//
// Level 0 holds every position in order; higher levels are express lanes.
// ═══════════════════════════════════════════════════════════════════════════════

const MaxHeight = 32

// Sentinel coordinates: BOF sorts before and EOF after every real position.
const (
	BOF = math.MinInt
	EOF = math.MaxInt
)

var ErrNoElementFound = errors.New("no element found")

// Position identifies one token occurrence: document index and token offset.
//
// Positions are ordered by document first, then by offset:
//
//	d0:5 < d0:10 < d1:0 < d1:3
type Position struct {
	DocumentID int
	Offset     int
}

var (
	BOFDocument = Position{DocumentID: BOF, Offset: BOF} // Before all documents
	EOFDocument = Position{DocumentID: EOF, Offset: EOF} // After all documents
)

func (p Position) IsBeginning() bool {
	return p.Offset == BOF
}

func (p Position) IsEnd() bool {
	return p.Offset == EOF
}

func (p Position) IsBefore(other Position) bool {
	if p.DocumentID != other.DocumentID {
		return p.DocumentID < other.DocumentID
	}
	return p.Offset < other.Offset
}

func (p Position) IsAfter(other Position) bool {
	return other.IsBefore(p)
}

func (p Position) Equals(other Position) bool {
	return p == other
}

// Node is a skip list element with one forward pointer per level
type Node struct {
	Key   Position
	Tower [MaxHeight]*Node
}

// SkipList stores positions in ascending order.
type SkipList struct {
	Head   *Node // sentinel, carries no key
	Height int
	Len    int
}

func NewSkipList() *SkipList {
	return &SkipList{
		Head:   &Node{},
		Height: 1,
	}
}

// Search returns the node holding key (or nil) together with the rightmost
// node before key on every level.
func (sl *SkipList) Search(key Position) (*Node, [MaxHeight]*Node) {
	var journey [MaxHeight]*Node
	current := sl.Head

	for level := sl.Height - 1; level >= 0; level-- {
		for next := current.Tower[level]; next != nil && next.Key.IsBefore(key); next = current.Tower[level] {
			current = next
		}
		journey[level] = current
	}

	if next := current.Tower[0]; next != nil && next.Key.Equals(key) {
		return next, journey
	}
	return nil, journey
}

// FindLessThan returns the largest position strictly before key.
func (sl *SkipList) FindLessThan(key Position) (Position, error) {
	_, journey := sl.Search(key)

	predecessor := journey[0]
	if predecessor == nil || predecessor == sl.Head {
		return BOFDocument, ErrNoElementFound
	}
	return predecessor.Key, nil
}

// FindGreaterThan returns the smallest position strictly after key.
func (sl *SkipList) FindGreaterThan(key Position) (Position, error) {
	found, journey := sl.Search(key)

	if found != nil {
		if found.Tower[0] != nil {
			return found.Tower[0].Key, nil
		}
		return EOFDocument, ErrNoElementFound
	}

	if predecessor := journey[0]; predecessor != nil && predecessor.Tower[0] != nil {
		return predecessor.Tower[0].Key, nil
	}
	return EOFDocument, ErrNoElementFound
}

// Insert adds key; inserting an existing key is a no-op.
func (sl *SkipList) Insert(key Position) {
	found, journey := sl.Search(key)
	if found != nil {
		return
	}

	height := randomHeight()
	node := &Node{Key: key}
	for level := 0; level < height; level++ {
		predecessor := journey[level]
		if predecessor == nil {
			predecessor = sl.Head
		}
		node.Tower[level] = predecessor.Tower[level]
		predecessor.Tower[level] = node
	}

	if height > sl.Height {
		sl.Height = height
	}
	sl.Len++
}

// First returns the smallest position, or EOFDocument when empty.
func (sl *SkipList) First() Position {
	if sl.Head.Tower[0] == nil {
		return EOFDocument
	}
	return sl.Head.Tower[0].Key
}

// Last returns the largest position, or BOFDocument when empty.
func (sl *SkipList) Last() Position {
	current := sl.Head
	for next := current.Tower[0]; next != nil; next = next.Tower[0] {
		current = next
	}
	if current == sl.Head {
		return BOFDocument
	}
	return current.Key
}

// Positions returns every stored position in order.
func (sl *SkipList) Positions() []Position {
	out := make([]Position, 0, sl.Len)
	for node := sl.Head.Tower[0]; node != nil; node = node.Tower[0] {
		out = append(out, node.Key)
	}
	return out
}

// randomHeight flips coins until tails, capped at MaxHeight.
func randomHeight() int {
	height := 1
	for rand.Float64() < 0.5 && height < MaxHeight {
		height++
	}
	return height
}
