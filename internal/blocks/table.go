package blocks

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// RangeError describes a malformed block definition.
type RangeError struct {
	Index  int
	Name   string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("block %d (%q): %s", e.Index, e.Name, e.Reason)
}

// Table is an immutable set of blocks sorted by start code point with
// pairwise disjoint ranges.
type Table struct {
	blocks []Block
	byName map[string]int
}

// NewTable validates the given blocks and returns a table over a private
// copy of them. Blocks must already be sorted by Start.
func NewTable(blocks []Block) (*Table, error) {
	t := &Table{
		blocks: make([]Block, len(blocks)),
		byName: make(map[string]int, len(blocks)),
	}
	copy(t.blocks, blocks)

	for i, b := range t.blocks {
		switch {
		case b.Name == "":
			return nil, &RangeError{Index: i, Reason: "empty name"}
		case b.Name == UnknownName:
			return nil, &RangeError{Index: i, Name: b.Name, Reason: "name is reserved for the sentinel block"}
		case b.Start > b.End:
			return nil, &RangeError{Index: i, Name: b.Name, Reason: fmt.Sprintf("start %s after end %s", CodePoint(b.Start), CodePoint(b.End))}
		case b.Start < 0 || b.End > unicode.MaxRune:
			return nil, &RangeError{Index: i, Name: b.Name, Reason: "range outside the code point space"}
		}
		if _, dup := t.byName[b.Name]; dup {
			return nil, &RangeError{Index: i, Name: b.Name, Reason: "duplicate name"}
		}
		if i > 0 {
			prev := t.blocks[i-1]
			if b.Start <= prev.End {
				if b.Start < prev.Start {
					return nil, &RangeError{Index: i, Name: b.Name, Reason: fmt.Sprintf("not sorted after %q", prev.Name)}
				}
				return nil, &RangeError{Index: i, Name: b.Name, Reason: fmt.Sprintf("overlaps %q", prev.Name)}
			}
		}
		t.byName[b.Name] = i
	}
	return t, nil
}

// MustTable is like NewTable but panics on malformed data.
func MustTable(blocks []Block) *Table {
	t, err := NewTable(blocks)
	if err != nil {
		panic("blocks: " + err.Error())
	}
	return t
}

var defaultTable = sync.OnceValue(func() *Table {
	bs := make([]Block, len(builtin))
	for i, d := range builtin {
		bs[i] = d.block()
	}
	return MustTable(bs)
})

// Default returns the built-in table. It is built on first use.
func Default() *Table {
	return defaultTable()
}

// Classify returns the block of r in the built-in table.
func Classify(r rune) Block {
	return Default().Classify(r)
}

// Classify returns the block whose range contains r, or Unknown.
func (t *Table) Classify(r rune) Block {
	// First block starting after r; the candidate is the one before it.
	i := sort.Search(len(t.blocks), func(i int) bool {
		return t.blocks[i].Start > r
	}) - 1
	if i >= 0 && t.blocks[i].Contains(r) {
		return t.blocks[i]
	}
	return Unknown
}

// Lookup returns the block with the given name.
func (t *Table) Lookup(name string) (Block, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Block{}, false
	}
	return t.blocks[i], true
}

// Len returns the number of blocks in the table.
func (t *Table) Len() int {
	return len(t.blocks)
}

// Blocks returns a copy of the table's blocks in range order.
func (t *Table) Blocks() []Block {
	out := make([]Block, len(t.blocks))
	copy(out, t.blocks)
	return out
}

// Filter returns the blocks whose name contains query, ignoring case.
// An empty query matches every block.
func (t *Table) Filter(query string) []Block {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return t.Blocks()
	}
	var out []Block
	for _, b := range t.blocks {
		if strings.Contains(strings.ToLower(b.Name), query) {
			out = append(out, b)
		}
	}
	return out
}
