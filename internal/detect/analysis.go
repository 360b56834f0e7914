package detect

import "github.com/matheus3301/chardetect/internal/blocks"

// BlockSummary counts the characters of an analysis that fall in one block.
type BlockSummary struct {
	Block blocks.Block
	Count int
	First int // index of the first character in the block
}

// Analysis is the result of classifying a whole text.
type Analysis struct {
	Text       string
	Characters []Character
	// Blocks lists each distinct block once, in order of first appearance.
	Blocks []BlockSummary
}

// Len returns the number of code points.
func (a *Analysis) Len() int {
	return len(a.Characters)
}

// Block returns the summary for the named block.
func (a *Analysis) Block(name string) (BlockSummary, bool) {
	for _, s := range a.Blocks {
		if s.Block.Name == name {
			return s, true
		}
	}
	return BlockSummary{}, false
}

// InBlock returns the characters that belong to the named block.
func (a *Analysis) InBlock(name string) []Character {
	var out []Character
	for _, c := range a.Characters {
		if c.Block.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Substitutions returns how many characters are drawn as the placeholder.
func (a *Analysis) Substitutions() int {
	n := 0
	for _, c := range a.Characters {
		if c.Substituted() {
			n++
		}
	}
	return n
}
