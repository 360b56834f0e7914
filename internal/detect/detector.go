package detect

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matheus3301/chardetect/internal/blocks"
	"github.com/matheus3301/chardetect/internal/glyph"
)

// DefaultCacheSize covers the code points of a few scripts at once.
const DefaultCacheSize = 4096

// Detector classifies code points against a block table and renders them
// with a glyph mapper. Results are memoized by code point.
type Detector struct {
	table  *blocks.Table
	mapper *glyph.Mapper
	cache  *lru.Cache[rune, Character]
}

// New creates a detector. A nil table or mapper selects the built-in one.
// A cacheSize of zero disables memoization.
func New(table *blocks.Table, mapper *glyph.Mapper, cacheSize int) (*Detector, error) {
	if table == nil {
		table = blocks.Default()
	}
	if mapper == nil {
		mapper = glyph.Default()
	}
	d := &Detector{table: table, mapper: mapper}
	if cacheSize < 0 {
		return nil, fmt.Errorf("invalid cache size %d", cacheSize)
	}
	if cacheSize > 0 {
		c, err := lru.New[rune, Character](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}
		d.cache = c
	}
	return d, nil
}

// Table returns the block table used for classification.
func (d *Detector) Table() *blocks.Table {
	return d.table
}

// Mapper returns the glyph mapper.
func (d *Detector) Mapper() *glyph.Mapper {
	return d.mapper
}

// Describe classifies a single code point. Index and Offset are zero.
func (d *Detector) Describe(r rune) Character {
	if d.cache != nil {
		if c, ok := d.cache.Get(r); ok {
			return c
		}
	}
	visual, kind := d.mapper.Render(r)
	c := Character{
		Rune:   r,
		Block:  d.table.Classify(r),
		Visual: visual,
		Kind:   kind,
	}
	if d.cache != nil {
		d.cache.Add(r, c)
	}
	return c
}

// Analyze splits text into code points and classifies each of them.
// Invalid UTF-8 bytes appear as U+FFFD, one per byte.
func (d *Detector) Analyze(text string) *Analysis {
	a := &Analysis{Text: text}
	seen := make(map[string]int)
	for off, r := range text {
		c := d.Describe(r)
		c.Index = len(a.Characters)
		c.Offset = off
		a.Characters = append(a.Characters, c)

		if i, ok := seen[c.Block.Name]; ok {
			a.Blocks[i].Count++
			continue
		}
		seen[c.Block.Name] = len(a.Blocks)
		a.Blocks = append(a.Blocks, BlockSummary{Block: c.Block, Count: 1, First: c.Index})
	}
	return a
}
