// Package blocks maps Unicode code points to the named blocks of the Unicode
// standard.
package blocks

import "fmt"

// UnknownName is the name of the sentinel block returned for code points
// outside every known range.
const UnknownName = "Unknown"

// Unknown is the sentinel block. Its range is empty.
var Unknown = Block{
	Name:  UnknownName,
	Start: 0,
	End:   -1,
	Color: "#9e9e9e",
}

// Block is a named, inclusive range of code points.
type Block struct {
	Name      string
	Start     rune
	End       rune
	Color     string // "#rrggbb"
	Reference string // empty when the block has no reference link
}

// Contains reports whether r lies in the block's range.
func (b Block) Contains(r rune) bool {
	return r >= b.Start && r <= b.End
}

// Equal reports whether b and o are the same block. Blocks are identified by
// name only.
func (b Block) Equal(o Block) bool {
	return b.Name == o.Name
}

// HasReference reports whether the block carries a reference link.
func (b Block) HasReference() bool {
	return b.Reference != ""
}

// IsUnknown reports whether b is the sentinel block.
func (b Block) IsUnknown() bool {
	return b.Name == UnknownName
}

// Size returns the number of code points in the block's range.
func (b Block) Size() int {
	if b.End < b.Start {
		return 0
	}
	return int(b.End-b.Start) + 1
}

// Range formats the block's range as "U+0000..U+007F".
func (b Block) Range() string {
	if b.End < b.Start {
		return "-"
	}
	return fmt.Sprintf("%s..%s", CodePoint(b.Start), CodePoint(b.End))
}

// CodePoint formats r in U+ notation with at least four hex digits.
func CodePoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
