package blocks

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
	"unicode"
)

func TestClassifyKnownBlocks(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'A', "Basic Latin"},
		{'\n', "Basic Latin"},
		{0x0000, "Basic Latin"},
		{0x007F, "Basic Latin"},
		{0x0080, "Latin-1 Supplement"},
		{'é', "Latin-1 Supplement"},
		{'Б', "Cyrillic"},
		{'б', "Cyrillic"},
		{'ї', "Cyrillic"},
		{0x0301, "Combining Diacritical Marks"},
		{'中', "CJK Unified Ideographs"},
		{0x200B, "General Punctuation"},
		{0xFEFF, "Arabic Presentation Forms-B"},
		{0xFFFD, "Specials"},
		{'😀', "Emoticons"},
		{0x1F3FB, "Miscellaneous Symbols and Pictographs"},
		{0xE0001, "Tags"},
		{0x10FFFF, "Supplementary Private Use Area-B"},
	}
	for _, tt := range tests {
		t.Run(CodePoint(tt.r), func(t *testing.T) {
			got := Classify(tt.r)
			if got.Name != tt.want {
				t.Errorf("Classify(%s) = %q, want %q", CodePoint(tt.r), got.Name, tt.want)
			}
			if !got.Contains(tt.r) {
				t.Errorf("block %q range %s does not contain %s", got.Name, got.Range(), CodePoint(tt.r))
			}
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, r := range []rune{0x2FE0, 0x10200, 0x3FFFF, 0xDFFFF, -1, unicode.MaxRune + 1} {
		got := Classify(r)
		if !got.IsUnknown() {
			t.Errorf("Classify(%d) = %q, want Unknown", r, got.Name)
		}
		if got.HasReference() {
			t.Errorf("Unknown block has reference %q", got.Reference)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	tbl := Default()
	for r := rune(0); r <= unicode.MaxRune; r++ {
		b := tbl.Classify(r)
		if b.Name == "" {
			t.Fatalf("Classify(%s) returned unnamed block", CodePoint(r))
		}
		if !b.IsUnknown() && !b.Contains(r) {
			t.Fatalf("Classify(%s) = %q which does not contain it", CodePoint(r), b.Name)
		}
	}
}

func TestClassifyMatchesLinearScan(t *testing.T) {
	tbl := Default()
	all := tbl.Blocks()
	for r := rune(0); r <= unicode.MaxRune; r += 97 {
		want := Unknown
		for _, b := range all {
			if b.Contains(r) {
				want = b
				break
			}
		}
		if got := tbl.Classify(r); !got.Equal(want) {
			t.Fatalf("Classify(%s) = %q, linear scan = %q", CodePoint(r), got.Name, want.Name)
		}
	}
}

func TestSameBlockSameName(t *testing.T) {
	for _, b := range Default().Blocks() {
		first, last := Classify(b.Start), Classify(b.End)
		if !first.Equal(last) || first.Name != b.Name {
			t.Errorf("block %q: start -> %q, end -> %q", b.Name, first.Name, last.Name)
		}
	}
}

func TestDefaultTablePartition(t *testing.T) {
	all := Default().Blocks()
	if len(all) < 300 {
		t.Fatalf("default table has %d blocks, want the full block list", len(all))
	}
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.Start <= b.End && b.Start <= a.End {
				t.Fatalf("%q overlaps %q", a.Name, b.Name)
			}
		}
	}
}

func TestDefaultIsBuiltOnce(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 8)
	for i := range tables {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tables[i] = Default()
		}()
	}
	wg.Wait()
	for _, tbl := range tables[1:] {
		if tbl != tables[0] {
			t.Fatal("Default() returned different tables")
		}
	}
}

func TestBlocksReturnsCopy(t *testing.T) {
	tbl := Default()
	bs := tbl.Blocks()
	bs[0].Name = "Mutated"
	if got := tbl.Classify('A'); got.Name != "Basic Latin" {
		t.Errorf("table mutated through Blocks(): got %q", got.Name)
	}
}

func TestNewTableRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		reason string
	}{
		{"empty name", []Block{{Start: 0, End: 1}}, "empty name"},
		{"inverted", []Block{{Name: "A", Start: 5, End: 1}}, "after end"},
		{"negative", []Block{{Name: "A", Start: -2, End: 1}}, "outside"},
		{"too large", []Block{{Name: "A", Start: 0, End: unicode.MaxRune + 1}}, "outside"},
		{"duplicate", []Block{{Name: "A", Start: 0, End: 1}, {Name: "A", Start: 2, End: 3}}, "duplicate"},
		{"overlap", []Block{{Name: "A", Start: 0, End: 10}, {Name: "B", Start: 10, End: 20}}, "overlaps"},
		{"unsorted", []Block{{Name: "A", Start: 10, End: 20}, {Name: "B", Start: 0, End: 5}}, "not sorted"},
		{"reserved", []Block{{Name: UnknownName, Start: 0, End: 1}}, "reserved"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.blocks)
			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("NewTable() error = %v, want *RangeError", err)
			}
			if !strings.Contains(rerr.Reason, tt.reason) {
				t.Errorf("reason = %q, want it to contain %q", rerr.Reason, tt.reason)
			}
		})
	}
}

func TestMustTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTable() did not panic on overlapping ranges")
		}
	}()
	MustTable([]Block{{Name: "A", Start: 0, End: 10}, {Name: "B", Start: 5, End: 20}})
}

func TestCustomTable(t *testing.T) {
	tbl, err := NewTable([]Block{
		{Name: "Low", Start: 0x00, End: 0x0F},
		{Name: "High", Start: 0x20, End: 0x2F},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.Classify(0x05); got.Name != "Low" {
		t.Errorf("Classify(0x05) = %q, want Low", got.Name)
	}
	if got := tbl.Classify(0x15); !got.IsUnknown() {
		t.Errorf("Classify(0x15) = %q, want Unknown (gap)", got.Name)
	}
	if got := tbl.Classify(0x2F); got.Name != "High" {
		t.Errorf("Classify(0x2F) = %q, want High", got.Name)
	}
	if got := tbl.Classify(0x30); !got.IsUnknown() {
		t.Errorf("Classify(0x30) = %q, want Unknown (past end)", got.Name)
	}
}

func TestLookupAndFilter(t *testing.T) {
	tbl := Default()
	b, ok := tbl.Lookup("Cyrillic")
	if !ok {
		t.Fatal("Lookup(Cyrillic) not found")
	}
	if b.Start != 0x0400 || b.End != 0x04FF {
		t.Errorf("Cyrillic range = %s, want U+0400..U+04FF", b.Range())
	}
	if _, ok := tbl.Lookup("Klingon"); ok {
		t.Error("Lookup(Klingon) should fail")
	}

	got := tbl.Filter("cyrillic")
	if len(got) != 6 {
		names := make([]string, len(got))
		for i, b := range got {
			names[i] = b.Name
		}
		t.Errorf("Filter(cyrillic) = %v, want 6 Cyrillic blocks", names)
	}
	if len(tbl.Filter("")) != tbl.Len() {
		t.Error("Filter(\"\") should return every block")
	}
}

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestColorsAreDeterministic(t *testing.T) {
	for _, b := range Default().Blocks() {
		if !hexColor.MatchString(b.Color) {
			t.Fatalf("block %q color %q is not #rrggbb", b.Name, b.Color)
		}
		if again := ColorFor(b.Name); again != b.Color {
			t.Fatalf("ColorFor(%q) = %q, table has %q", b.Name, again, b.Color)
		}
	}
	if !hexColor.MatchString(Unknown.Color) {
		t.Errorf("Unknown color %q is not #rrggbb", Unknown.Color)
	}
}

func TestReferenceFor(t *testing.T) {
	got := ReferenceFor("Basic Latin")
	want := "https://en.wikipedia.org/wiki/Basic_Latin_(Unicode_block)"
	if got != want {
		t.Errorf("ReferenceFor() = %q, want %q", got, want)
	}
	if b := Classify('A'); b.Reference != want {
		t.Errorf("Basic Latin reference = %q, want %q", b.Reference, want)
	}
}

func TestBlockHelpers(t *testing.T) {
	b := Classify('A')
	if b.Size() != 128 {
		t.Errorf("Basic Latin size = %d, want 128", b.Size())
	}
	if b.Range() != "U+0000..U+007F" {
		t.Errorf("Range() = %q", b.Range())
	}
	if Unknown.Size() != 0 || Unknown.Range() != "-" {
		t.Errorf("Unknown size/range = %d/%q", Unknown.Size(), Unknown.Range())
	}
	if Unknown.Contains(0) {
		t.Error("Unknown should contain no code point")
	}
	copyOf := Block{Name: b.Name}
	if !b.Equal(copyOf) {
		t.Error("blocks with the same name must be equal")
	}
	if CodePoint(0x1F600) != "U+1F600" {
		t.Errorf("CodePoint(0x1F600) = %q", CodePoint(0x1F600))
	}
}
