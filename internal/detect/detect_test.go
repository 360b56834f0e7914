package detect

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matheus3301/chardetect/internal/blocks"
	"github.com/matheus3301/chardetect/internal/glyph"
)

func newDetector(t *testing.T, cacheSize int) *Detector {
	t.Helper()
	d, err := New(nil, nil, cacheSize)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestAnalyzeScenario(t *testing.T) {
	d := newDetector(t, DefaultCacheSize)
	a := d.Analyze("Aб\n")

	latin, _ := blocks.Default().Lookup("Basic Latin")
	cyrillic, _ := blocks.Default().Lookup("Cyrillic")

	want := []Character{
		{Index: 0, Offset: 0, Rune: 'A', Block: latin, Visual: "A", Kind: glyph.Printable},
		{Index: 1, Offset: 1, Rune: 'б', Block: cyrillic, Visual: "б", Kind: glyph.Printable},
		{Index: 2, Offset: 3, Rune: '\n', Block: latin, Visual: glyph.DefaultPlaceholder, Kind: glyph.Control},
	}
	if diff := cmp.Diff(want, a.Characters); diff != "" {
		t.Errorf("Characters mismatch (-want +got):\n%s", diff)
	}

	wantBlocks := []BlockSummary{
		{Block: latin, Count: 2, First: 0},
		{Block: cyrillic, Count: 1, First: 1},
	}
	if diff := cmp.Diff(wantBlocks, a.Blocks); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
	if a.Substitutions() != 1 {
		t.Errorf("Substitutions() = %d, want 1", a.Substitutions())
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := newDetector(t, 0).Analyze("")
	if a.Len() != 0 || len(a.Blocks) != 0 {
		t.Errorf("empty text produced %d characters and %d blocks", a.Len(), len(a.Blocks))
	}
}

func TestAnalyzeDefaultText(t *testing.T) {
	a := newDetector(t, 16).Analyze("Привіт!")
	if a.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", a.Len())
	}
	var names []string
	for _, s := range a.Blocks {
		names = append(names, s.Block.Name)
	}
	if diff := cmp.Diff([]string{"Cyrillic", "Basic Latin"}, names); diff != "" {
		t.Errorf("block order mismatch (-want +got):\n%s", diff)
	}
	s, ok := a.Block("Cyrillic")
	if !ok || s.Count != 6 {
		t.Errorf("Cyrillic summary = %+v, %v", s, ok)
	}
	if got := len(a.InBlock("Basic Latin")); got != 1 {
		t.Errorf("InBlock(Basic Latin) = %d characters, want 1", got)
	}
	if _, ok := a.Block("Greek and Coptic"); ok {
		t.Error("Block(Greek and Coptic) should be absent")
	}
}

func TestAnalyzeSplitsCodePointsNotClusters(t *testing.T) {
	// e + combining acute, and a flag made of two regional indicators.
	a := newDetector(t, 16).Analyze("e\u0301\U0001F1FA\U0001F1E6")
	if a.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 code points", a.Len())
	}
	if c := a.Characters[1]; c.Kind != glyph.Mark || c.Visual != glyph.DefaultPlaceholder {
		t.Errorf("combining acute = %+v, want placeholder", c)
	}
}

func TestAnalyzeInvalidUTF8(t *testing.T) {
	a := newDetector(t, 16).Analyze("a\xffb")
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	if c := a.Characters[1]; c.Rune != '�' || c.Block.Name != "Specials" {
		t.Errorf("invalid byte = %+v, want U+FFFD in Specials", c)
	}
}

func TestDescribeCacheParity(t *testing.T) {
	cached := newDetector(t, 8)
	plain := newDetector(t, 0)
	for _, r := range []rune{'A', 'б', '\n', 0x0301, '中', 0x2FE0, 'A', 'б', 0x1F600, 0xE000, 'A'} {
		if diff := cmp.Diff(plain.Describe(r), cached.Describe(r)); diff != "" {
			t.Errorf("Describe(%U) cache mismatch (-plain +cached):\n%s", r, diff)
		}
	}
}

func TestDescribeUnknownBlock(t *testing.T) {
	c := newDetector(t, 0).Describe(0x2FE0)
	if !c.Block.IsUnknown() {
		t.Errorf("U+2FE0 block = %q, want Unknown", c.Block.Name)
	}
	if c.Name() != "<unassigned>" {
		t.Errorf("Name() = %q, want <unassigned>", c.Name())
	}
}

func TestNewRejectsNegativeCache(t *testing.T) {
	if _, err := New(nil, nil, -1); err == nil {
		t.Error("New() with negative cache size should fail")
	}
}

func TestCustomMapper(t *testing.T) {
	m, err := glyph.NewMapper("?")
	if err != nil {
		t.Fatal(err)
	}
	d, err := New(nil, m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c := d.Describe(' '); c.Visual != "?" || !c.Substituted() {
		t.Errorf("Describe(space) = %+v", c)
	}
	if d.Mapper() != m || d.Table() != blocks.Default() {
		t.Error("accessors do not return the configured collaborators")
	}
}

func TestCharacterNames(t *testing.T) {
	d := newDetector(t, 0)
	tests := []struct {
		r    rune
		name string
		cp   string
	}{
		{'A', "LATIN CAPITAL LETTER A", "U+0041"},
		{'б', "CYRILLIC SMALL LETTER BE", "U+0431"},
		{'\n', "<control>", "U+000A"},
		{0x1F600, "GRINNING FACE", "U+1F600"},
	}
	for _, tt := range tests {
		c := d.Describe(tt.r)
		if c.Name() != tt.name {
			t.Errorf("Name(%U) = %q, want %q", tt.r, c.Name(), tt.name)
		}
		if c.CodePoint() != tt.cp {
			t.Errorf("CodePoint(%U) = %q, want %q", tt.r, c.CodePoint(), tt.cp)
		}
	}
}

func TestHighlightToggle(t *testing.T) {
	latin := blocks.Classify('A')
	cyrillic := blocks.Classify('б')

	var h Highlight
	if !h.Active(latin) || !h.Active(cyrillic) {
		t.Fatal("with nothing highlighted every block is active")
	}
	if !h.Toggle(cyrillic) {
		t.Fatal("Toggle(cyrillic) should highlight it")
	}
	if h.Active(latin) || !h.Active(cyrillic) {
		t.Error("only the highlighted block should be active")
	}
	if name, ok := h.Current(); !ok || name != "Cyrillic" {
		t.Errorf("Current() = %q, %v", name, ok)
	}

	// A fresh copy with the same name is the same block.
	if h.Toggle(blocks.Block{Name: "Cyrillic"}) {
		t.Error("toggling the highlighted block again should clear it")
	}
	if _, ok := h.Current(); ok {
		t.Error("highlight should be cleared")
	}

	h.Toggle(latin)
	h.Toggle(cyrillic)
	if name, _ := h.Current(); name != "Cyrillic" {
		t.Errorf("switching highlight: Current() = %q", name)
	}
	h.Clear()
	if !h.Active(latin) {
		t.Error("Clear() should make every block active")
	}
}
