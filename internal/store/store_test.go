package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sample(id, body string, blocks ...SampleBlock) *Sample {
	chars := 0
	for _, b := range blocks {
		chars += b.CharCount
	}
	return &Sample{
		ID:         id,
		Body:       body,
		ShareToken: "tok-" + id,
		CharCount:  chars,
		BlockCount: len(blocks),
		Blocks:     blocks,
	}
}

func TestMigrateAppliesOnFreshDB(t *testing.T) {
	db := testDB(t)

	// testDB already ran Migrate, so a second run must be a no-op.
	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 2 {
		t.Errorf("version = %d, want 2 (samples + sample_blocks)", result.Version)
	}
	if result.Dirty {
		t.Error("migration left the database dirty")
	}
}

func TestUpsertAndGetSample(t *testing.T) {
	db := testDB(t)

	in := sample("s1", "Aб\n",
		SampleBlock{BlockName: "Basic Latin", CharCount: 2, FirstIndex: 0},
		SampleBlock{BlockName: "Cyrillic", CharCount: 1, FirstIndex: 1},
	)
	in.SubstitutedCount = 1
	created, err := db.UpsertSample(in)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("first UpsertSample() should report created")
	}

	got, err := db.GetSample("s1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("sample not stored")
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("sample mismatch (-stored +loaded):\n%s", diff)
	}
}

func TestGetSampleMissing(t *testing.T) {
	db := testDB(t)
	got, err := db.GetSample("nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("GetSample(nope) = %+v, want nil", got)
	}
}

func TestUpsertSampleIdempotent(t *testing.T) {
	db := testDB(t)

	first := sample("s1", "abc", SampleBlock{BlockName: "Basic Latin", CharCount: 3})
	if _, err := db.UpsertSample(first); err != nil {
		t.Fatal(err)
	}
	createdAt := first.CreatedAt

	second := sample("s1", "аб", SampleBlock{BlockName: "Cyrillic", CharCount: 2})
	created, err := db.UpsertSample(second)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("second UpsertSample() should report an update")
	}

	n, err := db.SampleCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("SampleCount() = %d, want 1", n)
	}

	got, err := db.GetSample("s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Body != "аб" || got.CreatedAt != createdAt {
		t.Errorf("got body=%q created_at=%d, want аб / %d", got.Body, got.CreatedAt, createdAt)
	}
	if len(got.Blocks) != 1 || got.Blocks[0].BlockName != "Cyrillic" {
		t.Errorf("blocks were not replaced: %+v", got.Blocks)
	}
}

func TestListSamples(t *testing.T) {
	db := testDB(t)
	for _, id := range []string{"a", "b", "c"} {
		if _, err := db.UpsertSample(sample(id, "text "+id)); err != nil {
			t.Fatal(err)
		}
	}

	all, err := db.ListSamples(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d samples, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].UpdatedAt > all[i-1].UpdatedAt {
			t.Errorf("samples not ordered by updated_at desc: %+v", all)
		}
	}

	page, err := db.ListSamples(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 1 || page[0].ID != all[2].ID {
		t.Errorf("second page = %+v, want [%s]", page, all[2].ID)
	}
}

func TestDeleteSampleCascades(t *testing.T) {
	db := testDB(t)
	if _, err := db.UpsertSample(sample("s1", "Aб",
		SampleBlock{BlockName: "Basic Latin", CharCount: 1},
		SampleBlock{BlockName: "Cyrillic", CharCount: 1, FirstIndex: 1},
	)); err != nil {
		t.Fatal(err)
	}

	deleted, err := db.DeleteSample("s1")
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Error("DeleteSample() should report the sample existed")
	}

	var blocks int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sample_blocks`).Scan(&blocks); err != nil {
		t.Fatal(err)
	}
	if blocks != 0 {
		t.Errorf("%d sample_blocks rows left after delete, want 0", blocks)
	}

	deleted, err = db.DeleteSample("s1")
	if err != nil {
		t.Fatal(err)
	}
	if deleted {
		t.Error("deleting a missing sample should report false")
	}
}

func TestSearchSamples(t *testing.T) {
	db := testDB(t)
	for _, s := range []*Sample{
		sample("latin", "hello world", SampleBlock{BlockName: "Basic Latin", CharCount: 11}),
		sample("mixed", "Привіт, world!",
			SampleBlock{BlockName: "Cyrillic", CharCount: 6},
			SampleBlock{BlockName: "Basic Latin", CharCount: 8, FirstIndex: 6}),
		sample("zwsp", "a\u200bb", SampleBlock{BlockName: "Basic Latin", CharCount: 2}, SampleBlock{BlockName: "General Punctuation", CharCount: 1, FirstIndex: 1}),
	} {
		if _, err := db.UpsertSample(s); err != nil {
			t.Fatal(err)
		}
	}

	ids := func(rs []SearchResult) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Sample.ID)
		}
		return out
	}

	results, err := db.SearchSamples("world", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("search world = %v, want latin and mixed", ids(results))
	}
	for _, r := range results {
		if !strings.Contains(r.Snippet, "<<world>>") {
			t.Errorf("snippet %q does not mark the match", r.Snippet)
		}
	}

	results, err = db.SearchSamples("world", "Cyrillic", 10)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"mixed"}, ids(results)); diff != "" {
		t.Errorf("search world in Cyrillic (-want +got):\n%s", diff)
	}

	results, err = db.SearchSamples("\u200b", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"zwsp"}, ids(results)); diff != "" {
		t.Errorf("search zero width space (-want +got):\n%s", diff)
	}

	results, err = db.SearchSamples("WORLD", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("search is exact, got %v for WORLD", ids(results))
	}

	results, err = db.SearchSamples("", "General Punctuation", 10)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"zwsp"}, ids(results)); diff != "" {
		t.Errorf("search by block only (-want +got):\n%s", diff)
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		body, query, want string
	}{
		{"hello world", "world", "hello <<world>>"},
		{"abcdefghijklmnopqrstuvwxyz", "z", "...jklmnopqrstuvwxy<<z>>"},
		{"xabcdefghijklmnopqrstuvwxyz", "x", "<<x>>abcdefghijklmnop..."},
		{"short", "", "short"},
		{"no match here", "zzz", "no match here"},
	}
	for _, tt := range tests {
		if got := snippet(tt.body, tt.query); got != tt.want {
			t.Errorf("snippet(%q, %q) = %q, want %q", tt.body, tt.query, got, tt.want)
		}
	}
}

func TestBlockStats(t *testing.T) {
	db := testDB(t)
	for _, s := range []*Sample{
		sample("a", "ab", SampleBlock{BlockName: "Basic Latin", CharCount: 2}),
		sample("b", "Aб", SampleBlock{BlockName: "Basic Latin", CharCount: 1}, SampleBlock{BlockName: "Cyrillic", CharCount: 1, FirstIndex: 1}),
		sample("c", "ббб", SampleBlock{BlockName: "Cyrillic", CharCount: 3}),
	} {
		if _, err := db.UpsertSample(s); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := db.BlockStats(10)
	if err != nil {
		t.Fatal(err)
	}
	want := []BlockStat{
		{BlockName: "Cyrillic", Samples: 2, Chars: 4},
		{BlockName: "Basic Latin", Samples: 2, Chars: 3},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("BlockStats mismatch (-want +got):\n%s", diff)
	}

	top, err := db.BlockStats(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].BlockName != "Cyrillic" {
		t.Errorf("BlockStats(1) = %+v", top)
	}
}
