package store

// Sample is a saved text together with its analysis summary.
type Sample struct {
	ID               string
	Body             string
	ShareToken       string
	CharCount        int
	BlockCount       int
	SubstitutedCount int
	CreatedAt        int64 // unix millis
	UpdatedAt        int64
	Blocks           []SampleBlock
}

// SampleBlock is the per-block character count of a sample.
type SampleBlock struct {
	BlockName  string
	CharCount  int
	FirstIndex int
}

// BlockStat aggregates one block across all saved samples.
type BlockStat struct {
	BlockName string
	Samples   int
	Chars     int
}

// SearchResult holds a sample with a snippet around the first match.
type SearchResult struct {
	Sample  Sample
	Snippet string
}
