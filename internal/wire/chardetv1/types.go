package chardetv1

// Block is a Unicode block with its display metadata.
type Block struct {
	Name      string `json:"name"`
	Start     int32  `json:"start"`
	End       int32  `json:"end"`
	Range     string `json:"range"`
	Color     string `json:"color"`
	Reference string `json:"reference,omitempty"`
}

// Character is one classified code point.
type Character struct {
	Index       int32  `json:"index"`
	Offset      int32  `json:"offset"`
	Rune        int32  `json:"rune"`
	CodePoint   string `json:"code_point"`
	Name        string `json:"name"`
	Block       string `json:"block"`
	Visual      string `json:"visual"`
	Kind        string `json:"kind"`
	Substituted bool   `json:"substituted,omitempty"`
}

// BlockSummary counts the characters of a text in one block.
type BlockSummary struct {
	Block *Block `json:"block"`
	Count int32  `json:"count"`
	First int32  `json:"first"`
}

type ClassifyRequest struct {
	Text string `json:"text"`
	// Save stores the analysis in the history under SampleId (or a new id).
	Save     bool   `json:"save,omitempty"`
	SampleId string `json:"sample_id,omitempty"`
}

type ClassifyResponse struct {
	Characters    []*Character    `json:"characters"`
	Blocks        []*BlockSummary `json:"blocks"`
	Substitutions int32           `json:"substitutions"`
	ShareToken    string          `json:"share_token"`
	SampleId      string          `json:"sample_id,omitempty"`
}

type ListBlocksRequest struct {
	Query string `json:"query,omitempty"`
}

type ListBlocksResponse struct {
	Blocks []*Block `json:"blocks"`
}

type GetStatusRequest struct{}

type GetStatusResponse struct {
	Status        string `json:"status"`
	StatusMessage string `json:"status_message,omitempty"`
	UptimeMs      int64  `json:"uptime_ms"`
	Pid           int32  `json:"pid"`
	SampleCount   int32  `json:"sample_count"`
	BlockCount    int32  `json:"block_count"`
	Placeholder   string `json:"placeholder"`
	Watchers      int32  `json:"watchers"`
}

// Sample is a saved text.
type Sample struct {
	Id               string         `json:"id"`
	Body             string         `json:"body"`
	ShareToken       string         `json:"share_token"`
	CharCount        int32          `json:"char_count"`
	BlockCount       int32          `json:"block_count"`
	SubstitutedCount int32          `json:"substituted_count"`
	CreatedAt        int64          `json:"created_at"`
	UpdatedAt        int64          `json:"updated_at"`
	Blocks           []*SampleBlock `json:"blocks,omitempty"`
}

type SampleBlock struct {
	BlockName  string `json:"block_name"`
	CharCount  int32  `json:"char_count"`
	FirstIndex int32  `json:"first_index"`
}

type SaveSampleRequest struct {
	ClientSampleId string `json:"client_sample_id,omitempty"`
	Text           string `json:"text"`
}

type SaveSampleResponse struct {
	Sample  *Sample `json:"sample"`
	Created bool    `json:"created"`
}

type ListSamplesRequest struct {
	Limit  int32 `json:"limit,omitempty"`
	Offset int32 `json:"offset,omitempty"`
}

type ListSamplesResponse struct {
	Samples []*Sample `json:"samples"`
	Total   int32     `json:"total"`
	HasMore bool      `json:"has_more"`
}

type GetSampleRequest struct {
	Id string `json:"id"`
}

type GetSampleResponse struct {
	Sample *Sample `json:"sample"`
}

type SearchSamplesRequest struct {
	Query string `json:"query,omitempty"`
	Block string `json:"block,omitempty"`
	Limit int32  `json:"limit,omitempty"`
}

type SearchResult struct {
	Sample  *Sample `json:"sample"`
	Snippet string  `json:"snippet"`
}

type SearchSamplesResponse struct {
	Results []*SearchResult `json:"results"`
}

type DeleteSampleRequest struct {
	Id string `json:"id"`
}

type DeleteSampleResponse struct {
	Deleted bool `json:"deleted"`
}

type BlockStatsRequest struct {
	Limit int32 `json:"limit,omitempty"`
}

type BlockStat struct {
	BlockName string `json:"block_name"`
	Color     string `json:"color"`
	Samples   int32  `json:"samples"`
	Chars     int32  `json:"chars"`
}

type BlockStatsResponse struct {
	Stats []*BlockStat `json:"stats"`
}

type WatchSamplesRequest struct{}

// SampleEvent reports a change to the saved samples.
type SampleEvent struct {
	EventId    string `json:"event_id"`
	Kind       string `json:"kind"`
	SampleId   string `json:"sample_id"`
	CharCount  int32  `json:"char_count,omitempty"`
	BlockCount int32  `json:"block_count,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}
