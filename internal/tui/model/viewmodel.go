package model

import (
	"context"
	"sync"

	"github.com/matheus3301/chardetect/internal/blocks"
	"github.com/matheus3301/chardetect/internal/detect"
	"github.com/matheus3301/chardetect/internal/share"
	"github.com/matheus3301/chardetect/internal/tui/client"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// HistoryPageSize is the number of samples loaded for the history page.
const HistoryPageSize = 200

// ViewModel caches daemon state for the views. Loaders run on background
// goroutines; getters return snapshots for the UI goroutine.
type ViewModel struct {
	mu sync.RWMutex

	client    *client.Client
	status    *chardetv1.GetStatusResponse
	text      string
	result    *chardetv1.ClassifyResponse
	sampleID  string
	samples   []*chardetv1.Sample
	total     int32
	catalog   []*chardetv1.Block
	highlight detect.Highlight
}

// NewViewModel creates a new view model connected to the daemon client.
func NewViewModel(c *client.Client) *ViewModel {
	return &ViewModel{client: c}
}

// LoadStatus fetches the daemon status.
func (vm *ViewModel) LoadStatus(ctx context.Context) error {
	resp, err := vm.client.Detector.GetStatus(ctx, &chardetv1.GetStatusRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.status = resp
	vm.mu.Unlock()
	return nil
}

// Classify analyzes text and makes it the current analysis. A highlight
// on a block that no longer occurs in the text is cleared.
func (vm *ViewModel) Classify(ctx context.Context, text string) error {
	resp, err := vm.client.Detector.Classify(ctx, &chardetv1.ClassifyRequest{Text: text})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.text = text
	vm.result = resp
	if name, ok := vm.highlight.Current(); ok && summaryFor(resp, name) == nil {
		vm.highlight.Clear()
	}
	return nil
}

// Save stores the current text under the loaded sample's id, or a new one.
func (vm *ViewModel) Save(ctx context.Context) (*chardetv1.Sample, bool, error) {
	vm.mu.RLock()
	req := &chardetv1.SaveSampleRequest{ClientSampleId: vm.sampleID, Text: vm.text}
	vm.mu.RUnlock()

	resp, err := vm.client.History.SaveSample(ctx, req)
	if err != nil {
		return nil, false, err
	}
	vm.mu.Lock()
	if vm.text == resp.Sample.Body {
		vm.sampleID = resp.Sample.Id
	}
	vm.mu.Unlock()
	return resp.Sample, resp.Created, nil
}

// LoadSamples fetches the most recent samples.
func (vm *ViewModel) LoadSamples(ctx context.Context) error {
	resp, err := vm.client.History.ListSamples(ctx, &chardetv1.ListSamplesRequest{Limit: HistoryPageSize})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.samples = resp.Samples
	vm.total = resp.Total
	vm.mu.Unlock()
	return nil
}

// OpenSample fetches a sample and returns its text. The sample becomes the
// save target until the text is replaced by something else.
func (vm *ViewModel) OpenSample(ctx context.Context, id string) (string, error) {
	resp, err := vm.client.History.GetSample(ctx, &chardetv1.GetSampleRequest{Id: id})
	if err != nil {
		return "", err
	}
	vm.mu.Lock()
	vm.sampleID = resp.Sample.Id
	vm.mu.Unlock()
	return resp.Sample.Body, nil
}

// DeleteSample removes a sample from the history.
func (vm *ViewModel) DeleteSample(ctx context.Context, id string) error {
	if _, err := vm.client.History.DeleteSample(ctx, &chardetv1.DeleteSampleRequest{Id: id}); err != nil {
		return err
	}
	vm.mu.Lock()
	if vm.sampleID == id {
		vm.sampleID = ""
	}
	vm.mu.Unlock()
	return nil
}

// Search finds saved samples containing query, optionally limited to
// samples with characters in block.
func (vm *ViewModel) Search(ctx context.Context, query, block string) ([]*chardetv1.SearchResult, error) {
	resp, err := vm.client.History.SearchSamples(ctx, &chardetv1.SearchSamplesRequest{
		Query: query,
		Block: block,
		Limit: 100,
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// LoadCatalog fetches the blocks whose name contains query.
func (vm *ViewModel) LoadCatalog(ctx context.Context, query string) error {
	resp, err := vm.client.Detector.ListBlocks(ctx, &chardetv1.ListBlocksRequest{Query: query})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.catalog = resp.Blocks
	vm.mu.Unlock()
	return nil
}

// Detach forgets the loaded sample so that the next save creates a new one.
func (vm *ViewModel) Detach() {
	vm.mu.Lock()
	vm.sampleID = ""
	vm.mu.Unlock()
}

// ToggleHighlight highlights the named block or clears it when it is
// already highlighted. It reports whether the block is highlighted.
func (vm *ViewModel) ToggleHighlight(name string) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.highlight.Toggle(blockNamed(name))
}

// ClearHighlight removes the highlight.
func (vm *ViewModel) ClearHighlight() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.highlight.Clear()
}

// Highlighted returns the highlighted block name.
func (vm *ViewModel) Highlighted() (string, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.highlight.Current()
}

// Active reports whether cells of the named block are drawn at full
// strength.
func (vm *ViewModel) Active(name string) bool {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.highlight.Active(blockNamed(name))
}

// ShareLink builds the share link of the current text.
func (vm *ViewModel) ShareLink(base string) (string, error) {
	return share.Link(base, vm.Text())
}

// Text returns the text of the current analysis.
func (vm *ViewModel) Text() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.text
}

// SampleID returns the id the current text is saved under, if any.
func (vm *ViewModel) SampleID() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.sampleID
}

// Result returns the current analysis.
func (vm *ViewModel) Result() *chardetv1.ClassifyResponse {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.result
}

// Summary returns the current analysis' summary for the named block.
func (vm *ViewModel) Summary(name string) *chardetv1.BlockSummary {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return summaryFor(vm.result, name)
}

// Status returns the last fetched daemon status.
func (vm *ViewModel) Status() *chardetv1.GetStatusResponse {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.status
}

// Samples returns the last fetched samples and the total count.
func (vm *ViewModel) Samples() ([]*chardetv1.Sample, int32) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.samples, vm.total
}

// Catalog returns the last fetched block catalog.
func (vm *ViewModel) Catalog() []*chardetv1.Block {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.catalog
}

func summaryFor(resp *chardetv1.ClassifyResponse, name string) *chardetv1.BlockSummary {
	if resp == nil {
		return nil
	}
	for _, s := range resp.Blocks {
		if s.Block.Name == name {
			return s
		}
	}
	return nil
}

func blockNamed(name string) blocks.Block {
	if b, ok := blocks.Default().Lookup(name); ok {
		return b
	}
	return blocks.Block{Name: name}
}
