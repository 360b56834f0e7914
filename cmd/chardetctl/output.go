package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func printCharacters(w io.Writer, chars []*chardetv1.Character) {
	table := newTable(w, "#", "Char", "Code point", "Block", "Name", "Kind")
	for _, c := range chars {
		table.Append([]string{
			strconv.Itoa(int(c.Index)),
			c.Visual,
			c.CodePoint,
			c.Block,
			c.Name,
			c.Kind,
		})
	}
	table.Render()
}

func printBlockSummaries(w io.Writer, summaries []*chardetv1.BlockSummary) {
	table := newTable(w, "Block", "Range", "Count", "First")
	for _, s := range summaries {
		table.Append([]string{
			s.Block.Name,
			s.Block.Range,
			strconv.Itoa(int(s.Count)),
			strconv.Itoa(int(s.First)),
		})
	}
	table.Render()
}

func printBlocks(w io.Writer, blocks []*chardetv1.Block) {
	table := newTable(w, "Block", "Range", "Color")
	for _, b := range blocks {
		table.Append([]string{b.Name, b.Range, b.Color})
	}
	table.Render()
}

func printSamples(w io.Writer, samples []*chardetv1.Sample) {
	table := newTable(w, "ID", "Updated", "Chars", "Blocks", "Text")
	for _, s := range samples {
		table.Append([]string{
			s.Id,
			formatTime(s.UpdatedAt),
			strconv.Itoa(int(s.CharCount)),
			strconv.Itoa(int(s.BlockCount)),
			preview(s.Body, 40),
		})
	}
	table.Render()
}

func printSearchResults(w io.Writer, results []*chardetv1.SearchResult) {
	table := newTable(w, "ID", "Updated", "Match")
	for _, r := range results {
		table.Append([]string{r.Sample.Id, formatTime(r.Sample.UpdatedAt), preview(r.Snippet, 60)})
	}
	table.Render()
}

func printBlockStats(w io.Writer, stats []*chardetv1.BlockStat) {
	table := newTable(w, "Block", "Samples", "Chars")
	for _, s := range stats {
		table.Append([]string{s.BlockName, strconv.Itoa(int(s.Samples)), strconv.Itoa(int(s.Chars))})
	}
	table.Render()
}

func formatTime(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

// preview shortens s to max runes and makes line breaks and tabs visible
// so that table rows stay on one line.
func preview(s string, max int) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\n':
			out = append(out, '↵')
		case '\t':
			out = append(out, '⇥')
		case '\r':
			continue
		default:
			out = append(out, r)
		}
	}
	if len(out) > max {
		return fmt.Sprintf("%s…", string(out[:max-1]))
	}
	return string(out)
}
