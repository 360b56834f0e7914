package store

import (
	"strings"
	"unicode/utf8"
)

const snippetContext = 16

// SearchSamples returns samples whose body contains query as a substring.
// Matching is exact: no case folding or normalization, so a search for one
// character finds exactly the samples containing that code point. When
// blockName is set, only samples with characters in that block match.
func (db *DB) SearchSamples(query, blockName string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 50
	}

	q := `SELECT ` + prefixed("s.", sampleColumns) + ` FROM samples s`
	var where []string
	var args []any
	if blockName != "" {
		q += ` JOIN sample_blocks b ON b.sample_id = s.id AND b.block_name = ?`
		args = append(args, blockName)
	}
	if query != "" {
		where = append(where, `instr(s.body, ?) > 0`)
		args = append(args, query)
	}
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY s.updated_at DESC, s.id LIMIT ?`
	args = append(args, limit)

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []SearchResult
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{Sample: *s, Snippet: snippet(s.Body, query)})
	}
	return results, rows.Err()
}

// snippet returns body around the first match of query, with the match
// wrapped in << >> and elided context marked by "...".
func snippet(body, query string) string {
	i := strings.Index(body, query)
	if query == "" || i < 0 {
		return truncate(body, 2*snippetContext)
	}
	before := body[:i]
	match := body[i : i+len(query)]
	after := body[i+len(query):]

	var sb strings.Builder
	if n := utf8.RuneCountInString(before); n > snippetContext {
		sb.WriteString("...")
		before = string([]rune(before)[n-snippetContext:])
	}
	sb.WriteString(before)
	sb.WriteString("<<")
	sb.WriteString(match)
	sb.WriteString(">>")
	if utf8.RuneCountInString(after) > snippetContext {
		sb.WriteString(string([]rune(after)[:snippetContext]))
		sb.WriteString("...")
	} else {
		sb.WriteString(after)
	}
	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func prefixed(prefix, columns string) string {
	cols := strings.Split(columns, ", ")
	for i, c := range cols {
		cols[i] = prefix + c
	}
	return strings.Join(cols, ", ")
}
