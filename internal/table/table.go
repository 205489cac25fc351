// Package table parses remote tabular sources (published CSV and HTML sheets)
// into a header-indexed Table.
package table

import (
	"bytes"
	"fmt"
	"strings"
)

// Table is a parsed sheet: a header row plus data rows. Rows may be ragged.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// New builds a table and indexes its header case-insensitively
func New(header []string, rows [][]string) *Table {
	t := &Table{Header: header, Rows: rows, index: make(map[string]int, len(header))}
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}
	return t
}

// Column returns the index of the first header matching any of names
func (t *Table) Column(names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := t.index[normalizeHeader(n)]; ok {
			return i, true
		}
	}
	return -1, false
}

// Cell returns the trimmed cell at row/col; ragged or missing cells report false
func (t *Table) Cell(row []string, col int) (string, bool) {
	if col < 0 || col >= len(row) {
		return "", false
	}
	v := strings.TrimSpace(row[col])
	return v, v != ""
}

// Parse detects the format of body (HTML when it starts with '<') and parses it
func Parse(body []byte) (*Table, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(body, utf8BOM))
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	if trimmed[0] == '<' {
		return ParseHTML(trimmed)
	}
	return ParseCSV(trimmed)
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Join(strings.FieldsFunc(h, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "_")
}
