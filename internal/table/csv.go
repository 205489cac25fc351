package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV parses RFC 4180 CSV: comma-separated fields, newline-separated rows,
// quoted fields may contain commas and newlines, and "" inside quotes is a literal quote.
// The first record is the header. Rows may have fewer or more fields than the header.
func ParseCSV(body []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, utf8BOM)))
	r.FieldsPerRecord = -1
	r.ReuseRecord = false

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty csv")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if isBlank(rec) {
			continue
		}
		rows = append(rows, rec)
	}

	return New(header, rows), nil
}

// ParseCSVLine parses a single CSV record
func ParseCSVLine(line string) ([]string, error) {
	r := csv.NewReader(bytes.NewReader([]byte(line)))
	r.FieldsPerRecord = -1
	rec, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv line: %w", err)
	}
	return rec, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if f != "" {
			return false
		}
	}
	return true
}
