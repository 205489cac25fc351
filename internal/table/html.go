package table

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML parses the first <table> of a document, as served by "publish to web"
// HTML sheets. Row-number <th> cells and the A/B/C column-letter row that sheet
// exports add are dropped; the first remaining row is the header.
func ParseHTML(body []byte) (*Table, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	tbl := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Table
	})
	if tbl == nil {
		return nil, fmt.Errorf("no table in document")
	}

	var records [][]string
	for _, tr := range findAll(tbl, isElement(atom.Tr)) {
		rec := rowCells(tr)
		if len(rec) == 0 || isBlank(rec) || (len(records) == 0 && isColumnLetterRow(rec)) {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table has no rows")
	}

	return New(records[0], records[1:]), nil
}

// rowCells returns the <td> texts of a row, or its <th> texts when it has no <td>
func rowCells(tr *html.Node) []string {
	var tds, ths []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Td:
			tds = append(tds, text(c))
		case atom.Th:
			ths = append(ths, text(c))
		}
	}
	if len(tds) > 0 {
		return tds
	}
	return ths
}

func isColumnLetterRow(rec []string) bool {
	letters := 0
	for _, cell := range rec {
		switch {
		case cell == "":
		case len(cell) <= 2 && strings.ToUpper(cell) == cell && isAlpha(cell):
			letters++
		default:
			return false
		}
	}
	return letters > 0
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isElement(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

// text extracts the whitespace-collapsed text content of a node
func text(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			buf.WriteString(node.Data)
			buf.WriteString(" ")
		}
		if node.Type == html.ElementNode && node.DataAtom == atom.Br {
			buf.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

// findAll finds all nodes matching a predicate
func findAll(n *html.Node, predicate func(*html.Node) bool) []*html.Node {
	var results []*html.Node

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if predicate(node) {
			results = append(results, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return results
}

// findFirst finds the first node matching a predicate
func findFirst(n *html.Node, predicate func(*html.Node) bool) *html.Node {
	var result *html.Node

	var walk func(*html.Node) bool
	walk = func(node *html.Node) bool {
		if predicate(node) {
			result = node
			return true
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	walk(n)
	return result
}
