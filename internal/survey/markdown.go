package survey

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parseMarkdownTable extracts the first GFM table from the document and
// returns each body row keyed by header cell text. Cells missing from a row
// come back as empty strings, matching how a sparse survey export looks.
func parseMarkdownTable(source []byte) (headers []string, rows []map[string]string) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	var table *east.Table
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*east.Table); ok && table == nil {
			table = t
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if table == nil {
		return nil, nil
	}

	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, cellText(cell, source))
		}
		if _, isHeader := row.(*east.TableHeader); isHeader {
			headers = cells
			continue
		}
		if headers == nil {
			continue
		}
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				m[h] = cells[i]
			} else {
				m[h] = ""
			}
		}
		rows = append(rows, m)
	}
	return headers, rows
}

func cellText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
