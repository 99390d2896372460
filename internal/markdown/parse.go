// Package markdown converts markdown bullet lists into raw analysis input.
//
// Nested lists become children. When the document has headings followed by
// lists, each heading starts a section. The output is the same untyped shape
// a JSON client would send, so it goes through the regular input validator.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// UntitledSection names the section that collects lists appearing before
// the first heading of a sectioned document.
const UntitledSection = "Overview"

type section struct {
	title string
	items []any
}

// Parse reads src and returns {"items": [...]} for a plain list or
// {"sections": [...]} when lists sit under headings. A document without any
// list yields an empty items array, which the validator rejects.
func Parse(src []byte) map[string]any {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		sections []*section
		current  = &section{}
		headings int
	)
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			headings++
			if len(current.items) > 0 || current.title != "" {
				sections = append(sections, current)
			}
			current = &section{title: inlineText(node, src)}
		case *ast.List:
			current.items = append(current.items, listItems(node, src)...)
		}
	}
	if len(current.items) > 0 || current.title != "" {
		sections = append(sections, current)
	}

	if headings == 0 {
		items := []any{}
		for _, s := range sections {
			items = append(items, s.items...)
		}
		return map[string]any{"items": items}
	}

	out := make([]any, 0, len(sections))
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		title := s.title
		if title == "" {
			title = UntitledSection
		}
		out = append(out, map[string]any{"title": title, "items": s.items})
	}
	if len(out) == 1 {
		return map[string]any{"items": out[0].(map[string]any)["items"]}
	}
	return map[string]any{"sections": out}
}

// listItems converts every item of list, recursing into nested lists.
func listItems(list *ast.List, src []byte) []any {
	var items []any
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var (
			parts    []string
			children []any
		)
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch block := c.(type) {
			case *ast.List:
				children = append(children, listItems(block, src)...)
			case *ast.Paragraph, *ast.TextBlock:
				if t := inlineText(block, src); t != "" {
					parts = append(parts, t)
				}
			}
		}

		item := map[string]any{"text": strings.Join(parts, " ")}
		if len(children) > 0 {
			item["children"] = children
		}
		items = append(items, item)
	}
	return items
}

// inlineText flattens the inline content of n, dropping emphasis and link
// markup but keeping the words.
func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	writeInline(&sb, n, src)
	return strings.TrimSpace(sb.String())
}

func writeInline(sb *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.URL(src))
		default:
			writeInline(sb, c, src)
		}
	}
}
