// Package mdsection splits a markdown document into heading-delimited
// sections using the goldmark AST.
//
// A section starts at a heading and runs until the next heading of the same
// or a higher level, so a section's Body includes its subsections.
package mdsection

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Section is one heading and the markdown under it.
type Section struct {
	Level int    // 1 to 6
	Title string // heading text without markup
	Body  string // raw markdown after the heading line
	Items []string
}

// Document is a parsed markdown source.
type Document struct {
	Source   string
	Sections []Section
}

var mdParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// Parse splits source into sections. Text before the first heading belongs
// to no section. Parse never fails: any input yields a Document.
func Parse(source string) Document {
	src := []byte(source)
	root := mdParser.Parse(text.NewReader(src))

	doc := Document{Source: source}
	var open []int // indexes into doc.Sections, outermost first
	var bodyStart []int

	closeFrom := func(depth, end int) {
		for i := len(open) - 1; i >= depth; i-- {
			s := &doc.Sections[open[i]]
			s.Body = strings.TrimSpace(source[bodyStart[i]:end])
		}
		open = open[:depth]
		bodyStart = bodyStart[:depth]
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Lines().Len() == 0 {
				continue // bare "#" carries no title or offset
			}
			lineStart, lineEnd := lineBounds(src, node)
			depth := len(open)
			for depth > 0 && doc.Sections[open[depth-1]].Level >= node.Level {
				depth--
			}
			closeFrom(depth, lineStart)

			doc.Sections = append(doc.Sections, Section{
				Level: node.Level,
				Title: plainText(node, src),
			})
			open = append(open, len(doc.Sections)-1)
			bodyStart = append(bodyStart, lineEnd)

		case *ast.List:
			items := listItems(node, src)
			for _, idx := range open {
				doc.Sections[idx].Items = append(doc.Sections[idx].Items, items...)
			}
		}
	}
	closeFrom(0, len(source))
	return doc
}

// Find returns the first section whose title matches pattern.
func (d Document) Find(pattern *regexp.Regexp) (Section, bool) {
	for _, s := range d.Sections {
		if pattern.MatchString(s.Title) {
			return s, true
		}
	}
	return Section{}, false
}

// FindLevel is Find restricted to headings of one level.
func (d Document) FindLevel(level int, pattern *regexp.Regexp) (Section, bool) {
	for _, s := range d.Sections {
		if s.Level == level && pattern.MatchString(s.Title) {
			return s, true
		}
	}
	return Section{}, false
}

// lineBounds returns the offset where the heading's line starts and the
// offset just past the heading markup, including a setext underline.
func lineBounds(src []byte, h *ast.Heading) (start, end int) {
	first := h.Lines().At(0)
	start = bytes.LastIndexByte(src[:first.Start], '\n') + 1

	end = h.Lines().At(h.Lines().Len() - 1).Stop
	if end > 0 && src[end-1] == '\n' {
		end--
	}
	if i := bytes.IndexByte(src[end:], '\n'); i >= 0 {
		end += i + 1
	} else {
		return start, len(src)
	}
	if bytes.ContainsRune(src[start:first.Start], '#') {
		return start, end
	}
	// Setext headings keep their "===" or "---" underline on the next line.
	next := src[end:]
	if i := bytes.IndexByte(next, '\n'); i >= 0 {
		next = next[:i]
	}
	if underline := bytes.TrimSpace(next); len(underline) > 0 && isUnderline(underline) {
		end += len(next)
	}
	return start, end
}

func isUnderline(line []byte) bool {
	return len(bytes.Trim(line, "=")) == 0 || len(bytes.Trim(line, "-")) == 0
}

// listItems returns the text of each item's own blocks; nested lists are
// left out.
func listItems(list *ast.List, src []byte) []string {
	var items []string
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		var parts []string
		for block := item.FirstChild(); block != nil; block = block.NextSibling() {
			if _, nested := block.(*ast.List); nested {
				continue
			}
			if t := plainText(block, src); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			items = append(items, strings.Join(parts, " "))
		}
	}
	return items
}

// plainText concatenates the text of n's inline descendants.
func plainText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	writeText(&buf, n, src)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func writeText(buf *bytes.Buffer, n ast.Node, src []byte) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(c.Value)
		default:
			writeText(buf, child, src)
		}
	}
}
