// Package report writes extraction results for people and tools: JSON for
// scripts, markdown for documents, and a table for terminals.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-brandkit"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatTable    Format = "table"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats in help order.
func Formats() []Format {
	return []Format{FormatJSON, FormatMarkdown, FormatTable}
}

// ParseFormat accepts a format name case-insensitively; "md" is an alias
// for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatMarkdown, FormatTable:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q (use json, markdown, or table)", ErrUnknownFormat, s)
	}
}

// Extraction is a style extraction together with the source it came from.
type Extraction struct {
	Source string
	Result brandkit.ExtractionResult
}

// Writer renders an Extraction.
type Writer interface {
	WriteExtraction(e Extraction) error
}

// New returns the Writer for format.
func New(format Format, out io.Writer) (Writer, error) {
	switch format {
	case FormatJSON:
		return NewJSONWriter(out), nil
	case FormatMarkdown:
		return NewMarkdownWriter(out), nil
	case FormatTable:
		return NewTableWriter(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
