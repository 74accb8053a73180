package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// FragmentRenderer turns markdown into an HTML fragment.
type FragmentRenderer interface {
	Fragment(ctx context.Context, markdown string) (string, error)
}

// GoldmarkRenderer renders fragments with goldmark (pure Go).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM and inline-styled
// syntax highlighting, since fragments carry no stylesheet of their own.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(chromahtml.WithClasses(false)),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			// WithUnsafe is not set: raw HTML is replaced by a comment.
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Fragment converts markdown to HTML without a document wrapper.
// Goldmark has no context support, so conversion runs in a goroutine and the
// call returns early on cancellation.
func (r *GoldmarkRenderer) Fragment(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(normalizeLineEndings(markdown)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %w", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: strings.TrimSpace(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// Compile-time interface check.
var _ FragmentRenderer = (*GoldmarkRenderer)(nil)
