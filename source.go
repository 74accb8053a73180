package brandkit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/alnah/go-brandkit/internal/fileutil"
)

// SourceKind describes where RawContent came from.
type SourceKind string

// Source kinds, in resolution priority order.
const (
	SourceURL     SourceKind = "url"
	SourceFile    SourceKind = "file"
	SourceLiteral SourceKind = "literal"
)

// RawContent is text obtained from a URL, a file, or the source string itself.
type RawContent struct {
	Kind   SourceKind
	Source string
	Text   string
}

// Fetcher retrieves the body of a remote document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// defaultFetchTimeout bounds a single GET when no timeout is configured.
const defaultFetchTimeout = 30 * time.Second

// HTTPFetcher fetches documents with a plain GET request.
type HTTPFetcher struct {
	client *resty.Client
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*resty.Client)

// WithFetchTimeout sets the request timeout. Zero disables the timeout.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) FetcherOption {
	return func(c *resty.Client) {
		if ua != "" {
			c.SetHeader("User-Agent", ua)
		}
	}
}

// NewHTTPFetcher creates an HTTPFetcher. Requests are never retried.
func NewHTTPFetcher(opts ...FetcherOption) *HTTPFetcher {
	client := resty.New()
	client.SetTimeout(defaultFetchTimeout)
	client.SetRetryCount(0)
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPFetcher{client: client}
}

// Fetch performs a GET request and returns the body as text.
// Non-2xx responses and bodies that are not valid UTF-8 are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("unexpected status %s", res.Status())
	}
	body := res.Body()
	if !utf8.Valid(body) {
		return "", errors.New("response body is not valid UTF-8")
	}
	return string(body), nil
}

// Compile-time interface check.
var _ Fetcher = (*HTTPFetcher)(nil)

// ResolveSource turns a source string into RawContent.
// URLs are fetched, existing files are read, and any other string is
// returned as literal text. Only a URL fetch or a failed read of an existing
// path produces an error, and that error wraps ErrFetch.
func ResolveSource(ctx context.Context, source string, fetcher Fetcher) (RawContent, error) {
	if source == "" {
		return RawContent{}, ErrEmptySource
	}

	if fileutil.IsURL(source) {
		if fetcher == nil {
			fetcher = NewHTTPFetcher()
		}
		text, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return RawContent{}, fmt.Errorf("%w: %s: %w", ErrFetch, source, err)
		}
		return RawContent{Kind: SourceURL, Source: source, Text: text}, nil
	}

	info, err := os.Stat(source)
	if err != nil {
		// Not a path we can see: the source is the content.
		return RawContent{Kind: SourceLiteral, Source: source, Text: source}, nil
	}
	if info.IsDir() {
		return RawContent{}, fmt.Errorf("%w: %s: is a directory", ErrFetch, source)
	}

	content, err := os.ReadFile(source) // #nosec G304 -- user-provided path
	if err != nil {
		return RawContent{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return RawContent{Kind: SourceFile, Source: source, Text: string(content)}, nil
}
