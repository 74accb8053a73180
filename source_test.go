package brandkit

// Notes:
// - HTTP behavior is exercised against httptest servers; no test reaches the
//   network.
// - A path that does not exist resolves to literal content, so it is asserted
//   as SourceLiteral rather than an error.

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestHTTPFetcher_Fetch - Remote documents
// ---------------------------------------------------------------------------

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		want     string
		wantErr  bool
		errMatch string
	}{
		{
			name: "200 returns body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("body { color: #abc; }"))
			},
			want: "body { color: #abc; }",
		},
		{
			name: "404 is an error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "missing", http.StatusNotFound)
			},
			wantErr:  true,
			errMatch: "404",
		},
		{
			name: "invalid UTF-8 is an error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte{0xff, 0xfe, 0xfd})
			},
			wantErr:  true,
			errMatch: "UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			got, err := NewHTTPFetcher().Fetch(context.Background(), srv.URL)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Fetch() error = nil, want error")
				}
				if !strings.Contains(err.Error(), tt.errMatch) {
					t.Errorf("Fetch() error = %v, want it to mention %q", err, tt.errMatch)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Fetch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPFetcher_Options(t *testing.T) {
	t.Parallel()

	t.Run("user agent is sent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		if _, err := NewHTTPFetcher(WithUserAgent("brandkit-test")).Fetch(context.Background(), srv.URL); err != nil {
			t.Fatalf("Fetch() unexpected error: %v", err)
		}
		if gotUA != "brandkit-test" {
			t.Errorf("User-Agent = %q, want %q", gotUA, "brandkit-test")
		}
	})

	t.Run("timeout aborts slow server", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		_, err := NewHTTPFetcher(WithFetchTimeout(50*time.Millisecond)).Fetch(context.Background(), srv.URL)
		if err == nil {
			t.Error("Fetch() error = nil, want timeout error")
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveSource - URL, file, literal priority
// ---------------------------------------------------------------------------

// stubFetcher returns a fixed body or error.
type stubFetcher struct {
	body string
	err  error
	got  string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	s.got = url
	return s.body, s.err
}

func TestResolveSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := filepath.Join(dir, "site.css")
	if err := os.WriteFile(cssPath, []byte("h1 { color: #f00; }"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("URL is fetched", func(t *testing.T) {
		t.Parallel()

		f := &stubFetcher{body: "<html></html>"}
		got, err := ResolveSource(context.Background(), "https://example.com", f)
		if err != nil {
			t.Fatalf("ResolveSource() unexpected error: %v", err)
		}
		if got.Kind != SourceURL || got.Text != "<html></html>" {
			t.Errorf("ResolveSource() = %+v, want URL content", got)
		}
		if f.got != "https://example.com" {
			t.Errorf("fetcher called with %q", f.got)
		}
	})

	t.Run("fetch failure wraps ErrFetch", func(t *testing.T) {
		t.Parallel()

		f := &stubFetcher{err: errors.New("connection refused")}
		_, err := ResolveSource(context.Background(), "http://localhost:1", f)
		if !errors.Is(err, ErrFetch) {
			t.Errorf("ResolveSource() error = %v, want ErrFetch", err)
		}
	})

	t.Run("existing file is read", func(t *testing.T) {
		t.Parallel()

		got, err := ResolveSource(context.Background(), cssPath, nil)
		if err != nil {
			t.Fatalf("ResolveSource() unexpected error: %v", err)
		}
		if got.Kind != SourceFile || got.Text != "h1 { color: #f00; }" {
			t.Errorf("ResolveSource() = %+v, want file content", got)
		}
	})

	t.Run("missing path is literal", func(t *testing.T) {
		t.Parallel()

		src := filepath.Join(dir, "missing.css")
		got, err := ResolveSource(context.Background(), src, nil)
		if err != nil {
			t.Fatalf("ResolveSource() unexpected error: %v", err)
		}
		if got.Kind != SourceLiteral || got.Text != src {
			t.Errorf("ResolveSource() = %+v, want literal", got)
		}
	})

	t.Run("literal markup passes through", func(t *testing.T) {
		t.Parallel()

		src := "p { color: #123456; }"
		got, err := ResolveSource(context.Background(), src, nil)
		if err != nil {
			t.Fatalf("ResolveSource() unexpected error: %v", err)
		}
		if got.Text != src {
			t.Errorf("ResolveSource().Text = %q, want %q", got.Text, src)
		}
	})

	t.Run("directory wraps ErrFetch", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveSource(context.Background(), dir, nil)
		if !errors.Is(err, ErrFetch) {
			t.Errorf("ResolveSource() error = %v, want ErrFetch", err)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveSource(context.Background(), "", nil)
		if !errors.Is(err, ErrEmptySource) {
			t.Errorf("ResolveSource() error = %v, want ErrEmptySource", err)
		}
	})
}
