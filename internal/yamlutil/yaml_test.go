package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-brandkit/internal/yamlutil"
)

type fetchSection struct {
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"userAgent"`
}

type document struct {
	Fetch fetchSection `yaml:"fetch"`
}

// ---------------------------------------------------------------------------
// TestDecode - Strict decoding
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	var got document
	err := yamlutil.Decode([]byte("fetch:\n  timeout: 10s\n  userAgent: brandkit\n"), &got)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := document{Fetch: fetchSection{Timeout: "10s", UserAgent: "brandkit"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		wantMsg string
	}{
		{name: "nil data", data: nil, dest: &document{}, wantErr: yamlutil.ErrNoData},
		{name: "empty data", data: []byte{}, dest: &document{}, wantErr: yamlutil.ErrNoData},
		{name: "nil destination", data: []byte("fetch: {}"), dest: nil, wantErr: yamlutil.ErrNoDestination},
		{
			name:    "too large",
			data:    []byte(strings.Repeat("#", yamlutil.MaxInputSize+1)),
			dest:    &document{},
			wantErr: yamlutil.ErrTooLarge,
		},
		{name: "unknown key", data: []byte("fetch:\n  retries: 3\n"), dest: &document{}, wantMsg: "yamlutil:"},
		{name: "syntax error", data: []byte("fetch: [unclosed"), dest: &document{}, wantMsg: "yamlutil:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Decode(tt.data, tt.dest)
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Decode() error = %q, want to contain %q", err, tt.wantMsg)
			}
		})
	}
}
