package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFragment - Markdown to HTML fragments
// ---------------------------------------------------------------------------

func TestGoldmarkRenderer_Fragment(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	tests := []struct {
		name        string
		input       string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "paragraph",
			input:       "Robots that fold laundry.",
			wantContain: []string{"<p>Robots that fold laundry.</p>"},
			wantAbsent:  []string{"<html", "<body"},
		},
		{
			name:        "emphasis",
			input:       "A **bold** claim",
			wantContain: []string{"<strong>bold</strong>"},
		},
		{
			name:        "hard wraps",
			input:       "line one\nline two",
			wantContain: []string{"<br>"},
		},
		{
			name:        "CRLF treated as newline",
			input:       "line one\r\nline two",
			wantContain: []string{"line one<br>"},
		},
		{
			name:        "strikethrough from GFM",
			input:       "~~old~~",
			wantContain: []string{"<del>old</del>"},
		},
		{
			name:        "raw HTML dropped",
			input:       "<script>alert(1)</script>",
			wantAbsent:  []string{"<script>"},
		},
		{
			name:        "code highlighted inline",
			input:       "```go\nfunc main() {}\n```",
			wantContain: []string{"<pre", "style="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Fragment(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Fragment() error = %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("Fragment() = %q, want to contain %q", got, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Fragment() = %q, should not contain %q", got, absent)
				}
			}
		})
	}
}

func TestGoldmarkRenderer_Fragment_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkRenderer().Fragment(ctx, "text")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fragment() error = %v, want context.Canceled", err)
	}
}

func TestGoldmarkRenderer_Fragment_Empty(t *testing.T) {
	t.Parallel()

	got, err := NewGoldmarkRenderer().Fragment(context.Background(), "")
	if err != nil {
		t.Fatalf("Fragment() error = %v", err)
	}
	if got != "" {
		t.Errorf("Fragment(\"\") = %q, want empty", got)
	}
}
