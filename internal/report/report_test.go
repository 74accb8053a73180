package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-brandkit"
)

func sampleExtraction() Extraction {
	return Extraction{
		Source: "https://example.com",
		Result: brandkit.ExtractionResult{
			Colors: []brandkit.ColorObservation{{Hex: "#FF0000", Count: 2}, {Hex: "#333333", Count: 1}},
			Fonts:  []brandkit.FontObservation{{Family: "Roboto", Count: 1}},
		},
	}
}

// ---------------------------------------------------------------------------
// TestParseFormat - Format names
// ---------------------------------------------------------------------------

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{" table ", FormatTable, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		if _, err := New(f, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%q) error = %v", f, err)
		}
	}
	if _, err := New("xml", &bytes.Buffer{}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("New(xml) error = %v, want ErrUnknownFormat", err)
	}
}

// ---------------------------------------------------------------------------
// TestJSONWriter - Exact JSON contract
// ---------------------------------------------------------------------------

func TestJSONWriter_WriteExtraction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).WriteExtraction(sampleExtraction()); err != nil {
		t.Fatalf("WriteExtraction() error = %v", err)
	}

	want := `{
  "colors": [
    {
      "hex": "#FF0000",
      "count": 2
    },
    {
      "hex": "#333333",
      "count": 1
    }
  ],
  "fonts": [
    {
      "family": "Roboto",
      "count": 1
    }
  ]
}
`
	if buf.String() != want {
		t.Errorf("WriteExtraction() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestJSONWriter_EmptyResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).WriteExtraction(Extraction{Result: brandkit.ExtractStyles("")}); err != nil {
		t.Fatalf("WriteExtraction() error = %v", err)
	}
	want := "{\n  \"colors\": [],\n  \"fonts\": []\n}\n"
	if buf.String() != want {
		t.Errorf("WriteExtraction() = %q, want %q", buf.String(), want)
	}
}

func TestJSONWriter_ErrorBody(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).WriteValue(ErrorBody{Error: "fetch failed: <timeout>"}); err != nil {
		t.Fatalf("WriteValue() error = %v", err)
	}
	want := "{\n  \"error\": \"fetch failed: <timeout>\"\n}\n"
	if buf.String() != want {
		t.Errorf("WriteValue() = %q, want %q", buf.String(), want)
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownWriter - Document structure
// ---------------------------------------------------------------------------

func TestMarkdownWriter_WriteExtraction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewMarkdownWriter(&buf).WriteExtraction(sampleExtraction()); err != nil {
		t.Fatalf("WriteExtraction() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Style Extraction",
		"Source: `https://example.com`",
		"## Colors",
		"`#FF0000`",
		"```mermaid",
		"Color Distribution",
		"## Fonts",
		"Roboto",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownWriter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewMarkdownWriter(&buf).WriteExtraction(Extraction{}); err != nil {
		t.Fatalf("WriteExtraction() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No hex colors found.") || !strings.Contains(out, "No font-family declarations found.") {
		t.Errorf("empty markdown output missing placeholders:\n%s", out)
	}
	if strings.Contains(out, "mermaid") {
		t.Error("empty result should not draw a chart")
	}
}

// ---------------------------------------------------------------------------
// TestTableWriter - Terminal tables
// ---------------------------------------------------------------------------

func TestTableWriter_WriteExtraction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewTableWriter(&buf).WriteExtraction(sampleExtraction()); err != nil {
		t.Fatalf("WriteExtraction() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Source: https://example.com", "Colors", "#FF0000", "Fonts", "Roboto", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
