package report

import (
	"encoding/json"
	"io"
)

// JSONWriter prints results as 2-space indented JSON.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

// WriteExtraction prints only the result; the source is not part of the
// JSON contract.
func (w *JSONWriter) WriteExtraction(e Extraction) error {
	return w.WriteValue(e.Result)
}

// WriteValue prints any JSON-encodable value. HTML characters are not
// escaped so CSS and markdown snippets stay readable.
func (w *JSONWriter) WriteValue(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ErrorBody is the JSON printed when extraction cannot start.
type ErrorBody struct {
	Error string `json:"error"`
}

// Compile-time interface check.
var _ Writer = (*JSONWriter)(nil)
