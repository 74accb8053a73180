package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TableWriter prints results as rounded terminal tables.
type TableWriter struct {
	out io.Writer
}

// NewTableWriter creates a TableWriter.
func NewTableWriter(out io.Writer) *TableWriter {
	return &TableWriter{out: out}
}

// WriteExtraction prints one table for colors and one for fonts.
func (w *TableWriter) WriteExtraction(e Extraction) error {
	colors := newTable("Colors", table.Row{"#", "Hex", "Count"})
	for i, c := range e.Result.Colors {
		colors.AppendRow(table.Row{i + 1, c.Hex, c.Count})
	}
	colors.AppendFooter(table.Row{"", "Distinct", len(e.Result.Colors)})

	fonts := newTable("Fonts", table.Row{"#", "Family", "Count"})
	for i, f := range e.Result.Fonts {
		fonts.AppendRow(table.Row{i + 1, f.Family, f.Count})
	}
	fonts.AppendFooter(table.Row{"", "Distinct", len(e.Result.Fonts)})

	if e.Source != "" {
		if _, err := fmt.Fprintf(w.out, "Source: %s\n", e.Source); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w.out, "%s\n%s\n", colors.Render(), fonts.Render())
	return err
}

func newTable(title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(header)
	t.SetStyle(table.StyleRounded)
	return t
}

// Compile-time interface check.
var _ Writer = (*TableWriter)(nil)
