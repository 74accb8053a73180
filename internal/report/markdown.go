package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/alnah/go-brandkit"
)

// MarkdownWriter prints results as a markdown document with tables and a
// mermaid pie chart of the color distribution.
type MarkdownWriter struct {
	out io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter(out io.Writer) *MarkdownWriter {
	return &MarkdownWriter{out: out}
}

// WriteExtraction writes the markdown report.
func (w *MarkdownWriter) WriteExtraction(e Extraction) error {
	md := markdown.NewMarkdown(w.out)

	md.H1("Style Extraction")
	if e.Source != "" {
		md.PlainText("Source: `" + e.Source + "`")
		md.PlainText("")
	}

	md.H2("Colors")
	md.PlainText("")
	if len(e.Result.Colors) == 0 {
		md.PlainText("No hex colors found.")
	} else {
		rows := make([][]string, 0, len(e.Result.Colors))
		for i, c := range e.Result.Colors {
			rows = append(rows, []string{strconv.Itoa(i + 1), "`" + c.Hex + "`", strconv.Itoa(c.Count)})
		}
		md.Table(markdown.TableSet{Header: []string{"Rank", "Hex", "Count"}, Rows: rows})
		md.PlainText("")
		writeColorChart(md, e.Result.Colors)
	}
	md.PlainText("")

	md.H2("Fonts")
	md.PlainText("")
	if len(e.Result.Fonts) == 0 {
		md.PlainText("No font-family declarations found.")
	} else {
		rows := make([][]string, 0, len(e.Result.Fonts))
		for i, f := range e.Result.Fonts {
			rows = append(rows, []string{strconv.Itoa(i + 1), f.Family, strconv.Itoa(f.Count)})
		}
		md.Table(markdown.TableSet{Header: []string{"Rank", "Family", "Count"}, Rows: rows})
	}

	return md.Build()
}

// maxChartSlices keeps the pie chart legible on busy pages.
const maxChartSlices = 8

func writeColorChart(md *markdown.Markdown, colors []brandkit.ColorObservation) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Color Distribution"),
		piechart.WithShowData(true),
	)
	for i, c := range colors {
		if i == maxChartSlices {
			break
		}
		chart.LabelAndIntValue(c.Hex, uint64(c.Count)) // #nosec G115 -- counts are positive
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
}

// Compile-time interface check.
var _ Writer = (*MarkdownWriter)(nil)
