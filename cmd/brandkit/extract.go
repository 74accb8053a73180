package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/hints"
	"github.com/alnah/go-brandkit/internal/report"
)

// sampleSource names the built-in stylesheet in reports.
const sampleSource = "(sample)"

// NewExtractCmd creates the extract command.
func NewExtractCmd(a *app) *cobra.Command {
	var flags extractFlags

	cmd := &cobra.Command{
		Use:   "extract [source]",
		Short: "Print the dominant colors and fonts of a page, file, or text",
		Long: `Extract hex colors and font-family declarations and rank them by frequency.

The source is fetched when it is an http(s) URL, read when it is an existing
file, and otherwise scanned as literal text.`,
		Example: `  brandkit extract https://example.com
  brandkit extract site.css --format table
  brandkit extract --sample`,
		Args: maxArgs(1, "at most one source"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args, flags)
		},
	}
	addExtractFlags(cmd.Flags(), &flags)
	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, args []string, flags extractFlags) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	var source, text string
	switch {
	case flags.sample && len(args) > 0:
		return fmt.Errorf("%w: --sample takes no source", ErrUsage)
	case flags.sample:
		source, text = sampleSource, brandkit.SampleStylesheet
	case len(args) == 1:
		source = args[0]
		raw, err := brandkit.ResolveSource(cmd.Context(), source, a.fetcher())
		if err != nil {
			return a.extractFailed(format, source, err)
		}
		a.logger.Debug("source resolved", "kind", raw.Kind, "bytes", len(raw.Text))
		text = raw.Text
	default:
		return fmt.Errorf("%w: expected a source or --sample", ErrUsage)
	}

	w, err := report.New(format, a.env.Stdout)
	if err != nil {
		return err
	}
	return w.WriteExtraction(report.Extraction{Source: source, Result: brandkit.ExtractStyles(text)})
}

// extractFailed reports a source error. JSON output gets an {"error": ...}
// body on stdout so scripts always receive JSON.
func (a *app) extractFailed(format report.Format, source string, err error) error {
	if format != report.FormatJSON || !errors.Is(err, brandkit.ErrFetch) {
		if errors.Is(err, brandkit.ErrFetch) {
			return fmt.Errorf("%w%s", err, hints.ForFetch(source))
		}
		return err
	}
	if werr := report.NewJSONWriter(a.env.Stdout).WriteValue(report.ErrorBody{Error: err.Error()}); werr != nil {
		return errors.Join(err, werr)
	}
	return &reportedError{err: err}
}
