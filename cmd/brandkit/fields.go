package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/fileutil"
	"github.com/alnah/go-brandkit/internal/hints"
	"github.com/alnah/go-brandkit/internal/report"
)

// NewFieldsCmd creates the fields command.
func NewFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <analysis.md>",
		Short: "Print the teaser fields found in a markdown analysis as JSON",
		Long: `Read a markdown startup analysis and print the fields a teaser is built
from as a JSON object of strings. Every field has a default, so any readable
file produces output.`,
		Args: exactArgs(1, "one markdown file"),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runFields(args[0])
		},
	}
}

func (a *app) runFields(path string) error {
	if !fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s%s", brandkit.ErrInputNotFound, path, hints.ForInputNotFound())
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", brandkit.ErrFetch, err)
	}
	fields := brandkit.ExtractTeaserFields(string(content))
	a.logger.Debug("fields extracted", "path", path, "risks", len(fields.Risks))
	return report.NewJSONWriter(a.env.Stdout).WriteValue(fields.Map())
}
