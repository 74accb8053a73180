package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/hints"
)

// NewTeaserCmd creates the teaser command.
func NewTeaserCmd(a *app) *cobra.Command {
	var flags pdfFlags

	cmd := &cobra.Command{
		Use:   "teaser <analysis.md>",
		Short: "Render an investment teaser from a markdown analysis",
		Long: `Read a markdown startup analysis and render a one-page teaser next to it
as teaser.html, plus teaser.pdf when Chrome is available.`,
		Example: `  brandkit teaser reports/analysis.md
  brandkit teaser analysis.md --no-pdf`,
		Args: exactArgs(1, "one markdown file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.generator(flags)
			if err != nil {
				return err
			}
			res, _, err := gen.Teaser(cmd.Context(), brandkit.TeaserInput{Path: args[0]})
			switch {
			case errors.Is(err, brandkit.ErrInputNotFound):
				return fmt.Errorf("%w%s", err, hints.ForInputNotFound())
			case errors.Is(err, brandkit.ErrWriteOutput):
				return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
			case err != nil:
				return err
			}
			a.printResult(res)
			return nil
		},
	}
	addPDFFlags(cmd.Flags(), &flags)
	return cmd
}
