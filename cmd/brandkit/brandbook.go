package main

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/hints"
)

// NewBrandBookCmd creates the brandbook command.
func NewBrandBookCmd(a *app) *cobra.Command {
	var flags brandBookFlags

	cmd := &cobra.Command{
		Use:   "brandbook <url>",
		Short: "Render a brand book from the styles of a page",
		Long: `Extract colors and fonts from a page and render a brand book to
<output>/<domain>/BrandBook_<domain>.html, plus a PDF when Chrome is available.`,
		Example: `  brandkit brandbook https://example.com
  brandkit brandbook https://example.com -n "Example Inc" -o out --no-pdf`,
		Args: exactArgs(1, "one URL"),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.generator(flags.pdf)
			if err != nil {
				return err
			}
			res, err := gen.BrandBook(cmd.Context(), brandkit.BrandBookInput{
				URL:       args[0],
				Name:      flags.name,
				OutputDir: cmp.Or(flags.output, a.cfg.BrandBook.OutputDir),
			})
			switch {
			case errors.Is(err, brandkit.ErrFetch):
				return fmt.Errorf("%w%s", err, hints.ForFetch(args[0]))
			case errors.Is(err, brandkit.ErrWriteOutput):
				return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
			case err != nil:
				return err
			}
			a.printResult(res)
			return nil
		},
	}
	addBrandBookFlags(cmd.Flags(), &flags)
	return cmd
}
