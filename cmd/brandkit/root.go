package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/config"
	"github.com/alnah/go-brandkit/internal/hints"
	"github.com/alnah/go-brandkit/internal/logging"
)

// app carries what subcommands share once the persistent flags are parsed.
type app struct {
	env    *Environment
	flags  commonFlags
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(env *Environment) *cobra.Command {
	a := &app{env: env, cfg: config.Default(), logger: logging.Discard()}

	cmd := &cobra.Command{
		Use:   "brandkit",
		Short: "Extract brand styles and render brand books and teasers",
		Long: `brandkit scrapes colors and fonts from a web page, file, or literal text,
renders a brand book from them, and turns a markdown startup analysis into a
one-page investment teaser. Documents are written as HTML and, when Chrome is
available, as PDF.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
			}
			return cmd.Help()
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
	addCommonFlags(cmd.PersistentFlags(), &a.flags)

	cmd.AddCommand(
		NewExtractCmd(a),
		NewFieldsCmd(a),
		NewBrandBookCmd(a),
		NewTeaserCmd(a),
		NewDoctorCmd(a),
		NewVersionCmd(),
	)
	return cmd
}

// setup loads config, applies environment overrides, and builds the logger.
func (a *app) setup() error {
	if a.flags.quiet && a.flags.verbose {
		return fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(a.env.Stderr)

	if name := cmp.Or(a.flags.config, envCfg.ConfigPath); name != "" {
		cfg, err := config.Load(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return err
		}
		a.cfg = cfg
	}
	applyEnvConfig(envCfg, a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	verbosity := logging.Normal
	switch {
	case a.flags.quiet:
		verbosity = logging.Quiet
	case a.flags.verbose:
		verbosity = logging.Verbose
	}
	a.logger = logging.New(a.env.Stderr, verbosity)
	return nil
}

// fetcher returns the injected fetcher or an HTTP fetcher from config.
func (a *app) fetcher() brandkit.Fetcher {
	if a.env.Fetcher != nil {
		return a.env.Fetcher
	}
	return brandkit.NewHTTPFetcher(
		brandkit.WithFetchTimeout(a.cfg.FetchTimeout()),
		brandkit.WithUserAgent(a.cfg.Fetch.UserAgent),
	)
}

// generator builds a Generator from config and the command's PDF flags.
func (a *app) generator(p pdfFlags) (*brandkit.Generator, error) {
	opts := []brandkit.Option{
		brandkit.WithFetcher(a.fetcher()),
		brandkit.WithLogger(a.logger),
		brandkit.WithNow(a.env.Now),
		brandkit.WithPDF(a.cfg.PDFEnabled() && !p.noPDF),
		brandkit.WithBrowserDownload(a.cfg.PDF.Download || p.download),
		brandkit.WithSettleDelay(a.cfg.SettleDelay()),
		brandkit.WithAssetPath(a.cfg.Assets.BasePath),
		brandkit.WithDateFormat(a.cfg.BrandBook.DateFormat),
		brandkit.WithTeaserCover(brandkit.TeaserCover{
			Tagline:    a.cfg.Teaser.Tagline,
			Stage:      a.cfg.Teaser.Stage,
			Date:       a.cfg.Teaser.Date,
			AskAmount:  a.cfg.Teaser.AskAmount,
			AskPurpose: a.cfg.Teaser.AskPurpose,
		}),
	}
	if d := a.cfg.PDFTimeout(); d > 0 {
		opts = append(opts, brandkit.WithTimeout(d))
	}
	if a.env.Exporter != nil {
		opts = append(opts, brandkit.WithExporter(a.env.Exporter))
	}
	return brandkit.NewGenerator(opts...)
}

// printResult reports the files a render produced. Created paths go to
// stdout; export problems go to stderr with a hint.
func (a *app) printResult(res *brandkit.RenderResult) {
	fmt.Fprintf(a.env.Stdout, "Created %s\n", res.HTMLPath)
	switch res.PDF.State {
	case brandkit.ExportExported:
		fmt.Fprintf(a.env.Stdout, "Created %s\n", res.PDF.Path)
	case brandkit.ExportSkipped:
		if res.PDF.Err != nil {
			fmt.Fprintf(a.env.Stderr, "warning: PDF skipped: %s%s\n", res.PDF.Reason, hints.ForBrowser())
		}
	case brandkit.ExportFailed:
		fmt.Fprintf(a.env.Stderr, "warning: PDF failed: %s%s\n", res.PDF.Reason, hints.ForBrowser())
	}
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	cmd := NewRootCmd(env)
	cmd.SetArgs(args)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
		}
	}
	return exitCodeFor(err)
}

// exactArgs requires n positional arguments, described by usage in errors.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %s, got %d argument(s)", ErrUsage, usage, len(args))
		}
		return nil
	}
}

// maxArgs allows at most n positional arguments.
func maxArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return fmt.Errorf("%w: expected %s, got %d arguments", ErrUsage, usage, len(args))
		}
		return nil
	}
}
