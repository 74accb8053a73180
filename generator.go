package brandkit

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-brandkit/internal/assets"
	"github.com/alnah/go-brandkit/internal/dateutil"
	"github.com/alnah/go-brandkit/internal/fileutil"
	"github.com/alnah/go-brandkit/internal/logging"
	"github.com/alnah/go-brandkit/internal/pipeline"
)

// Teaser output file names, written next to the analysis.
const (
	TeaserHTMLName = "teaser.html"
	TeaserPDFName  = "teaser.pdf"
)

// defaultSettleDelay lets teaser chart animations finish before printing.
const defaultSettleDelay = time.Second

// Generator renders brand books and teasers.
type Generator struct {
	cfg       generatorConfig
	fetcher   Fetcher
	exporter  Exporter
	renderer  *templateRenderer
	logger    *slog.Logger
	now       func() time.Time
	exportSet bool
}

// generatorConfig holds settings applied by options.
type generatorConfig struct {
	timeout     time.Duration
	settleDelay time.Duration
	pdf         bool
	download    bool
	assetPath   string
	dateFormat  string
	cover       TeaserCover
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the budget of one PDF export.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("brandkit: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithSettleDelay sets how long the teaser page settles before printing.
func WithSettleDelay(d time.Duration) Option {
	return func(g *Generator) {
		g.cfg.settleDelay = max(d, 0)
	}
}

// WithPDF turns PDF export on or off. It is on by default.
func WithPDF(enabled bool) Option {
	return func(g *Generator) {
		g.cfg.pdf = enabled
	}
}

// WithBrowserDownload lets rod download Chromium when none is installed.
func WithBrowserDownload(allow bool) Option {
	return func(g *Generator) {
		g.cfg.download = allow
	}
}

// WithFetcher replaces the HTTP fetcher used for URLs.
func WithFetcher(f Fetcher) Option {
	return func(g *Generator) {
		g.fetcher = f
	}
}

// WithExporter replaces the PDF exporter. A nil exporter disables export.
func WithExporter(e Exporter) Option {
	return func(g *Generator) {
		g.exporter = e
		g.exportSet = true
	}
}

// WithAssetPath layers a directory of template overrides over the embedded
// templates.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithNow sets the clock used for document dates.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithDateFormat sets the brand book date pattern (see internal/dateutil).
func WithDateFormat(pattern string) Option {
	return func(g *Generator) {
		if pattern != "" {
			g.cfg.dateFormat = pattern
		}
	}
}

// WithTeaserCover sets the fixed teaser text. Empty fields keep defaults.
func WithTeaserCover(c TeaserCover) Option {
	return func(g *Generator) {
		def := g.cfg.cover
		g.cfg.cover = TeaserCover{
			Tagline:    cmp.Or(c.Tagline, def.Tagline),
			Stage:      cmp.Or(c.Stage, def.Stage),
			Date:       cmp.Or(c.Date, def.Date),
			AskAmount:  cmp.Or(c.AskAmount, def.AskAmount),
			AskPurpose: cmp.Or(c.AskPurpose, def.AskPurpose),
		}
	}
}

// NewGenerator creates a Generator. It fails when the asset path or the
// date format is unusable.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			timeout:     defaultTimeout,
			settleDelay: defaultSettleDelay,
			pdf:         true,
			dateFormat:  dateutil.BrandBookPattern,
			cover:       DefaultTeaserCover(),
		},
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if _, err := dateutil.Layout(g.cfg.dateFormat); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDateFormat, err)
	}

	loader, err := assets.NewResolver(g.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
	}
	g.renderer = &templateRenderer{loader: loader, fragments: pipeline.NewGoldmarkRenderer()}

	if g.fetcher == nil {
		g.fetcher = NewHTTPFetcher()
	}
	switch {
	case !g.cfg.pdf:
		g.exporter = nil
	case !g.exportSet:
		g.exporter = NewRodExporter(g.cfg.timeout, g.cfg.download)
	}
	return g, nil
}

// RenderResult describes the files a generation produced.
type RenderResult struct {
	HTMLPath string       `json:"html"`
	PDF      ExportStatus `json:"pdf"`
}

// BrandBookInput selects the page to build a brand book for.
type BrandBookInput struct {
	URL       string // URL, file path, or literal markup
	Name      string // project name; derived from the domain when empty
	OutputDir string // base directory; DefaultBrandBookDir when empty
}

// BrandBook extracts the styles of in.URL and renders a brand book.
// A skipped or failed PDF export is reported in the result, not as an error.
func (g *Generator) BrandBook(ctx context.Context, in BrandBookInput) (*RenderResult, error) {
	if in.URL == "" {
		return nil, ErrEmptySource
	}
	domain := DomainName(in.URL)
	name := in.Name
	if name == "" {
		name = ProjectName(domain)
	}
	outDir := cmp.Or(in.OutputDir, DefaultBrandBookDir)

	g.logger.Info("extracting styles", "source", in.URL)
	raw, err := ResolveSource(ctx, in.URL, g.fetcher)
	if err != nil {
		return nil, err
	}
	styles := ExtractStyles(raw.Text)
	g.logger.Debug("styles extracted", "kind", raw.Kind, "colors", len(styles.Colors), "fonts", len(styles.Fonts))

	date, err := dateutil.Format(g.now(), g.cfg.dateFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateRender, err)
	}

	view := brandBookView{
		ProjectName: name,
		Domain:      domain,
		URL:         in.URL,
		Date:        date,
		Tone:        AnalyzeTone(in.URL),
		Meta:        ExtractPageMeta(raw.Text),
	}
	view.fillSlots(styles)

	html, err := g.renderer.renderBrandBook(view)
	if err != nil {
		return nil, err
	}

	htmlPath, pdfPath := BrandBookPaths(outDir, domain)
	if err := fileutil.WriteFile(htmlPath, []byte(html)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	g.logger.Info("brand book written", "path", htmlPath)

	status := g.export(ctx, htmlPath, pdfPath, PDFOptions{WaitNetworkIdle: true})
	return &RenderResult{HTMLPath: htmlPath, PDF: status}, nil
}

// TeaserInput selects the analysis to build a teaser from.
type TeaserInput struct {
	Path string // markdown file; outputs are written beside it
}

// Teaser renders a teaser from the markdown analysis at in.Path.
// A missing input file is the only extraction failure.
func (g *Generator) Teaser(ctx context.Context, in TeaserInput) (*RenderResult, TeaserFields, error) {
	if !fileutil.FileExists(in.Path) {
		return nil, TeaserFields{}, fmt.Errorf("%w: %s", ErrInputNotFound, in.Path)
	}
	content, err := os.ReadFile(in.Path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, TeaserFields{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	fields := ExtractTeaserFields(string(content))
	g.logger.Debug("teaser fields extracted", "project", fields.ProjectName, "verdict", fields.Verdict)

	cover := g.cfg.cover
	if cover.Date, err = dateutil.Resolve(cover.Date, g.now()); err != nil {
		return nil, fields, fmt.Errorf("%w: %w", ErrTemplateRender, err)
	}

	html, err := g.renderer.renderTeaser(ctx, fields, cover)
	if err != nil {
		return nil, fields, err
	}

	dir := filepath.Dir(in.Path)
	htmlPath := filepath.Join(dir, TeaserHTMLName)
	if err := fileutil.WriteFile(htmlPath, []byte(html)); err != nil {
		return nil, fields, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	g.logger.Info("teaser written", "path", htmlPath)

	status := g.export(ctx, htmlPath, filepath.Join(dir, TeaserPDFName), PDFOptions{SettleDelay: g.cfg.settleDelay})
	return &RenderResult{HTMLPath: htmlPath, PDF: status}, fields, nil
}

// PDFAvailable reports whether PDF export can run, and why not.
func (g *Generator) PDFAvailable() error {
	if g.exporter == nil {
		return fmt.Errorf("%w: PDF export disabled", ErrBrowserNotFound)
	}
	return g.exporter.Available()
}

func (g *Generator) export(ctx context.Context, htmlPath, pdfPath string, opts PDFOptions) ExportStatus {
	status := exportPDF(ctx, g.exporter, htmlPath, pdfPath, opts)
	switch status.State {
	case ExportExported:
		g.logger.Info("PDF written", "path", status.Path)
	case ExportSkipped:
		if status.Err == nil {
			g.logger.Debug("PDF export skipped", "reason", status.Reason)
			break
		}
		g.logger.Warn("PDF export skipped", "reason", status.Reason)
	case ExportFailed:
		g.logger.Error("PDF export failed", "error", status.Reason)
	}
	return status
}
