package brandkit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-brandkit/internal/fileutil"
	"github.com/alnah/go-brandkit/internal/process"
)

// ExportState is the outcome of a PDF export attempt.
type ExportState string

// Export outcomes. Only ExportExported means a PDF file was written.
const (
	ExportExported ExportState = "exported"
	ExportSkipped  ExportState = "skipped"
	ExportFailed   ExportState = "failed"
)

// ExportStatus reports what happened to the PDF of a rendered document.
type ExportStatus struct {
	State  ExportState `json:"state"`
	Path   string      `json:"path,omitempty"`
	Reason string      `json:"reason,omitempty"`
	Err    error       `json:"-"`
}

// PDFOptions tune how a page is printed.
type PDFOptions struct {
	// WaitNetworkIdle waits for the page's network to go quiet instead of
	// the load event.
	WaitNetworkIdle bool
	// SettleDelay is an extra wait before printing, for CSS animations.
	SettleDelay time.Duration
}

// Exporter prints a local HTML file to PDF.
type Exporter interface {
	// Available returns nil when Export can run. Otherwise the error wraps
	// ErrBrowserNotFound and explains what is missing.
	Available() error
	Export(ctx context.Context, htmlPath, pdfPath string, opts PDFOptions) error
}

// A4 paper in inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// defaultTimeout bounds a single PDF export.
const defaultTimeout = 30 * time.Second

// RodExporter prints pages with headless Chrome driven by go-rod. A browser
// is launched for each export and torn down afterwards.
type RodExporter struct {
	timeout  time.Duration
	download bool

	// lookPath finds an installed browser; replaced in tests.
	lookPath func() (string, bool)
}

// NewRodExporter creates a RodExporter. When download is true and no browser
// is installed, rod fetches a Chromium build on first use.
func NewRodExporter(timeout time.Duration, download bool) *RodExporter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RodExporter{timeout: timeout, download: download, lookPath: launcher.LookPath}
}

// Available checks ROD_BROWSER_BIN, then the usual install locations.
func (e *RodExporter) Available() error {
	_, err := e.browserBin()
	return err
}

// browserBin returns the browser to launch. An empty path with a nil error
// means rod will download one.
func (e *RodExporter) browserBin() (string, error) {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		if !fileutil.FileExists(bin) {
			return "", fmt.Errorf("%w: ROD_BROWSER_BIN=%s does not exist", ErrBrowserNotFound, bin)
		}
		return bin, nil
	}
	if path, found := e.lookPath(); found {
		return path, nil
	}
	if e.download {
		return "", nil
	}
	return "", fmt.Errorf("%w: install Chrome or set ROD_BROWSER_BIN", ErrBrowserNotFound)
}

// Export opens htmlPath as a file:// page and writes an A4 PDF to pdfPath.
func (e *RodExporter) Export(ctx context.Context, htmlPath, pdfPath string, opts PDFOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pageURL, err := fileutil.FileURL(htmlPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPageLoad, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	browser, stop, err := e.launch(ctx)
	if err != nil {
		return err
	}
	defer stop()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	if err := load(page, pageURL, opts.WaitNetworkIdle); err != nil {
		return fmt.Errorf("%w: %w", ErrPageLoad, err)
	}

	if opts.SettleDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.SettleDelay):
		}
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:        floatPtr(a4WidthInches),
		PaperHeight:       floatPtr(a4HeightInches),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %w", ErrPDFGeneration, err)
	}

	if err := fileutil.WriteFile(pdfPath, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// launch starts Chrome and connects to it. stop closes the browser and
// kills its process tree.
func (e *RodExporter) launch(ctx context.Context) (*rod.Browser, func(), error) {
	bin, err := e.browserBin()
	if err != nil {
		return nil, nil, err
	}

	l := launcher.New().Context(ctx)
	if bin != "" {
		l = l.Bin(bin)
	}
	// Containers and CI runners rarely allow Chrome's sandbox.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	controlURL, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("%w: %w", ErrBrowserConnect, err)
	}

	kill := func() {
		process.KillTree(l.PID())
		l.Kill()
	}

	browser := rod.New().Context(ctx).ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		kill()
		return nil, nil, fmt.Errorf("%w: %w", ErrBrowserConnect, err)
	}

	return browser, func() {
		_ = browser.Close()
		kill()
	}, nil
}

// load navigates page to url and waits for it to be ready.
func load(page *rod.Page, url string, networkIdle bool) error {
	if !networkIdle {
		if err := page.Navigate(url); err != nil {
			return err
		}
		return page.WaitLoad()
	}
	wait := page.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := page.Navigate(url); err != nil {
		return err
	}
	wait()
	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}

// Compile-time interface check.
var _ Exporter = (*RodExporter)(nil)

// exportPDF runs exporter and folds every outcome into an ExportStatus.
// A nil exporter means PDF export is turned off.
func exportPDF(ctx context.Context, exporter Exporter, htmlPath, pdfPath string, opts PDFOptions) ExportStatus {
	if exporter == nil {
		return ExportStatus{State: ExportSkipped, Reason: "PDF export disabled"}
	}
	if err := exporter.Available(); err != nil {
		return ExportStatus{State: ExportSkipped, Reason: err.Error(), Err: err}
	}
	if err := exporter.Export(ctx, htmlPath, pdfPath, opts); err != nil {
		reason := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timed out: " + reason
		}
		return ExportStatus{State: ExportFailed, Reason: reason, Err: err}
	}
	return ExportStatus{State: ExportExported, Path: pdfPath}
}
