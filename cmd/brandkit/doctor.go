package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/spf13/cobra"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/config"
	"github.com/alnah/go-brandkit/internal/hints"
	"github.com/alnah/go-brandkit/internal/report"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"`
	Chrome   chromeInfo `json:"chrome"`
	PDF      pdfInfo    `json:"pdf"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// pdfInfo mirrors the PDF settings in effect.
type pdfInfo struct {
	Enabled  bool `json:"enabled"`
	Download bool `json:"download"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Container  bool   `json:"container"`
	CI         bool   `json:"ci"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// doctorProbe locates Chrome; replaced in tests.
type doctorProbe struct {
	lookPath func() (string, bool)
	version  func(path string) (string, error)
}

func defaultProbe() doctorProbe {
	return doctorProbe{lookPath: launcher.LookPath, version: chromeVersion}
}

// chromeVersion runs "chrome --version" with a short deadline.
func chromeVersion(path string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output() // #nosec G204 -- path from launcher or ROD_BROWSER_BIN
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd(a *app) *cobra.Command {
	var flags doctorFlags

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that PDF export can run",
		Long: `Check for Chrome/Chromium, sandbox settings, and a writable temp directory.
Exits with code 4 when PDF export cannot run.`,
		Args: exactArgs(0, "no arguments"),
		RunE: func(*cobra.Command, []string) error {
			return a.runDoctor(defaultProbe(), flags)
		},
	}
	addDoctorFlags(cmd.Flags(), &flags)
	return cmd
}

func (a *app) runDoctor(probe doctorProbe, flags doctorFlags) error {
	result := diagnose(probe, a.cfg)

	if flags.json {
		if err := report.NewJSONWriter(a.env.Stdout).WriteValue(result); err != nil {
			return err
		}
	} else {
		printDoctorResult(a.env.Stdout, result)
	}

	if result.Status == statusErrors {
		return &reportedError{err: fmt.Errorf("%w: %s", brandkit.ErrBrowserNotFound, strings.Join(result.Errors, "; "))}
	}
	return nil
}

// diagnose performs all diagnostic checks.
func diagnose(probe doctorProbe, cfg *config.Config) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		PDF:    pdfInfo{Enabled: cfg.PDFEnabled(), Download: cfg.PDF.Download},
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkChrome(result, probe)
	checkEnvironment(result)
	checkSystem(result)

	switch {
	case len(result.Errors) > 0:
		result.Status = statusErrors
	case len(result.Warnings) > 0:
		result.Status = statusWarnings
	}
	return result
}

// checkChrome detects Chrome/Chromium installation.
func checkChrome(result *doctorResult, probe doctorProbe) {
	chromePath := result.Env.BrowserBin
	if chromePath == "" {
		var found bool
		chromePath, found = probe.lookPath()
		if !found {
			if result.PDF.Download {
				result.Warnings = append(result.Warnings,
					"Chrome/Chromium not found; it will be downloaded on first export")
				return
			}
			msg := "Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN"
			if !result.PDF.Enabled {
				result.Warnings = append(result.Warnings, msg)
				return
			}
			result.Errors = append(result.Errors, msg)
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath
	if v, err := probe.version(chromePath); err == nil {
		result.Chrome.Version = v
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get Chrome version: %v", err))
	}
	result.Chrome.Sandbox = result.Env.NoSandbox != "1"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container = hints.InContainer()
	result.Env.CI = hints.InCI()

	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// checkSystem verifies the temp directory Chrome writes its profile to.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, fmt.Sprintf("brandkit-doctor-%d", os.Getpid()))
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = os.Remove(testFile)
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "brandkit doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [--] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PDF export")
	if r.PDF.Enabled {
		fmt.Fprintln(w, "  [OK] Enabled")
	} else {
		fmt.Fprintln(w, "  [--] Disabled by config")
	}
	if r.PDF.Download {
		fmt.Fprintln(w, "  [OK] Browser download: allowed")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to export PDF")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
