package main

// Notes:
// - Chrome lookup goes through doctorProbe so results do not depend on the
//   machine running the tests; ROD_BROWSER_BIN is cleared with t.Setenv,
//   so these tests cannot use t.Parallel().
// - Container and CI detection read the real environment; assertions avoid
//   depending on their outcome.

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/config"
)

func fakeProbe(path string, found bool) doctorProbe {
	return doctorProbe{
		lookPath: func() (string, bool) { return path, found },
		version:  func(string) (string, error) { return "Chromium 130.0", nil },
	}
}

func fakeChrome(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "chromium")
	writeTestFile(t, bin, "")
	return bin
}

// ---------------------------------------------------------------------------
// TestDiagnose - Chrome detection and status
// ---------------------------------------------------------------------------

func TestDiagnose(t *testing.T) {
	t.Run("chrome found", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "")
		t.Setenv("ROD_NO_SANDBOX", "1")
		bin := fakeChrome(t)

		r := diagnose(fakeProbe(bin, true), config.Default())

		if !r.Chrome.Found || r.Chrome.Path != bin {
			t.Errorf("Chrome = %+v, want found at %s", r.Chrome, bin)
		}
		if r.Chrome.Version != "Chromium 130.0" {
			t.Errorf("Version = %q", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			t.Error("Sandbox = true with ROD_NO_SANDBOX=1")
		}
		if r.Status == statusErrors {
			t.Errorf("Status = %q, errors: %v", r.Status, r.Errors)
		}
		if r.Env.OS != runtime.GOOS || r.Env.Arch != runtime.GOARCH {
			t.Errorf("platform = %s/%s", r.Env.OS, r.Env.Arch)
		}
	})

	t.Run("chrome missing", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "")

		r := diagnose(fakeProbe("", false), config.Default())

		if r.Status != statusErrors {
			t.Errorf("Status = %q, want %q", r.Status, statusErrors)
		}
		if r.Chrome.Found {
			t.Error("Chrome.Found = true")
		}
	})

	t.Run("chrome missing with download", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "")
		cfg := config.Default()
		cfg.PDF.Download = true

		r := diagnose(fakeProbe("", false), cfg)

		if r.Status == statusErrors {
			t.Errorf("Status = %q, errors: %v", r.Status, r.Errors)
		}
		if !strings.Contains(strings.Join(r.Warnings, "\n"), "downloaded") {
			t.Errorf("Warnings = %v, want a download note", r.Warnings)
		}
	})

	t.Run("chrome missing with PDF disabled", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "")
		cfg := config.Default()
		disabled := false
		cfg.PDF.Enabled = &disabled

		r := diagnose(fakeProbe("", false), cfg)

		if r.Status == statusErrors {
			t.Errorf("Status = %q, errors: %v", r.Status, r.Errors)
		}
		if r.PDF.Enabled {
			t.Error("PDF.Enabled = true")
		}
	})

	t.Run("ROD_BROWSER_BIN points nowhere", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", filepath.Join(t.TempDir(), "nope"))

		r := diagnose(fakeProbe("/usr/bin/chromium", true), config.Default())

		if r.Status != statusErrors {
			t.Errorf("Status = %q, want %q", r.Status, statusErrors)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunDoctor - Output and exit codes
// ---------------------------------------------------------------------------

func TestRunDoctor(t *testing.T) {
	t.Run("JSON output", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "")
		env, stdout, _ := testEnv(nil, nil)
		a := &app{env: env, cfg: config.Default()}

		if err := a.runDoctor(fakeProbe(fakeChrome(t), true), doctorFlags{json: true}); err != nil {
			t.Fatalf("runDoctor() unexpected error: %v", err)
		}

		var r doctorResult
		if err := json.Unmarshal(stdout.Bytes(), &r); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, stdout)
		}
		if !r.Chrome.Found || r.Env.OS != runtime.GOOS {
			t.Errorf("result = %+v", r)
		}
	})

	t.Run("human output when not ready", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "")
		env, stdout, _ := testEnv(nil, nil)
		a := &app{env: env, cfg: config.Default()}

		err := a.runDoctor(fakeProbe("", false), doctorFlags{})

		if !errors.Is(err, brandkit.ErrBrowserNotFound) {
			t.Errorf("runDoctor() error = %v, want ErrBrowserNotFound", err)
		}
		if exitCodeFor(err) != ExitBrowser {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitBrowser)
		}
		var reported *reportedError
		if !errors.As(err, &reported) {
			t.Error("error is not marked as reported")
		}
		out := stdout.String()
		for _, want := range []string{"Chrome/Chromium", "[ERROR]", "Status: Not ready"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("command is wired", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", fakeChrome(t))
		env, stdout, _ := testEnv(nil, nil)

		runCLI(t, env, "doctor", "--json")

		var r doctorResult
		if err := json.Unmarshal(stdout.Bytes(), &r); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, stdout)
		}
		if r.Env.BrowserBin == "" {
			t.Error("rod_browser_bin not reported")
		}
	})
}

func TestCheckSystem(t *testing.T) {
	t.Parallel()

	var r doctorResult
	checkSystem(&r)
	if !r.System.TempWritable {
		t.Errorf("TempWritable = false for %s", os.TempDir())
	}
}
