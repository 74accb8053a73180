package main

// Notes:
// - Commands are driven through run() so exit codes, stdout, and stderr are
//   checked together.
// - The config file test writes YAML into a temp dir and passes its path;
//   name lookup in XDG directories is covered by the config package.

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-brandkit"
)

// ---------------------------------------------------------------------------
// TestNewRootCmd - Command tree
// ---------------------------------------------------------------------------

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(nil, nil)
	cmd := NewRootCmd(env)

	if cmd.Use != "brandkit" {
		t.Errorf("Use = %q, want brandkit", cmd.Use)
	}
	for _, name := range []string{"extract", "fields", "brandbook", "teaser", "doctor", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
	for _, flag := range []string{"config", "quiet", "verbose"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRun - Usage errors and global flags
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"no args shows help", nil, ExitSuccess, ""},
		{"unknown command", []string{"render"}, ExitUsage, "unknown command"},
		{"unknown flag", []string{"extract", "--colour"}, ExitUsage, "invalid usage"},
		{"quiet and verbose", []string{"-q", "-v", "extract", "--sample"}, ExitUsage, "mutually exclusive"},
		{"too many args", []string{"fields", "a.md", "b.md"}, ExitUsage, "one markdown file"},
		{"missing config", []string{"-c", "does-not-exist", "extract", "--sample"}, ExitUsage, "config file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv(nil, nil)
			if got := runCLI(t, env, tt.args...); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", got, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "brandkit.yaml")
	writeTestFile(t, cfgPath, `pdf:
  enabled: false
teaser:
  askAmount: "12M RUB"
`)
	md := filepath.Join(dir, "analysis.md")
	writeTestFile(t, md, analysisMarkdown)

	env, stdout, stderr := testEnv(nil, nil)
	if code := runCLI(t, env, "--config", cfgPath, "teaser", md); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if strings.Contains(stdout.String(), brandkit.TeaserPDFName) {
		t.Errorf("PDF created although config disables it: %s", stdout)
	}
	html := readOutput(t, filepath.Join(dir, brandkit.TeaserHTMLName))
	if !strings.Contains(html, "12M RUB") {
		t.Error("teaser does not use the configured ask amount")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	writeTestFile(t, cfgPath, "fetch:\n  timeout: soon\n")

	env, _, stderr := testEnv(nil, nil)
	if code := runCLI(t, env, "--config", cfgPath, "extract", "--sample"); code != ExitUsage {
		t.Errorf("exit code = %d, want %d (stderr: %s)", code, ExitUsage, stderr)
	}
}
