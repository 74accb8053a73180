package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/alnah/go-brandkit"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fakes and environment
// ---------------------------------------------------------------------------

// stubFetcher serves pages from memory; unknown URLs fail with ErrFetch.
type stubFetcher map[string]string

func (s stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	body, ok := s[url]
	if !ok {
		return "", errors.Join(brandkit.ErrFetch, errors.New("HTTP 404"))
	}
	return body, nil
}

// stubExporter writes a placeholder PDF, or reports a missing browser.
type stubExporter struct {
	missing bool
}

func (s stubExporter) Available() error {
	if s.missing {
		return brandkit.ErrBrowserNotFound
	}
	return nil
}

func (s stubExporter) Export(_ context.Context, _, pdfPath string, _ brandkit.PDFOptions) error {
	return os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o600)
}

// testEnv returns an environment with captured output, a fixed clock,
// and no network or browser access.
func testEnv(fetcher brandkit.Fetcher, exporter brandkit.Exporter) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:      func() time.Time { return time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC) },
		Stdout:   &stdout,
		Stderr:   &stderr,
		Fetcher:  fetcher,
		Exporter: exporter,
	}
	if env.Fetcher == nil {
		env.Fetcher = stubFetcher{}
	}
	if env.Exporter == nil {
		env.Exporter = stubExporter{}
	}
	return env, &stdout, &stderr
}

func runCLI(t *testing.T, env *Environment, args ...string) int {
	t.Helper()
	return run(context.Background(), args, env)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

const analysisMarkdown = `# Startup Analysis: "EcoBox"

## 1. Executive Summary

**Concept:** Reusable packaging as a service.

## 2. Market Analysis

- **TAM Estimate:** ~$5B
- **SAM Estimate:** $500M
- **SOM Estimate:** $50M

## 6. Verdict: Go or No-Go?

**Recommendation: GO**
`
