package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-brandkit/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string        // BRANDKIT_CONFIG: config file name or path
	Timeout      time.Duration // BRANDKIT_TIMEOUT: PDF export timeout
	FetchTimeout time.Duration // BRANDKIT_FETCH_TIMEOUT: page download timeout
	UserAgent    string        // BRANDKIT_USER_AGENT: User-Agent header
	OutputDir    string        // BRANDKIT_OUTPUT_DIR: brand book base directory
	AssetPath    string        // BRANDKIT_ASSETS: template override directory
	NoPDF        bool          // BRANDKIT_NO_PDF: skip PDF export
	Download     bool          // BRANDKIT_DOWNLOAD_BROWSER: allow Chromium download
}

// knownEnvVars lists valid BRANDKIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BRANDKIT_CONFIG":           true,
	"BRANDKIT_TIMEOUT":          true,
	"BRANDKIT_FETCH_TIMEOUT":    true,
	"BRANDKIT_USER_AGENT":       true,
	"BRANDKIT_OUTPUT_DIR":       true,
	"BRANDKIT_ASSETS":           true,
	"BRANDKIT_NO_PDF":           true,
	"BRANDKIT_DOWNLOAD_BROWSER": true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("BRANDKIT_CONFIG"),
		UserAgent:  os.Getenv("BRANDKIT_USER_AGENT"),
		OutputDir:  os.Getenv("BRANDKIT_OUTPUT_DIR"),
		AssetPath:  os.Getenv("BRANDKIT_ASSETS"),
		NoPDF:      envBool("BRANDKIT_NO_PDF"),
		Download:   envBool("BRANDKIT_DOWNLOAD_BROWSER"),
	}
	cfg.Timeout = envDuration("BRANDKIT_TIMEOUT")
	cfg.FetchTimeout = envDuration("BRANDKIT_FETCH_TIMEOUT")
	return cfg
}

func envDuration(key string) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 0
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}

// warnUnknownEnvVars logs warnings for unrecognized BRANDKIT_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "BRANDKIT_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays set environment values on cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Timeout > 0 {
		cfg.PDF.Timeout = env.Timeout.String()
	}
	if env.FetchTimeout > 0 {
		cfg.Fetch.Timeout = env.FetchTimeout.String()
	}
	if env.UserAgent != "" {
		cfg.Fetch.UserAgent = env.UserAgent
	}
	if env.OutputDir != "" {
		cfg.BrandBook.OutputDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.NoPDF {
		disabled := false
		cfg.PDF.Enabled = &disabled
	}
	if env.Download {
		cfg.PDF.Download = true
	}
}
