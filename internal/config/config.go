// Package config loads brandkit settings from YAML with defaults for every
// field left unset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/adrg/xdg"

	"github.com/alnah/go-brandkit/internal/dateutil"
	"github.com/alnah/go-brandkit/internal/fileutil"
	"github.com/alnah/go-brandkit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxUserAgentLength = 200
	MaxPathLength      = 4096
	MaxTextLength      = 200 // teaser cover text
	MaxDateLength      = 50
)

// AppName names the XDG config subdirectory.
const AppName = "brandkit"

// Config holds all brandkit settings.
type Config struct {
	Fetch     FetchConfig     `yaml:"fetch"`
	PDF       PDFConfig       `yaml:"pdf"`
	BrandBook BrandBookConfig `yaml:"brandbook"`
	Teaser    TeaserConfig    `yaml:"teaser"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// FetchConfig controls page downloads.
type FetchConfig struct {
	Timeout   string `yaml:"timeout"` // Go duration; "0s" disables the limit
	UserAgent string `yaml:"userAgent"`
}

// PDFConfig controls PDF export.
type PDFConfig struct {
	Enabled     *bool  `yaml:"enabled"`     // nil means enabled
	Download    bool   `yaml:"download"`    // allow rod to download Chromium
	Timeout     string `yaml:"timeout"`     // per-export budget
	SettleDelay string `yaml:"settleDelay"` // teaser wait before printing
}

// BrandBookConfig controls brand book output.
type BrandBookConfig struct {
	OutputDir  string `yaml:"outputDir"`
	DateFormat string `yaml:"dateFormat"` // dateutil pattern
}

// TeaserConfig holds the fixed cover text of the teaser.
type TeaserConfig struct {
	Tagline    string `yaml:"tagline"`
	Stage      string `yaml:"stage"`
	Date       string `yaml:"date"` // literal or "auto:PATTERN"
	AskAmount  string `yaml:"askAmount"`
	AskPurpose string `yaml:"askPurpose"`
}

// AssetsConfig points at a directory of template overrides.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty uses embedded templates
}

// Default returns the built-in configuration.
func Default() *Config {
	enabled := true
	return &Config{
		Fetch: FetchConfig{Timeout: "30s"},
		PDF: PDFConfig{
			Enabled:     &enabled,
			Timeout:     "30s",
			SettleDelay: "1s",
		},
		BrandBook: BrandBookConfig{
			OutputDir:  "brandbook",
			DateFormat: dateutil.BrandBookPattern,
		},
		Teaser: TeaserConfig{
			Tagline:    "Innovative Solution for a Growing Market",
			Stage:      "Pre-Seed / Idea",
			Date:       "2026",
			AskAmount:  "4M RUB",
			AskPurpose: "MVP Development (FSIE Start-1)",
		},
	}
}

// PDFEnabled reports whether PDF export should be attempted.
func (c *Config) PDFEnabled() bool {
	return c.PDF.Enabled == nil || *c.PDF.Enabled
}

// FetchTimeout returns the parsed fetch timeout.
func (c *Config) FetchTimeout() time.Duration {
	return mustDuration(c.Fetch.Timeout)
}

// PDFTimeout returns the parsed export timeout.
func (c *Config) PDFTimeout() time.Duration {
	return mustDuration(c.PDF.Timeout)
}

// SettleDelay returns the parsed teaser settle delay.
func (c *Config) SettleDelay() time.Duration {
	return mustDuration(c.PDF.SettleDelay)
}

// mustDuration parses a duration already checked by Validate. Empty is zero.
func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks lengths, durations, and date patterns.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"fetch.userAgent", c.Fetch.UserAgent, MaxUserAgentLength},
		{"brandbook.outputDir", c.BrandBook.OutputDir, MaxPathLength},
		{"brandbook.dateFormat", c.BrandBook.DateFormat, MaxDateLength},
		{"teaser.tagline", c.Teaser.Tagline, MaxTextLength},
		{"teaser.stage", c.Teaser.Stage, MaxTextLength},
		{"teaser.date", c.Teaser.Date, MaxDateLength},
		{"teaser.askAmount", c.Teaser.AskAmount, MaxTextLength},
		{"teaser.askPurpose", c.Teaser.AskPurpose, MaxTextLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, l := range lengths {
		if len(l.value) > l.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, l.field, len(l.value), l.max)
		}
	}

	durations := map[string]string{
		"fetch.timeout":   c.Fetch.Timeout,
		"pdf.timeout":     c.PDF.Timeout,
		"pdf.settleDelay": c.PDF.SettleDelay,
	}
	for field, value := range durations {
		if value == "" {
			continue
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %q is not a duration", ErrInvalidValue, field, value)
		}
		if d < 0 {
			return fmt.Errorf("%w: %s: must not be negative", ErrInvalidValue, field)
		}
	}

	if c.BrandBook.DateFormat != "" {
		if _, err := dateutil.Layout(c.BrandBook.DateFormat); err != nil {
			return fmt.Errorf("%w: brandbook.dateFormat: %w", ErrInvalidValue, err)
		}
	}
	return nil
}

// Load reads a config file by path or by name. Names are searched as
// NAME.yaml and NAME.yml in the current directory, then in the XDG config
// directory. Unset fields are filled from Default.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		found, err := resolve(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	if err := mergo.Merge(&cfg, Default(), mergo.WithTransformers(keepSetBools{})); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// keepSetBools stops mergo from filling an explicit false behind a *bool
// with the default. Only nil pointers take the default.
type keepSetBools struct{}

func (keepSetBools) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeFor[*bool]() {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && dst.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}

// SearchPaths lists where Load looks for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	for _, ext := range extensions {
		paths = append(paths, filepath.Join(xdg.ConfigHome, AppName, name+ext))
	}
	return paths
}

func resolve(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
