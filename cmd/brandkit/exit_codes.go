package main

import (
	"errors"
	"os"

	"github.com/alnah/go-brandkit"
	"github.com/alnah/go-brandkit/internal/config"
	"github.com/alnah/go-brandkit/internal/report"
)

// Exit codes for the brandkit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, or config
	ExitIO      = 3 // Fetch, read, or write failures
	ExitBrowser = 4 // Chrome missing or broken
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, brandkit.ErrBrowserNotFound) ||
		errors.Is(err, brandkit.ErrBrowserConnect) ||
		errors.Is(err, brandkit.ErrPageCreate) ||
		errors.Is(err, brandkit.ErrPageLoad) ||
		errors.Is(err, brandkit.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, brandkit.ErrFetch) ||
		errors.Is(err, brandkit.ErrInputNotFound) ||
		errors.Is(err, brandkit.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, report.ErrUnknownFormat) ||
		errors.Is(err, brandkit.ErrEmptySource) ||
		errors.Is(err, brandkit.ErrInvalidDateFormat) ||
		errors.Is(err, brandkit.ErrInvalidAssetPath) ||
		errors.Is(err, brandkit.ErrTemplateNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
