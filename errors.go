package brandkit

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySource   = errors.New("source cannot be empty")
	ErrFetch         = errors.New("failed to fetch source")
	ErrInputNotFound = errors.New("input file not found")
	ErrWriteOutput   = errors.New("failed to write output file")

	ErrInvalidDateFormat = errors.New("invalid date format")

	// Rendering errors.
	ErrTemplateRender   = errors.New("template rendering failed")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Browser errors.
	ErrBrowserNotFound = errors.New("no Chrome/Chromium browser available")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrPDFGeneration   = errors.New("PDF generation failed")
)
