package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName covers empty names and names carrying path
	// separators or dots.
	ErrInvalidAssetName = errors.New("invalid asset name")

	ErrInvalidBasePath = errors.New("invalid base path")
	ErrAssetRead       = errors.New("failed to read asset")
	ErrPathTraversal   = errors.New("path traversal detected")
)
