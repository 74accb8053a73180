// Package yamlutil decodes configuration YAML behind a small, size-bounded API.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps the YAML accepted by Decode (1MB).
const MaxInputSize = 1 << 20

var (
	ErrNoData        = errors.New("yamlutil: empty document")
	ErrNoDestination = errors.New("yamlutil: nil destination")
	ErrTooLarge      = errors.New("yamlutil: document too large")
)

// Decode parses data into v and rejects keys that v does not declare.
func Decode(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNoData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNoDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
