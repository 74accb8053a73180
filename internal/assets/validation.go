package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that are empty or could address a file
// other than {name}.html in the templates directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
