package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the asset directories.
// Names are bare identifiers, not paths.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
