package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a style name is safe to splice into an asset
// path. Names are bare identifiers with no separators, traversal sequences,
// or extensions.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains traversal sequence", ErrInvalidAssetName, name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidAssetName, name)
	}
	return nil
}
