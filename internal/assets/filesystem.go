package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads styles from a user-supplied asset directory.
// The directory must follow the embedded layout: styles/<name>.css.
type FilesystemLoader struct {
	baseDir string
}

// NewFilesystemLoader validates the directory and creates a loader.
func NewFilesystemLoader(baseDir string) (*FilesystemLoader, error) {
	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetDir, baseDir)
	}
	return &FilesystemLoader{baseDir: baseDir}, nil
}

// LoadStyle loads a CSS style from the asset directory by name.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.baseDir, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated above
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
