// Package assets provides the preview stylesheets shipped with mdalerts.
//
// Styles are loaded by name ("preview", "dark") from an embedded filesystem
// by default; a FilesystemLoader serves user-supplied asset directories with
// the same layout (styles/<name>.css).
package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidAssetDir  = errors.New("asset directory not found")
)

// Loader resolves style names to CSS content.
type Loader interface {
	LoadStyle(name string) (string, error)
}
