package main

import (
	"errors"
	"os"

	mdalerts "github.com/jquenard/go-mdalerts"
	"github.com/jquenard/go-mdalerts/internal/assets"
	"github.com/jquenard/go-mdalerts/internal/config"
)

// Exit codes for the mdalerts CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // All files processed
	ExitGeneral = 1 // General/unexpected error, or per-file failures
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyLabelKey) ||
		errors.Is(err, mdalerts.ErrEmptyMarkdown) ||
		errors.Is(err, mdalerts.ErrUnknownAlertTag) ||
		errors.Is(err, mdalerts.ErrEmptyAlertLabel) ||
		errors.Is(err, mdalerts.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
