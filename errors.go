package mdalerts

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrFrontMatter   = errors.New("front matter parsing failed")

	// Alert table validation errors.
	ErrUnknownAlertTag = errors.New("label override for unknown alert tag")
	ErrEmptyAlertLabel = errors.New("alert label cannot be empty")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
