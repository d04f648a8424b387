// Package yamlutil wraps YAML decoding behind a small guarded API so the
// underlying library can be swapped without touching callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize caps YAML input. Front matter blocks and config files are
// a few hundred bytes; anything approaching this limit is a corrupt input.
const MaxDocumentSize = 1 << 20

var (
	ErrEmptyDocument    = errors.New("yamlutil: empty document")
	ErrNilTarget        = errors.New("yamlutil: nil decode target")
	ErrDocumentTooLarge = errors.New("yamlutil: document exceeds size limit")
)

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrEmptyDocument
	case len(data) > MaxDocumentSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	case v == nil:
		return ErrNilTarget
	}

	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
