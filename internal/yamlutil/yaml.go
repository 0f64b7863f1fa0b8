// Package yamlutil reads and writes the pdfreport YAML config with
// goccy/go-yaml. Decoding is strict: a misspelled key is an error, not a
// silently ignored setting.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input size. Report configs are a few lines.
const MaxInputSize = 64 << 10

// Sentinel errors for decoding.
var (
	ErrEmpty    = errors.New("yamlutil: empty document")
	ErrTooLarge = errors.New("yamlutil: document too large")
	ErrNoTarget = errors.New("yamlutil: nil destination")
)

// DecodeStrict decodes data into v and rejects keys v does not declare.
// Fields absent from data keep the value already in v, so callers decode
// on top of their defaults.
func DecodeStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmpty
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNoTarget
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode renders v as YAML, used by `pdfreport config`.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

// Describe renders a decoding error with its position and the offending
// source line. Errors without a position are returned as-is.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return yaml.FormatError(err, false, true)
}
