package assets

import (
	"errors"
	"fmt"
)

// DefaultStyleName is the style applied when none is configured.
const DefaultStyleName = "report"

// MaxStyleNameLength bounds a style name.
const MaxStyleNameLength = 64

// Sentinel errors for style loading.
var (
	ErrStyleNotFound   = errors.New("style not found")
	ErrBadStyleName    = errors.New("invalid style name")
	ErrBadBasePath     = errors.New("invalid assets base path")
	ErrStyleRead       = errors.New("failed to read style")
	ErrOutsideBasePath = errors.New("style resolves outside the assets base path")
)

// Origin tells where a resolved style came from.
type Origin string

// Style origins.
const (
	OriginEmbedded Origin = "embedded"
	OriginCustom   Origin = "custom"
)

// Style is a resolved stylesheet.
type Style struct {
	Name   string
	CSS    string
	Origin Origin
}

// StyleLoader loads a stylesheet by name (no ".css" suffix).
// Unknown names yield ErrStyleNotFound, malformed ones ErrBadStyleName.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// checkName accepts letters, digits, '-' and '_'.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrBadStyleName)
	}
	if len(name) > MaxStyleNameLength {
		return fmt.Errorf("%w: %d chars, max %d", ErrBadStyleName, len(name), MaxStyleNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrBadStyleName, name)
		}
	}
	return nil
}
