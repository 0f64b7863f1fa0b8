package pdfreport

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Named colors used by the bundled reports.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Grey  = Color{128, 128, 128}
)

// ParseHex parses "#RRGGBB" or "#RGB" (leading # optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex is like ParseHex but panics on malformed input.
// Intended for color literals in report definitions.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("pdfreport: " + err.Error())
	}
	return c
}

// String returns the color as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ints returns the components as ints for fpdf.
func (c Color) ints() (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}
