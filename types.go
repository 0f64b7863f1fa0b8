package pdfreport

import (
	"fmt"
	"strings"
)

// Length units, expressed in PDF points (1/72 inch).
const (
	Point = 1.0
	Inch  = 72.0
	Cm    = Inch / 2.54
	Mm    = Cm / 10
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in points.
const (
	MinMargin     = 0.0
	MaxMargin     = 8 * Cm
	DefaultMargin = 2 * Cm
)

// pageDimensions maps page sizes to portrait width and height in points.
var pageDimensions = map[string][2]float64{
	PageSizeA4:     {595.2756, 841.8898},
	PageSizeLetter: {612, 792},
	PageSizeLegal:  {612, 1008},
}

// Margins holds the four page margins in points.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns margins with the same value on all sides.
func UniformMargins(v float64) Margins {
	return Margins{Top: v, Right: v, Bottom: v, Left: v}
}

// PageSettings configures page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margins     Margins // points
}

// DefaultPageSettings returns A4 portrait with 2 cm margins.
func DefaultPageSettings() PageSettings {
	return PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margins:     UniformMargins(DefaultMargin),
	}
}

// Validate checks that page settings are valid.
// Does not mutate - uses case-insensitive comparison.
func (p PageSettings) Validate() error {
	if _, ok := pageDimensions[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	for _, m := range []struct {
		side  string
		value float64
	}{
		{"top", p.Margins.Top},
		{"right", p.Margins.Right},
		{"bottom", p.Margins.Bottom},
		{"left", p.Margins.Left},
	} {
		if m.value < MinMargin || m.value > MaxMargin {
			return fmt.Errorf("%w: %s %.2fpt (must be between %.2f and %.2f)", ErrInvalidMargin, m.side, m.value, MinMargin, MaxMargin)
		}
	}

	return nil
}

// Dimensions returns the page width and height in points, orientation applied.
// Unknown sizes fall back to A4.
func (p PageSettings) Dimensions() (width, height float64) {
	dims, ok := pageDimensions[strings.ToLower(p.Size)]
	if !ok {
		dims = pageDimensions[PageSizeA4]
	}
	width, height = dims[0], dims[1]
	if strings.ToLower(p.Orientation) == OrientationLandscape {
		width, height = height, width
	}
	return width, height
}

// FrameWidth returns the usable width between the left and right margins.
func (p PageSettings) FrameWidth() float64 {
	w, _ := p.Dimensions()
	return w - p.Margins.Left - p.Margins.Right
}

// Footer configures the page footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Text           string
	DocumentID     string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// isEmpty reports whether the footer would render nothing.
func (f *Footer) isEmpty() bool {
	return f == nil || (!f.ShowPageNumber && f.Text == "" && f.DocumentID == "")
}
