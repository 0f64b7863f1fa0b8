package pdfreport

// Notes:
// - PageSettings: validation, dimensions per size and orientation, frame width
// - Footer: position validation and nil handling
// - Validation is case-insensitive and never mutates its receiver

import (
	"errors"
	"math"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPageSettings_Validate - Page Settings Validation
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    PageSettings
		wantErr error
	}{
		{name: "default", page: DefaultPageSettings()},
		{name: "upper case size", page: PageSettings{Size: "A4", Orientation: "Portrait"}},
		{name: "letter landscape", page: PageSettings{Size: PageSizeLetter, Orientation: OrientationLandscape}},
		{name: "legal", page: PageSettings{Size: PageSizeLegal, Orientation: OrientationPortrait}},
		{name: "unknown size", page: PageSettings{Size: "a5", Orientation: OrientationPortrait}, wantErr: ErrInvalidPageSize},
		{name: "empty size", page: PageSettings{Orientation: OrientationPortrait}, wantErr: ErrInvalidPageSize},
		{name: "bad orientation", page: PageSettings{Size: PageSizeA4, Orientation: "diagonal"}, wantErr: ErrInvalidOrientation},
		{
			name:    "negative margin",
			page:    PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margins: Margins{Top: -1}},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin too large",
			page:    PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margins: UniformMargins(MaxMargin + 1)},
			wantErr: ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			before := tt.page
			err := tt.page.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
			if before != tt.page {
				t.Error("Validate() mutated the settings")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPageSettings_Dimensions - Sizes and Orientation
// ---------------------------------------------------------------------------

func TestPageSettings_Dimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		page          PageSettings
		wantW, wantH  float64
		wantFrameWide float64
	}{
		{"a4 portrait", DefaultPageSettings(), 595.2756, 841.8898, 595.2756 - 4*Cm},
		{"a4 landscape", PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape}, 841.8898, 595.2756, 841.8898},
		{"letter", PageSettings{Size: PageSizeLetter, Margins: UniformMargins(Inch)}, 612, 792, 612 - 2*Inch},
		{"unknown falls back to a4", PageSettings{Size: "tabloid"}, 595.2756, 841.8898, 595.2756},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, h := tt.page.Dimensions()
			if math.Abs(w-tt.wantW) > 1e-6 || math.Abs(h-tt.wantH) > 1e-6 {
				t.Errorf("Dimensions() = %v x %v, want %v x %v", w, h, tt.wantW, tt.wantH)
			}
			if fw := tt.page.FrameWidth(); math.Abs(fw-tt.wantFrameWide) > 1e-6 {
				t.Errorf("FrameWidth() = %v, want %v", fw, tt.wantFrameWide)
			}
		})
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	if math.Abs(Cm-28.3465) > 1e-3 {
		t.Errorf("Cm = %v", Cm)
	}
	if math.Abs(10*Mm-Cm) > 1e-9 {
		t.Errorf("10mm = %v, want %v", 10*Mm, Cm)
	}
	// A4 is 21 x 29.7 cm.
	w, h := DefaultPageSettings().Dimensions()
	if math.Abs(w-21*Cm) > 0.01 || math.Abs(h-29.7*Cm) > 0.01 {
		t.Errorf("A4 = %v x %v", w/Cm, h/Cm)
	}
}

// ---------------------------------------------------------------------------
// TestFooter_Validate - Footer Validation
// ---------------------------------------------------------------------------

func TestFooter_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		footer  *Footer
		wantErr error
	}{
		{name: "nil footer", footer: nil},
		{name: "empty position", footer: &Footer{Text: "x"}},
		{name: "left", footer: &Footer{Position: "left"}},
		{name: "center upper case", footer: &Footer{Position: "CENTER"}},
		{name: "right", footer: &Footer{Position: "right"}},
		{name: "invalid", footer: &Footer{Position: "top"}, wantErr: ErrInvalidFooterPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.footer.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestFooter_isEmpty(t *testing.T) {
	t.Parallel()

	var nilFooter *Footer
	if !nilFooter.isEmpty() {
		t.Error("nil footer should be empty")
	}
	if !(&Footer{Position: "left"}).isEmpty() {
		t.Error("footer with only a position should be empty")
	}
	if (&Footer{DocumentID: "x"}).isEmpty() {
		t.Error("footer with a document ID should not be empty")
	}
}
