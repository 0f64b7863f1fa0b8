package pdfreport

// Notes:
// - Glyph coverage comes from the embedded Go fonts, so assertions only rely
//   on Latin-1 being covered and emoji not being covered
// - Fallback tests accept any listed replacement

import (
	"errors"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFontName - Base-14 Names
// ---------------------------------------------------------------------------

func TestParseFontName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    fontFace
		wantErr bool
	}{
		{FontHelvetica, fontFace{}, false},
		{FontHelveticaBold, fontFace{bold: true}, false},
		{"helvetica-oblique", fontFace{italic: true}, false},
		{FontHelveticaBoldOblique, fontFace{bold: true, italic: true}, false},
		{FontCourier, fontFace{mono: true}, false},
		{FontCourierBoldOblique, fontFace{mono: true, bold: true, italic: true}, false},
		{"Arial-Bold", fontFace{bold: true}, false},
		{"Times-Roman", fontFace{}, true},
	}

	for _, tt := range tests {
		got, err := parseFontName(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFont) {
				t.Errorf("parseFontName(%q) error = %v, want ErrUnknownFont", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseFontName(%q) = %+v, %v, want %+v", tt.name, got, err, tt.want)
		}
	}
}

func TestParagraphStyle_Defaults(t *testing.T) {
	t.Parallel()

	var s ParagraphStyle
	if s.fontSize() != DefaultFontSize {
		t.Errorf("fontSize() = %v, want %v", s.fontSize(), DefaultFontSize)
	}
	if s.leading() != 12 {
		t.Errorf("leading() = %v, want 12", s.leading())
	}
	if s.face() != (fontFace{}) {
		t.Errorf("face() = %+v, want regular", s.face())
	}

	body := BodyStyle()
	if body.FontSize != 10 || body.Leading != 12 || body.Name != "Normal" {
		t.Errorf("BodyStyle() = %+v", body)
	}
}

func TestAlignment_String(t *testing.T) {
	t.Parallel()

	if AlignJustify.String() != "justify" || AlignLeft.String() != "left" {
		t.Error("Alignment.String() mismatch")
	}
	if VAlignMiddle.String() != "middle" || VAlignBottom.String() != "bottom" {
		t.Error("VAlignment.String() mismatch")
	}
}

// ---------------------------------------------------------------------------
// TestGlyphMapper - Coverage and Fallbacks
// ---------------------------------------------------------------------------

func TestGlyphMapper_MapString(t *testing.T) {
	t.Parallel()

	m, err := newGlyphMapper()
	if err != nil {
		t.Fatalf("newGlyphMapper() unexpected error: %v", err)
	}

	if got := m.mapString(fontFace{}, "Énergie – 2,5 M€ à l'œil"); got != "Énergie – 2,5 M€ à l'œil" {
		t.Errorf("mapString() altered covered text: %q", got)
	}
	if got := m.mapString(fontFace{}, "a\tb\nc"); got != "a b c" {
		t.Errorf("mapString() = %q, want control whitespace as spaces", got)
	}

	got := []rune(m.mapString(fontFace{bold: true}, "✅"))
	if len(got) != 1 || !slices.Contains(glyphFallbacks['✅'], got[0]) {
		t.Errorf("mapString(check mark) = %q, want one of %q", string(got), string(glyphFallbacks['✅']))
	}

	if got := m.mapString(fontFace{}, "ok \U0001F600"); got != "ok " {
		t.Errorf("mapString() = %q, want uncovered emoji dropped", got)
	}
}

func TestMissingGlyphs(t *testing.T) {
	t.Parallel()

	missing, err := MissingGlyphs("Rapport créé \U0001F4C4 \U0001F4C4")
	if err != nil {
		t.Fatalf("MissingGlyphs() unexpected error: %v", err)
	}
	if len(missing) != 1 || missing[0] != '\U0001F4C4' {
		t.Errorf("MissingGlyphs() = %q, want only the page emoji once", string(missing))
	}
}

func TestLoadFonts(t *testing.T) {
	t.Parallel()

	faces, err := loadFonts()
	if err != nil {
		t.Fatalf("loadFonts() unexpected error: %v", err)
	}
	for _, f := range faceOrder {
		if _, ok := faces[f]; !ok {
			t.Errorf("face %+v not loaded", f)
		}
	}
}
