package pdfreport

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"
)

// PDF font families registered with fpdf.
const (
	familySans = "gosans"
	familyMono = "gomono"
)

// glyphFallbacks lists replacements for runes the Go fonts do not cover,
// tried in order. Runes with no covered replacement are dropped.
var glyphFallbacks = map[rune][]rune{
	'\u2705': {'\u2713', '\u221a', '+'}, // white heavy check mark
	'\u2714': {'\u2713', '\u221a', '+'}, // heavy check mark
	'\u2713': {'\u221a', '+'},           // check mark
	'\u274c': {'\u2717', '\u00d7', 'x'}, // cross mark
	'\u2716': {'\u2717', '\u00d7', 'x'}, // heavy multiplication x
	'\u26a0': {'!'},                     // warning sign
	'\u2192': {'>'},                     // rightwards arrow
	'\u2022': {'\u00b7', '-'},           // bullet
	'\u2026': {'.'},                     // horizontal ellipsis
	'\u202f': {' '},                     // narrow no-break space
	'\u00a0': {' '},                     // no-break space
}

// fontData holds one TrueType face as raw bytes and parsed form.
type fontData struct {
	ttf  []byte
	font *sfnt.Font
}

// faceOrder fixes font registration order (font object numbering).
var faceOrder = []fontFace{
	{}, {bold: true}, {italic: true}, {bold: true, italic: true},
	{mono: true}, {mono: true, bold: true}, {mono: true, italic: true}, {mono: true, bold: true, italic: true},
}

var (
	fontsOnce sync.Once
	fontsErr  error
	fontFaces map[fontFace]fontData
)

// loadFonts parses the embedded Go fonts once.
func loadFonts() (map[fontFace]fontData, error) {
	fontsOnce.Do(func() {
		raw := map[fontFace][]byte{
			{}:                                     goregular.TTF,
			{bold: true}:                           gobold.TTF,
			{italic: true}:                         goitalic.TTF,
			{bold: true, italic: true}:             gobolditalic.TTF,
			{mono: true}:                           gomono.TTF,
			{mono: true, bold: true}:               gomonobold.TTF,
			{mono: true, italic: true}:             gomonoitalic.TTF,
			{mono: true, bold: true, italic: true}: gomonobolditalic.TTF,
		}
		faces := make(map[fontFace]fontData, len(raw))
		for face, ttf := range raw {
			f, err := sfnt.Parse(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("%w: parsing font %s: %v", ErrPDFGeneration, face.family()+face.style(), err)
				return
			}
			faces[face] = fontData{ttf: ttf, font: f}
		}
		fontFaces = faces
	})
	return fontFaces, fontsErr
}

// family returns the fpdf family name.
func (f fontFace) family() string {
	if f.mono {
		return familyMono
	}
	return familySans
}

// style returns the fpdf style string ("", "B", "I", "BI").
func (f fontFace) style() string {
	s := ""
	if f.bold {
		s += "B"
	}
	if f.italic {
		s += "I"
	}
	return s
}

// registerFonts adds every embedded face to pdf as a UTF-8 font.
func registerFonts(pdf *fpdf.Fpdf) error {
	faces, err := loadFonts()
	if err != nil {
		return err
	}
	for _, face := range faceOrder {
		pdf.AddUTF8FontFromBytes(face.family(), face.style(), faces[face].ttf)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("%w: registering fonts: %v", ErrPDFGeneration, err)
	}
	return nil
}

// glyphMapper replaces runes a face cannot draw.
// Not safe for concurrent use; one mapper serves one render.
type glyphMapper struct {
	faces   map[fontFace]fontData
	buf     sfnt.Buffer
	covered map[fontFace]map[rune]bool
}

func newGlyphMapper() (*glyphMapper, error) {
	faces, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &glyphMapper{faces: faces, covered: make(map[fontFace]map[rune]bool)}, nil
}

// has reports whether face has a glyph for r.
func (m *glyphMapper) has(face fontFace, r rune) bool {
	cache := m.covered[face]
	if cache == nil {
		cache = make(map[rune]bool)
		m.covered[face] = cache
	}
	if ok, seen := cache[r]; seen {
		return ok
	}
	data, found := m.faces[face]
	ok := false
	if found {
		idx, err := data.font.GlyphIndex(&m.buf, r)
		ok = err == nil && idx != 0
	}
	cache[r] = ok
	return ok
}

// mapString NFC-normalizes s and substitutes or drops runes missing from face.
func (m *glyphMapper) mapString(face fontFace, s string) string {
	s = norm.NFC.String(s)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			out = append(out, ' ')
			continue
		}
		if m.has(face, r) {
			out = append(out, r)
			continue
		}
		if alt, ok := m.fallback(face, r); ok {
			out = append(out, alt)
			continue
		}
		if unicode.IsSpace(r) {
			out = append(out, ' ')
		}
	}
	return string(out)
}

func (m *glyphMapper) fallback(face fontFace, r rune) (rune, bool) {
	for _, alt := range glyphFallbacks[r] {
		if m.has(face, alt) {
			return alt, true
		}
	}
	return 0, false
}

// MissingGlyphs returns the distinct runes of s that the embedded regular
// face cannot draw, in order of first appearance. Those runes are replaced
// or dropped by the native backend.
func MissingGlyphs(s string) ([]rune, error) {
	m, err := newGlyphMapper()
	if err != nil {
		return nil, err
	}
	var missing []rune
	seen := make(map[rune]bool)
	for _, r := range norm.NFC.String(s) {
		if unicode.IsSpace(r) || seen[r] {
			continue
		}
		seen[r] = true
		if !m.has(fontFace{}, r) {
			missing = append(missing, r)
		}
	}
	return missing, nil
}
