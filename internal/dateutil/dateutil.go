// Package dateutil formats dates with user-friendly tokens and localized
// month names.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Sentinel errors for date formatting.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrUnknownLocale     = errors.New("unknown locale")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// ReportDateFormat is the generation date format printed on report title pages.
const ReportDateFormat = "DD MMMM YYYY"

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "fr"

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"report":   ReportDateFormat,
}

// tokens is ordered by length descending for greedy matching.
var tokens = []string{"YYYY", "MMMM", "MMM", "YY", "MM", "DD", "M", "D"}

// monthNames holds full month names per supported base language.
var monthNames = map[language.Base][12]string{
	mustBase("fr"): {"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	mustBase("en"): {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	mustBase("de"): {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	mustBase("es"): {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

// supported lists the locales in matcher preference order; fr is the fallback.
var supported = []language.Tag{language.French, language.English, language.German, language.Spanish}

var matcher = language.NewMatcher(supported)

func mustBase(s string) language.Base {
	return language.MustParseBase(s)
}

// Locale is a resolved formatting locale.
type Locale struct {
	tag    language.Tag
	months [12]string
}

// String returns the BCP 47 tag.
func (l Locale) String() string {
	return l.tag.String()
}

// SupportedLocales returns the tags that have month names.
func SupportedLocales() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		out[i] = t.String()
	}
	return out
}

// ParseLocale resolves a BCP 47 tag ("fr", "fr-CA", "en_US") to the closest
// supported locale. An empty string yields DefaultLocale. A well-formed tag
// with no close match falls back to French; a malformed tag is an error.
func ParseLocale(s string) (Locale, error) {
	if s == "" {
		s = DefaultLocale
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
	_, idx, _ := matcher.Match(tag)
	best := supported[idx]
	base, _ := best.Base()
	return Locale{tag: best, months: monthNames[base]}, nil
}

// month returns the localized full month name.
func (l Locale) month(m time.Month) string {
	if l.months[0] == "" {
		return m.String()
	}
	return l.months[m-1]
}

// shortMonth returns the first three letters of the localized name.
func (l Locale) shortMonth(m time.Month) string {
	r := []rune(l.month(m))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// Format renders t with the given token format in locale l.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D.
// Brackets escape literal text: [Date] is kept as "Date".
// Other characters are kept as they are.
func Format(t time.Time, format string, l Locale) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		tok := matchToken(format[i:])
		if tok == "" {
			b.WriteByte(format[i])
			i++
			continue
		}
		b.WriteString(render(t, tok, l))
		i += len(tok)
	}

	return b.String(), nil
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func render(t time.Time, tok string, l Locale) string {
	switch tok {
	case "YYYY":
		return strconv.Itoa(t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return l.month(t.Month())
	case "MMM":
		return l.shortMonth(t.Month())
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	default: // "D"
		return strconv.Itoa(t.Day())
	}
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto": current date in YYYY-MM-DD format
//   - "auto:FORMAT": current date in a custom format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset": a named preset (iso, european, us, long, report)
//   - any other value is returned unchanged
func ResolveDate(value string, t time.Time, l Locale) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}
	if lower == "auto" {
		return Format(t, DefaultDateFormat, l)
	}
	if !strings.HasPrefix(lower, "auto:") {
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	// Keep the original case: tokens are upper-case.
	formatPart := value[len("auto:"):]
	if formatPart == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
		formatPart = preset
	}
	return Format(t, formatPart, l)
}
