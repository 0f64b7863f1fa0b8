package pdfreport

import (
	"time"

	"github.com/alnah/go-pdfreport/internal/dateutil"
)

// FormatDate renders t with a token format (YYYY, MMMM, DD, ...) and month
// names in the given locale ("" = French).
func FormatDate(t time.Time, format, locale string) (string, error) {
	l, err := dateutil.ParseLocale(locale)
	if err != nil {
		return "", err
	}
	return dateutil.Format(t, format, l)
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto": t in YYYY-MM-DD format
//   - "auto:FORMAT": t in a custom format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset": a named preset (iso, european, us, long, report)
//   - any other value is returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time, locale string) (string, error) {
	l, err := dateutil.ParseLocale(locale)
	if err != nil {
		return "", err
	}
	return dateutil.ResolveDate(value, t, l)
}
