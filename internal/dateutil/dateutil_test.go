package dateutil

import (
	"errors"
	"testing"
	"time"
)

func mustLocale(t *testing.T, s string) Locale {
	t.Helper()
	l, err := ParseLocale(s)
	if err != nil {
		t.Fatalf("ParseLocale(%q) unexpected error: %v", s, err)
	}
	return l
}

// ---------------------------------------------------------------------------
// TestParseLocale - Tag Matching
// ---------------------------------------------------------------------------

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "empty defaults to french", input: "", want: "fr"},
		{name: "french", input: "fr", want: "fr"},
		{name: "regional french", input: "fr-CA", want: "fr"},
		{name: "underscore separator", input: "en_US", want: "en"},
		{name: "german", input: "de", want: "de"},
		{name: "spanish", input: "es-MX", want: "es"},
		{name: "unsupported falls back to french", input: "ja", want: "fr"},
		{name: "malformed", input: "not a locale!", wantErr: ErrUnknownLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLocale(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseLocale(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocale(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseLocale(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestSupportedLocales(t *testing.T) {
	t.Parallel()

	got := SupportedLocales()
	if len(got) == 0 || got[0] != DefaultLocale {
		t.Errorf("SupportedLocales() = %v, want %q first", got, DefaultLocale)
	}
}

// ---------------------------------------------------------------------------
// TestFormat - Tokens, Literals and Localized Months
// ---------------------------------------------------------------------------

func TestFormat(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.August, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		format  string
		locale  string
		want    string
		wantErr error
	}{
		{name: "report format in french", format: ReportDateFormat, locale: "fr", want: "05 août 2024"},
		{name: "report format in english", format: ReportDateFormat, locale: "en", want: "05 August 2024"},
		{name: "report format in german", format: ReportDateFormat, locale: "de", want: "05 August 2024"},
		{name: "iso", format: "YYYY-MM-DD", locale: "fr", want: "2024-08-05"},
		{name: "short year and month", format: "D/M/YY", locale: "fr", want: "5/8/24"},
		{name: "short month name", format: "D MMM YYYY", locale: "fr", want: "5 aoû 2024"},
		{name: "bracket literal", format: "[Day] D", locale: "fr", want: "Day 5"},
		{name: "other characters kept", format: "YYYY.MM", locale: "fr", want: "2024.08"},
		{name: "empty format", format: "", locale: "fr", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[oops", locale: "fr", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: "YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD", locale: "fr", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(date, tt.format, mustLocale(t, tt.locale))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Format(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Format(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormat_AllFrenchMonths(t *testing.T) {
	t.Parallel()

	fr := mustLocale(t, "fr")
	want := []string{"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"}

	for i, name := range want {
		d := time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		got, err := Format(d, "MMMM", fr)
		if err != nil {
			t.Fatalf("Format() unexpected error: %v", err)
		}
		if got != name {
			t.Errorf("month %d = %q, want %q", i+1, got, name)
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolveDate - Auto Syntax
// ---------------------------------------------------------------------------

func TestResolveDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "passthrough", value: "2024-12-31", want: "2024-12-31"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "auto", value: "auto", want: "2025-01-15"},
		{name: "auto upper case", value: "AUTO", want: "2025-01-15"},
		{name: "auto custom format", value: "auto:DD/MM/YYYY", want: "15/01/2025"},
		{name: "auto preset", value: "auto:european", want: "15/01/2025"},
		{name: "auto report preset", value: "auto:report", want: "15 janvier 2025"},
		{name: "auto without colon", value: "automatic", wantErr: ErrInvalidDateFormat},
		{name: "auto empty format", value: "auto:", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, date, mustLocale(t, "fr"))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveDate(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
