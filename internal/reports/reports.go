// Package reports defines the bundled reports. Each report is a fixed
// sequence of blocks; only the generation date varies between runs.
package reports

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-pdfreport"
	"github.com/alnah/go-pdfreport/internal/dateutil"
)

// ErrUnknownReport is returned by Lookup for names not in the registry.
var ErrUnknownReport = errors.New("unknown report")

// Params carries the values a report may vary on.
type Params struct {
	Now    time.Time // generation date; zero = time.Now()
	Locale string    // BCP 47 tag for month names; "" = dateutil.DefaultLocale
}

// Report is one bundled report.
type Report struct {
	Name        string // CLI name
	FileName    string // output file name
	Description string
	DoneLabel   string // first word group of the success line, e.g. "Rapport créé"
	build       func(env) *pdfreport.Document
}

// env is Params after defaults and locale resolution.
type env struct {
	now    time.Time
	locale dateutil.Locale
}

// date formats the generation date as "DD MMMM YYYY".
func (e env) date() string {
	s, err := dateutil.Format(e.now, dateutil.ReportDateFormat, e.locale)
	if err != nil {
		// ReportDateFormat is a constant; this only fires on a broken edit.
		panic(err)
	}
	return s
}

// Build returns a fresh document for p. Each call builds new blocks.
func (r Report) Build(p Params) (*pdfreport.Document, error) {
	loc, err := dateutil.ParseLocale(p.Locale)
	if err != nil {
		return nil, err
	}
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	doc := r.build(env{now: now, locale: loc})
	doc.Created = now
	return doc, nil
}

// DoneMessage is the line printed after a successful write.
func (r Report) DoneMessage(path string) string {
	return fmt.Sprintf("✅ %s : %s", r.DoneLabel, path)
}

// SizeMessage is the line printed after DoneMessage.
func SizeMessage(size int64) string {
	return fmt.Sprintf("\U0001F4C4 Taille : %.1f Ko", float64(size)/1024)
}

var registry = map[string]Report{
	annual.Name:       annual,
	installation.Name: installation,
}

// All returns every report sorted by name.
func All() []Report {
	out := make([]Report, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted report names.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.Name
	}
	return names
}

// Lookup finds a report by name (case-insensitive) or by output file name.
func Lookup(name string) (Report, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if r, ok := registry[key]; ok {
		return r, nil
	}
	for _, r := range registry {
		if r.FileName == key || strings.TrimSuffix(r.FileName, ".pdf") == key {
			return r, nil
		}
	}
	return Report{}, fmt.Errorf("%w: %q", ErrUnknownReport, name)
}
