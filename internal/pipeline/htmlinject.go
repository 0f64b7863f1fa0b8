package pipeline

import (
	"context"
	"errors"
	"strings"
)

// ErrNoHead is returned when a page has no </head> to inject styles before.
var ErrNoHead = errors.New("page has no </head>")

// StyleSheet is an ordered list of named CSS sections for a page built by
// WrapDocument. Sections keep their order; later rules win.
type StyleSheet struct {
	sections []styleSection
}

type styleSection struct {
	name string
	css  string
}

// Add appends a section. Empty CSS is skipped.
func (s *StyleSheet) Add(name, css string) *StyleSheet {
	if strings.TrimSpace(css) != "" {
		s.sections = append(s.sections, styleSection{name: name, css: css})
	}
	return s
}

// Len returns the number of non-empty sections.
func (s *StyleSheet) Len() int { return len(s.sections) }

// String joins the sections, each under a /* name */ marker.
func (s *StyleSheet) String() string {
	var b strings.Builder
	for _, sec := range s.sections {
		b.WriteString("/* ")
		b.WriteString(strings.ReplaceAll(sec.name, "*/", ""))
		b.WriteString(" */\n")
		b.WriteString(escapeStyleEnd(sec.css))
		if !strings.HasSuffix(sec.css, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Inject places one <style> element before </head>. A sheet with no
// sections returns page unchanged.
func (s *StyleSheet) Inject(ctx context.Context, page string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Len() == 0 {
		return page, nil
	}
	idx := strings.Index(strings.ToLower(page), "</head>")
	if idx < 0 {
		return "", ErrNoHead
	}
	return page[:idx] + "<style>\n" + s.String() + "</style>\n" + page[idx:], nil
}

// escapeStyleEnd escapes "</" so user CSS cannot end the <style> element early.
func escapeStyleEnd(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
