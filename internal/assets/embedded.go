package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css
var embedded embed.FS

// Embedded loads the styles compiled into the binary.
type Embedded struct{}

// LoadStyle returns the embedded stylesheet called name.
func (Embedded) LoadStyle(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	css, err := embedded.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(css), nil
}

// StyleNames lists the embedded style names, sorted.
func StyleNames() []string {
	entries, err := fs.ReadDir(embedded, "styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".css"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

var _ StyleLoader = Embedded{}
