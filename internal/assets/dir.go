package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// stylesSubdir holds the stylesheets under a base path.
const stylesSubdir = "styles"

// Dir loads {base}/styles/{name}.css from disk.
type Dir struct {
	base string // absolute, symlinks resolved
}

// OpenDir checks that base is a readable directory and returns a loader for it.
func OpenDir(base string) (*Dir, error) {
	if base == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadBasePath)
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s does not exist", ErrBadBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrBadBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrBadBasePath, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadBasePath, err)
	}
	return &Dir{base: abs}, nil
}

// Base returns the resolved base directory.
func (d *Dir) Base() string { return d.base }

// LoadStyle reads the stylesheet called name. A styles/{name}.css symlink
// pointing outside the base directory is refused.
func (d *Dir) LoadStyle(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	path := filepath.Join(d.base, stylesSubdir, name+".css")
	if real, err := filepath.EvalSymlinks(path); err == nil {
		if !strings.HasPrefix(real, d.base+string(filepath.Separator)) {
			return "", fmt.Errorf("%w: %s", ErrOutsideBasePath, name)
		}
		path = real
	}

	css, err := os.ReadFile(path) // #nosec G304 -- name checked, path contained
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrStyleRead, name, err)
	}
	return string(css), nil
}

var _ StyleLoader = (*Dir)(nil)
