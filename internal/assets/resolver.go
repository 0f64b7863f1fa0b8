package assets

import "errors"

// Styles resolves style names against an optional override directory, then
// the embedded styles.
type Styles struct {
	dir *Dir // nil without assets.basePath
}

// NewStyles returns a resolver. An empty basePath uses embedded styles only.
func NewStyles(basePath string) (*Styles, error) {
	s := &Styles{}
	if basePath == "" {
		return s, nil
	}
	dir, err := OpenDir(basePath)
	if err != nil {
		return nil, err
	}
	s.dir = dir
	return s, nil
}

// HasOverrides reports whether an override directory is configured.
func (s *Styles) HasOverrides() bool {
	return s.dir != nil
}

// Resolve returns the stylesheet called name and where it was found.
// Only a missing override falls back; unreadable or escaping files fail.
func (s *Styles) Resolve(name string) (Style, error) {
	if s.dir != nil {
		css, err := s.dir.LoadStyle(name)
		if err == nil {
			return Style{Name: name, CSS: css, Origin: OriginCustom}, nil
		}
		if !errors.Is(err, ErrStyleNotFound) {
			return Style{}, err
		}
	}
	css, err := Embedded{}.LoadStyle(name)
	if err != nil {
		return Style{}, err
	}
	return Style{Name: name, CSS: css, Origin: OriginEmbedded}, nil
}

// LoadStyle implements StyleLoader.
func (s *Styles) LoadStyle(name string) (string, error) {
	st, err := s.Resolve(name)
	return st.CSS, err
}

var _ StyleLoader = (*Styles)(nil)
