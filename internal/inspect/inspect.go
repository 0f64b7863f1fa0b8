// Package inspect reads back generated PDF files: signature, version,
// page count and document title.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Sentinel errors for inspection.
var (
	ErrNotPDF     = errors.New("not a PDF file")
	ErrUnreadable = errors.New("PDF structure unreadable")
)

// Signature is the magic prefix of every PDF file.
const Signature = "%PDF-"

// maxSampleRunes bounds the text sample taken from page one.
const maxSampleRunes = 80

// Info describes a PDF file.
type Info struct {
	Path    string
	Size    int64
	Version string // header version, e.g. "1.3"
	Pages   int
	Title   string // from the Info dictionary, may be empty
	Sample  string // start of page one's text, may be empty
}

// CheckSignature reports whether data starts with the PDF signature.
func CheckSignature(data []byte) error {
	if !bytes.HasPrefix(data, []byte(Signature)) {
		return ErrNotPDF
	}
	return nil
}

// File inspects the PDF at path. It fails with ErrNotPDF when the
// signature is missing and ErrUnreadable when the body cannot be parsed.
func File(path string) (info *Info, err error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotPDF, path)
	}

	header := make([]byte, 16)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	header = header[:n]
	if err := CheckSignature(header); err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("%w: %s: %v", ErrUnreadable, path, r)
		}
	}()

	reader, err := pdf.NewReader(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	info = &Info{
		Path:    path,
		Size:    st.Size(),
		Version: headerVersion(header),
		Pages:   reader.NumPage(),
		Title:   reader.Trailer().Key("Info").Key("Title").Text(),
	}
	if info.Pages > 0 {
		info.Sample = sample(reader.Page(1))
	}
	return info, nil
}

// headerVersion extracts "1.3" from "%PDF-1.3\n...".
func headerVersion(header []byte) string {
	rest := string(bytes.TrimPrefix(header, []byte(Signature)))
	if i := strings.IndexAny(rest, "\r\n \t%"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// sample returns the first words of a page, whitespace collapsed.
func sample(p pdf.Page) string {
	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	r := []rune(strings.Join(strings.Fields(text), " "))
	if len(r) > maxSampleRunes {
		r = r[:maxSampleRunes]
	}
	return string(r)
}

// String formats info the way the verify command prints it.
func (i *Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: PDF %s, %d page(s), %.1f Ko", i.Path, i.Version, i.Pages, float64(i.Size)/1024)
	if i.Title != "" {
		fmt.Fprintf(&b, ", title %q", i.Title)
	}
	return b.String()
}
