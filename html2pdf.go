package pdfreport

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-pdfreport/internal/fileutil"
	"github.com/alnah/go-pdfreport/internal/process"
)

// Environment variables read when launching Chrome.
const (
	envBrowserBin = "ROD_BROWSER_BIN"
	envNoSandbox  = "ROD_NO_SANDBOX"
)

// footerFontFamily is the font stack of Chrome's footer template.
const footerFontFamily = "sans-serif"

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *printOptions) ([]byte, error)
	Close() error
}

var _ pdfRenderer = (*rodRenderer)(nil)

// printOptions holds the page geometry and footer for one print.
type printOptions struct {
	Page   PageSettings
	Footer *Footer
}

// chromeBackend renders documents through the HTML builder and headless Chrome.
type chromeBackend struct {
	html     *htmlBuilder
	renderer pdfRenderer
}

func newChromeBackend(timeout time.Duration, hb *htmlBuilder) *chromeBackend {
	return &chromeBackend{html: hb, renderer: newRodRenderer(timeout)}
}

// Render builds the HTML page, writes it to a temp file and prints it.
func (b *chromeBackend) Render(ctx context.Context, doc *Document) (*RenderResult, error) {
	page, err := b.html.Build(ctx, doc)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(page, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	data, err := b.renderer.RenderFromFile(ctx, tmpPath, &printOptions{Page: doc.Page, Footer: doc.Footer})
	if err != nil {
		return nil, err
	}
	return &RenderResult{PDF: data, HTML: []byte(page)}, nil
}

// Close releases browser resources.
func (b *chromeBackend) Close() error {
	if b.renderer != nil {
		return b.renderer.Close()
	}
	return nil
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	bin := os.Getenv(envBrowserBin)
	if bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv(envNoSandbox) != "" || bin != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// kill stops the Chrome process tree started by the launcher.
func (r *rodRenderer) kill() {
	if r.launcher == nil {
		return
	}
	process.KillProcessGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}

// Close releases browser resources and kills leftover Chrome processes.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.kill()
	return err
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it to PDF.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *printOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions converts page settings (points) to Chrome print options (inches).
func buildPDFOptions(opts *printOptions) *proto.PagePrintToPDF {
	page := DefaultPageSettings()
	var footer *Footer
	if opts != nil {
		page, footer = opts.Page, opts.Footer
	}

	w, h := page.Dimensions()
	m := page.Margins
	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(w / Inch),
		PaperHeight:       floatPtr(h / Inch),
		MarginTop:         floatPtr(m.Top / Inch),
		MarginBottom:      floatPtr(m.Bottom / Inch),
		MarginLeft:        floatPtr(m.Left / Inch),
		MarginRight:       floatPtr(m.Right / Inch),
		PrintBackground:   true,
		PreferCSSPageSize: false,
	}

	if !footer.isEmpty() {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = "<span></span>" // Empty header
		pdfOpts.FooterTemplate = buildFooterTemplate(footer, m)
	}

	return pdfOpts
}

// buildFooterTemplate generates an HTML template for Chrome's native footer.
// The page number uses Chrome's pageNumber and totalPages placeholders.
func buildFooterTemplate(f *Footer, m Margins) string {
	if f.isEmpty() {
		return "<span></span>"
	}

	var parts []string
	if f.ShowPageNumber {
		parts = append(parts, `<span class="pageNumber"></span>/<span class="totalPages"></span>`)
	}
	if f.Text != "" {
		parts = append(parts, html.EscapeString(f.Text))
	}
	if f.DocumentID != "" {
		parts = append(parts, html.EscapeString(f.DocumentID))
	}
	content := strings.Join(parts, " - ")

	textAlign := "right"
	switch strings.ToLower(f.Position) {
	case "left":
		textAlign = "left"
	case "center":
		textAlign = "center"
	}

	return fmt.Sprintf(`<div style="font-size: %s; font-family: %s; color: %s; width: 100%%; text-align: %s; padding: 0 %s 0 %s;">%s</div>`,
		cssPt(footerFontSize), footerFontFamily, footerColor, textAlign, cssPt(m.Right), cssPt(m.Left), content)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
