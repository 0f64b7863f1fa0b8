package pdfreport

import (
	"context"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-pdfreport/internal/pipeline"
)

// Layout constants in points.
const (
	descentRatio = 0.21  // share of the font size below the baseline
	widthEpsilon = 0.001 // tolerance for fit tests
)

// segment is a piece of a word drawn with one face.
type segment struct {
	text   string
	face   fontFace
	strike bool
	width  float64
}

// token is an unbreakable word, or a forced break when brk is set.
type token struct {
	segs  []segment
	width float64
	brk   bool
}

// textLine is one output line of a paragraph.
type textLine struct {
	words  []token
	width  float64 // natural width with single spaces
	forced bool    // last line or ends with a forced break: never justified
}

// textBlock is a paragraph broken into lines for a given width.
type textBlock struct {
	lines   []textLine
	size    float64
	leading float64
	color   Color
	align   Alignment
	spaceW  float64
	width   float64
}

func (tb *textBlock) height() float64 {
	return float64(len(tb.lines)) * tb.leading
}

// breakLines fills lines greedily. A word wider than maxW gets a line of its own.
func breakLines(toks []token, maxW, spaceW float64) []textLine {
	var lines []textLine
	var cur textLine
	open := false
	for _, t := range toks {
		if t.brk {
			cur.forced = true
			lines = append(lines, cur)
			cur = textLine{}
			open = false
			continue
		}
		if len(cur.words) > 0 && cur.width+spaceW+t.width > maxW+widthEpsilon {
			lines = append(lines, cur)
			cur = textLine{}
		}
		if len(cur.words) > 0 {
			cur.width += spaceW
		}
		cur.words = append(cur.words, t)
		cur.width += t.width
		open = true
	}
	if open {
		cur.forced = true
		lines = append(lines, cur)
	}
	return lines
}

// baselineOffset returns the distance from a line's top to its baseline,
// centring the glyphs vertically within the leading.
func baselineOffset(size, leading float64) float64 {
	return leading - (leading-size)/2 - size*descentRatio
}

// runFace applies a run's emphasis to the paragraph's base face.
func runFace(base fontFace, r pipeline.Run) fontFace {
	f := base
	if r.Bold {
		f = f.withBold()
	}
	if r.Italic {
		f = f.withItalic()
	}
	if r.Code {
		f = f.withMono()
	}
	return f
}

type fontKey struct {
	face fontFace
	size float64
}

// layout flows document blocks onto fpdf pages.
type layout struct {
	pdf    *fpdf.Fpdf
	glyphs *glyphMapper

	left, top, bottom, frameW float64

	y         float64
	atTop     bool    // nothing placed on the current page yet
	prevAfter float64 // SpaceAfter already applied by the previous block
	pages     int
	font      fontKey
}

func newLayout(pdf *fpdf.Fpdf, glyphs *glyphMapper, page PageSettings) *layout {
	_, h := page.Dimensions()
	return &layout{
		pdf:    pdf,
		glyphs: glyphs,
		left:   page.Margins.Left,
		top:    page.Margins.Top,
		bottom: h - page.Margins.Bottom,
		frameW: page.FrameWidth(),
	}
}

func (l *layout) newPage() {
	l.pdf.AddPage()
	l.pages++
	l.y = l.top
	l.atTop = true
	l.prevAfter = 0
	l.font = fontKey{}
}

func (l *layout) fits(h float64) bool {
	return l.y+h <= l.bottom+widthEpsilon
}

func (l *layout) setFont(face fontFace, size float64) {
	k := fontKey{face: face, size: size}
	if l.font == k {
		return
	}
	l.pdf.SetFont(face.family(), face.style(), size)
	l.font = k
}

func (l *layout) textWidth(face fontFace, size float64, s string) float64 {
	l.setFont(face, size)
	return l.pdf.GetStringWidth(s)
}

// flow places every block in order.
func (l *layout) flow(ctx context.Context, blocks []Block) error {
	l.newPage()
	for i, b := range blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		var next Block
		if i+1 < len(blocks) {
			next = blocks[i+1]
		}
		switch v := b.(type) {
		case *Heading:
			l.placeHeading(v, next)
		case *Paragraph:
			l.placeText(l.layoutText(v.Text, v.Style, l.frameW), v.Style)
		case *Spacer:
			l.placeSpacer(v.Height)
		case *PageBreak:
			if !l.atTop {
				l.newPage()
			}
		case *Table:
			tl, err := l.layoutTable(v)
			if err != nil {
				return err
			}
			l.placeTable(tl)
		}
		if err := l.pdf.Error(); err != nil {
			return err
		}
	}
	return nil
}

// tokenize splits runs into words, measuring each segment.
// Spaces inside code runs do not break.
func (l *layout) tokenize(runs []pipeline.Run, base fontFace, size float64) []token {
	var toks []token
	var word []segment

	endWord := func() {
		if len(word) == 0 {
			return
		}
		t := token{segs: word}
		for i := range t.segs {
			t.segs[i].width = l.textWidth(t.segs[i].face, size, t.segs[i].text)
			t.width += t.segs[i].width
		}
		toks = append(toks, t)
		word = nil
	}

	for _, run := range runs {
		if run.Break {
			endWord()
			toks = append(toks, token{brk: true})
			continue
		}
		face := runFace(base, run)
		for _, r := range l.glyphs.mapString(face, run.Text) {
			if r == ' ' && !run.Code {
				endWord()
				continue
			}
			if n := len(word); n > 0 && word[n-1].face == face && word[n-1].strike == run.Strike {
				word[n-1].text += string(r)
				continue
			}
			word = append(word, segment{text: string(r), face: face, strike: run.Strike})
		}
	}
	endWord()
	return toks
}

// layoutText parses and breaks paragraph markup for width.
func (l *layout) layoutText(text string, style ParagraphStyle, width float64) *textBlock {
	size := style.fontSize()
	base := style.face()
	toks := l.tokenize(pipeline.ParseRuns(text), base, size)
	spaceW := l.textWidth(base, size, " ")
	return &textBlock{
		lines:   breakLines(toks, width, spaceW),
		size:    size,
		leading: style.leading(),
		color:   style.TextColor,
		align:   style.Alignment,
		spaceW:  spaceW,
		width:   width,
	}
}

// plainTextBlock lays out literal text (no markup) as a single line per
// source line, used for headings.
func (l *layout) plainTextBlock(text string, style ParagraphStyle, width float64) *textBlock {
	var runs []pipeline.Run
	for i, line := range strings.Split(pipeline.NormalizeText(text), "\n") {
		if i > 0 {
			runs = append(runs, pipeline.Run{Break: true})
		}
		runs = append(runs, pipeline.Run{Text: line})
	}
	size := style.fontSize()
	base := style.face()
	spaceW := l.textWidth(base, size, " ")
	return &textBlock{
		lines:   breakLines(l.tokenize(runs, base, size), width, spaceW),
		size:    size,
		leading: style.leading(),
		color:   style.TextColor,
		align:   style.Alignment,
		spaceW:  spaceW,
		width:   width,
	}
}

// spaceBefore returns the extra gap owed before a block. The previous
// block's SpaceAfter is already applied, so only the excess is added.
func (l *layout) spaceBefore(before float64) float64 {
	if l.atTop {
		return 0
	}
	return math.Max(before-l.prevAfter, 0)
}

// placeText draws a paragraph, splitting lines across pages.
func (l *layout) placeText(tb *textBlock, style ParagraphStyle) {
	l.y += l.spaceBefore(style.SpaceBefore)
	for _, ln := range tb.lines {
		if !l.fits(tb.leading) && !l.atTop {
			l.newPage()
		}
		l.drawTextLine(tb, ln, l.left, l.y+baselineOffset(tb.size, tb.leading))
		l.y += tb.leading
		l.atTop = false
	}
	l.y += style.SpaceAfter
	l.prevAfter = style.SpaceAfter
}

// placeHeading keeps the heading on the same page as the first line of next.
func (l *layout) placeHeading(h *Heading, next Block) {
	tb := l.plainTextBlock(h.Text, h.Style, l.frameW)
	need := l.spaceBefore(h.Style.SpaceBefore) + tb.height() + l.leadIn(next, h.Style.SpaceAfter)
	if !l.atTop && !l.fits(need) {
		l.newPage()
	}
	l.setFont(h.Style.face(), tb.size)
	l.pdf.Bookmark(pipeline.NormalizeText(h.Text), h.Level-1, l.y+l.spaceBefore(h.Style.SpaceBefore))
	l.placeText(tb, h.Style)
}

// leadIn returns the height next needs to show its first line after a block
// with the given SpaceAfter.
func (l *layout) leadIn(next Block, after float64) float64 {
	switch v := next.(type) {
	case *Paragraph:
		return math.Max(after, v.Style.SpaceBefore) + v.Style.leading()
	case *Heading:
		return math.Max(after, v.Style.SpaceBefore) + v.Style.leading()
	case *Table:
		tl, err := l.layoutTable(v)
		if err != nil || len(tl.rowH) == 0 {
			return after
		}
		return after + tl.rowH[0]
	}
	return after
}

// placeSpacer adds vertical space. A spacer that does not fit ends the page
// and is dropped.
func (l *layout) placeSpacer(h float64) {
	if !l.fits(h) {
		if !l.atTop {
			l.newPage()
		}
		return
	}
	l.y += h
	l.atTop = false
	l.prevAfter = 0
}

// drawTextLine draws one line with its top-left corner implied by x0 and baseline.
func (l *layout) drawTextLine(tb *textBlock, ln textLine, x0, baseline float64) {
	x := x0
	gap := tb.spaceW
	switch tb.align {
	case AlignCenter:
		x += (tb.width - ln.width) / 2
	case AlignRight:
		x += tb.width - ln.width
	case AlignJustify:
		if !ln.forced && len(ln.words) > 1 {
			gap += (tb.width - ln.width) / float64(len(ln.words)-1)
		}
	}

	r, g, b := tb.color.ints()
	l.pdf.SetTextColor(r, g, b)
	for i, w := range ln.words {
		if i > 0 {
			x += gap
		}
		for _, s := range w.segs {
			l.setFont(s.face, tb.size)
			l.pdf.Text(x, baseline, s.text)
			if s.strike {
				y := baseline - tb.size*0.3
				l.pdf.SetDrawColor(r, g, b)
				l.pdf.SetLineWidth(tb.size / 18)
				l.pdf.Line(x, y, x+s.width, y)
			}
			x += s.width
		}
	}
}

// cellContent is a measured table cell.
type cellContent struct {
	lines  []string // text cell, one entry per source line
	widths []float64
	face   fontFace
	size   float64
	para   *textBlock // paragraph cell
	height float64
}

// tableLayout is a table measured against the frame.
type tableLayout struct {
	rt    *resolvedTable
	colW  []float64
	rowH  []float64
	cells [][]cellContent
	width float64
}

func (l *layout) layoutTable(t *Table) (*tableLayout, error) {
	rt, err := resolveTableStyle(t)
	if err != nil {
		return nil, err
	}
	tl := &tableLayout{
		rt:    rt,
		colW:  t.columnWidths(l.frameW),
		rowH:  make([]float64, t.NumRows()),
		cells: make([][]cellContent, t.NumRows()),
	}
	for _, w := range tl.colW {
		tl.width += w
	}

	for r, row := range t.Rows {
		tl.cells[r] = make([]cellContent, len(row))
		measured := 0.0
		for c, cell := range row {
			s := rt.cells[r][c]
			var cc cellContent
			if cell.Paragraph != nil {
				avail := tl.colW[c] - s.PadLeft - s.PadRight
				cc.para = l.layoutText(cell.Paragraph.Text, cell.Paragraph.Style, avail)
				cc.height = cc.para.height()
			} else {
				face, _ := parseFontName(s.FontName)
				cc.face, cc.size = face, s.FontSize
				for _, line := range strings.Split(cell.Text, "\n") {
					line = l.glyphs.mapString(face, line)
					cc.lines = append(cc.lines, line)
					cc.widths = append(cc.widths, l.textWidth(face, s.FontSize, line))
				}
				cc.height = float64(len(cc.lines)) * s.leading()
			}
			tl.cells[r][c] = cc
			measured = math.Max(measured, s.PadTop+cc.height+s.PadBottom)
		}
		if fixed := t.fixedRowHeight(r); fixed > 0 {
			tl.rowH[r] = fixed
		} else {
			tl.rowH[r] = measured
		}
	}
	return tl, nil
}

// placeTable draws a centred table. Rows never split; a row that does not
// fit moves to the next page.
func (l *layout) placeTable(tl *tableLayout) {
	x0 := l.left + (l.frameW-tl.width)/2
	tops := make([]float64, len(tl.rowH))
	from := 0
	for r, h := range tl.rowH {
		if !l.fits(h) && !l.atTop {
			l.drawEdges(tl, from, r, x0, tops)
			l.newPage()
			from = r
		}
		tops[r] = l.y
		l.drawRow(tl, r, x0, l.y)
		l.y += h
		l.atTop = false
	}
	l.drawEdges(tl, from, len(tl.rowH), x0, tops)
	l.prevAfter = 0
}

// drawRow paints backgrounds and text of row r.
func (l *layout) drawRow(tl *tableLayout, r int, x0, top float64) {
	h := tl.rowH[r]
	x := x0
	for c, w := range tl.colW {
		s := tl.rt.cells[r][c]
		if s.HasBackground {
			cr, cg, cb := s.Background.ints()
			l.pdf.SetFillColor(cr, cg, cb)
			l.pdf.Rect(x, top, w, h, "F")
		}
		l.drawCell(tl.cells[r][c], s, x, top, w, h)
		x += w
	}
}

func (l *layout) drawCell(cc cellContent, s cellStyle, x, top, w, h float64) {
	var y0 float64
	switch s.VAlign {
	case VAlignTop:
		y0 = top + s.PadTop
	case VAlignMiddle:
		y0 = top + (h+s.PadTop-s.PadBottom-cc.height)/2
	default:
		y0 = top + h - s.PadBottom - cc.height
	}

	if cc.para != nil {
		for i, ln := range cc.para.lines {
			baseline := y0 + float64(i)*cc.para.leading + baselineOffset(cc.para.size, cc.para.leading)
			l.drawTextLine(cc.para, ln, x+s.PadLeft, baseline)
		}
		return
	}

	lead := s.leading()
	cr, cg, cb := s.TextColor.ints()
	l.pdf.SetTextColor(cr, cg, cb)
	for i, line := range cc.lines {
		if line == "" {
			continue
		}
		var tx float64
		switch s.Align {
		case AlignCenter:
			tx = x + s.PadLeft + (w-s.PadLeft-s.PadRight-cc.widths[i])/2
		case AlignRight:
			tx = x + w - s.PadRight - cc.widths[i]
		default:
			tx = x + s.PadLeft
		}
		l.setFont(cc.face, cc.size)
		l.pdf.Text(tx, y0+float64(i)*lead+baselineOffset(cc.size, lead), line)
	}
}

// drawEdges strokes borders for rows from..to-1 drawn on the current page.
func (l *layout) drawEdges(tl *tableLayout, from, to int, x0 float64, tops []float64) {
	if to <= from {
		return
	}
	l.pdf.SetLineCapStyle("square")
	for r := from; r <= to; r++ {
		y := tops[to-1] + tl.rowH[to-1]
		if r < to {
			y = tops[r]
		}
		x := x0
		for c, w := range tl.colW {
			l.stroke(tl.rt.hEdges[r][c], x, y, x+w, y)
			x += w
		}
	}
	for r := from; r < to; r++ {
		x := x0
		for c := 0; c <= len(tl.colW); c++ {
			l.stroke(tl.rt.vEdges[r][c], x, tops[r], x, tops[r]+tl.rowH[r])
			if c < len(tl.colW) {
				x += tl.colW[c]
			}
		}
	}
}

func (l *layout) stroke(e edge, x1, y1, x2, y2 float64) {
	if e.Width <= 0 {
		return
	}
	r, g, b := e.Color.ints()
	l.pdf.SetDrawColor(r, g, b)
	l.pdf.SetLineWidth(e.Width)
	l.pdf.Line(x1, y1, x2, y2)
}
