package pdfreport

import "fmt"

// CellRef addresses a table cell as (column, row).
// Negative indices count from the end: -1 is the last column or row.
type CellRef struct {
	Col int
	Row int
}

// At returns a CellRef.
func At(col, row int) CellRef {
	return CellRef{Col: col, Row: row}
}

// StyleOp is the kind of a table style command.
type StyleOp int

// Table style operations.
const (
	OpBackground StyleOp = iota
	OpTextColor
	OpFontName
	OpFontSize
	OpLeading
	OpAlign
	OpVAlign
	OpLeftPadding
	OpRightPadding
	OpTopPadding
	OpBottomPadding
	OpGrid
	OpInnerGrid
	OpBox
	OpLineAbove
	OpLineBelow
	OpLineBefore
	OpLineAfter
)

var styleOpNames = map[StyleOp]string{
	OpBackground:    "BACKGROUND",
	OpTextColor:     "TEXTCOLOR",
	OpFontName:      "FONTNAME",
	OpFontSize:      "FONTSIZE",
	OpLeading:       "LEADING",
	OpAlign:         "ALIGN",
	OpVAlign:        "VALIGN",
	OpLeftPadding:   "LEFTPADDING",
	OpRightPadding:  "RIGHTPADDING",
	OpTopPadding:    "TOPPADDING",
	OpBottomPadding: "BOTTOMPADDING",
	OpGrid:          "GRID",
	OpInnerGrid:     "INNERGRID",
	OpBox:           "BOX",
	OpLineAbove:     "LINEABOVE",
	OpLineBelow:     "LINEBELOW",
	OpLineBefore:    "LINEBEFORE",
	OpLineAfter:     "LINEAFTER",
}

// String returns the conventional command name.
func (op StyleOp) String() string {
	if s, ok := styleOpNames[op]; ok {
		return s
	}
	return fmt.Sprintf("StyleOp(%d)", int(op))
}

// StyleCommand applies one formatting rule to the rectangle From..To (inclusive).
// Only the fields relevant to Op are read.
type StyleCommand struct {
	Op     StyleOp
	From   CellRef
	To     CellRef
	Color  Color
	Font   string
	Value  float64 // size, leading, padding or line width
	Align  Alignment
	VAlign VAlignment
}

// Background fills cells.
func Background(from, to CellRef, c Color) StyleCommand {
	return StyleCommand{Op: OpBackground, From: from, To: to, Color: c}
}

// TextColor sets the text color.
func TextColor(from, to CellRef, c Color) StyleCommand {
	return StyleCommand{Op: OpTextColor, From: from, To: to, Color: c}
}

// FontName sets the font by base-14 name.
func FontName(from, to CellRef, name string) StyleCommand {
	return StyleCommand{Op: OpFontName, From: from, To: to, Font: name}
}

// FontSize sets the font size. The cell leading is not changed; it stays at
// 12pt unless set with Leading.
func FontSize(from, to CellRef, size float64) StyleCommand {
	return StyleCommand{Op: OpFontSize, From: from, To: to, Value: size}
}

// Leading sets the line height.
func Leading(from, to CellRef, leading float64) StyleCommand {
	return StyleCommand{Op: OpLeading, From: from, To: to, Value: leading}
}

// Align sets horizontal alignment.
func Align(from, to CellRef, a Alignment) StyleCommand {
	return StyleCommand{Op: OpAlign, From: from, To: to, Align: a}
}

// VAlign sets vertical alignment.
func VAlign(from, to CellRef, v VAlignment) StyleCommand {
	return StyleCommand{Op: OpVAlign, From: from, To: to, VAlign: v}
}

// LeftPadding sets the left padding.
func LeftPadding(from, to CellRef, v float64) StyleCommand {
	return StyleCommand{Op: OpLeftPadding, From: from, To: to, Value: v}
}

// RightPadding sets the right padding.
func RightPadding(from, to CellRef, v float64) StyleCommand {
	return StyleCommand{Op: OpRightPadding, From: from, To: to, Value: v}
}

// TopPadding sets the top padding.
func TopPadding(from, to CellRef, v float64) StyleCommand {
	return StyleCommand{Op: OpTopPadding, From: from, To: to, Value: v}
}

// BottomPadding sets the bottom padding.
func BottomPadding(from, to CellRef, v float64) StyleCommand {
	return StyleCommand{Op: OpBottomPadding, From: from, To: to, Value: v}
}

// Padding sets all four paddings.
func Padding(from, to CellRef, v float64) []StyleCommand {
	return []StyleCommand{
		LeftPadding(from, to, v),
		RightPadding(from, to, v),
		TopPadding(from, to, v),
		BottomPadding(from, to, v),
	}
}

// Grid draws every cell edge in the range.
func Grid(from, to CellRef, width float64, c Color) StyleCommand {
	return StyleCommand{Op: OpGrid, From: from, To: to, Value: width, Color: c}
}

// InnerGrid draws the edges between cells of the range.
func InnerGrid(from, to CellRef, width float64, c Color) StyleCommand {
	return StyleCommand{Op: OpInnerGrid, From: from, To: to, Value: width, Color: c}
}

// Box draws the outline of the range.
func Box(from, to CellRef, width float64, c Color) StyleCommand {
	return StyleCommand{Op: OpBox, From: from, To: to, Value: width, Color: c}
}

// LineAbove draws a line above each row of the range.
func LineAbove(from, to CellRef, width float64, c Color) StyleCommand {
	return StyleCommand{Op: OpLineAbove, From: from, To: to, Value: width, Color: c}
}

// LineBelow draws a line below each row of the range.
func LineBelow(from, to CellRef, width float64, c Color) StyleCommand {
	return StyleCommand{Op: OpLineBelow, From: from, To: to, Value: width, Color: c}
}

// LineBefore draws a line left of each column of the range.
func LineBefore(from, to CellRef, width float64, c Color) StyleCommand {
	return StyleCommand{Op: OpLineBefore, From: from, To: to, Value: width, Color: c}
}

// LineAfter draws a line right of each column of the range.
func LineAfter(from, to CellRef, width float64, c Color) StyleCommand {
	return StyleCommand{Op: OpLineAfter, From: from, To: to, Value: width, Color: c}
}

// Default cell settings.
const (
	defaultCellPadH    = 6.0
	defaultCellPadV    = 3.0
	defaultCellLeading = 12.0
)

// cellStyle is the fully resolved style of one cell.
type cellStyle struct {
	Background    Color
	HasBackground bool
	TextColor     Color
	FontName      string
	FontSize      float64
	Leading       float64 // 0 = 1.2 x FontSize; defaultCellStyle sets 12
	Align         Alignment
	VAlign        VAlignment
	PadLeft       float64
	PadRight      float64
	PadTop        float64
	PadBottom     float64
}

// leading returns the effective line height.
func (s cellStyle) leading() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.FontSize * leadingRatio
}

func defaultCellStyle() cellStyle {
	return cellStyle{
		TextColor: Black,
		FontName:  DefaultFontName,
		FontSize:  DefaultFontSize,
		Leading:   defaultCellLeading,
		PadLeft:   defaultCellPadH,
		PadRight:  defaultCellPadH,
		PadTop:    defaultCellPadV,
		PadBottom: defaultCellPadV,
	}
}

// edge is one border segment. Zero width means no line.
type edge struct {
	Width float64
	Color Color
}

// resolvedTable is a table with every style command applied.
type resolvedTable struct {
	cells  [][]cellStyle // [row][col]
	hEdges [][]edge      // [rows+1][cols]: hEdges[r] is the line above row r
	vEdges [][]edge      // [rows][cols+1]: vEdges[r][c] is the line left of column c
}

// cellRect is a normalized inclusive range.
type cellRect struct {
	c0, r0, c1, r1 int
}

// normalizeRange resolves negative indices and checks bounds.
func normalizeRange(cmd StyleCommand, cols, rows int) (cellRect, error) {
	norm := func(i, n int) int {
		if i < 0 {
			return i + n
		}
		return i
	}
	rect := cellRect{
		c0: norm(cmd.From.Col, cols),
		r0: norm(cmd.From.Row, rows),
		c1: norm(cmd.To.Col, cols),
		r1: norm(cmd.To.Row, rows),
	}
	if rect.c0 < 0 || rect.c1 >= cols || rect.r0 < 0 || rect.r1 >= rows || rect.c0 > rect.c1 || rect.r0 > rect.r1 {
		return cellRect{}, fmt.Errorf("%w: %s (%d,%d)..(%d,%d) in %dx%d table",
			ErrInvalidStyleRange, cmd.Op, cmd.From.Col, cmd.From.Row, cmd.To.Col, cmd.To.Row, cols, rows)
	}
	return rect, nil
}

// resolveTableStyle applies all commands in order; later commands win.
func resolveTableStyle(t *Table) (*resolvedTable, error) {
	rows, cols := t.NumRows(), t.NumCols()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyTable
	}

	rt := &resolvedTable{
		cells:  make([][]cellStyle, rows),
		hEdges: make([][]edge, rows+1),
		vEdges: make([][]edge, rows),
	}
	for r := range rt.cells {
		rt.cells[r] = make([]cellStyle, cols)
		for c := range rt.cells[r] {
			rt.cells[r][c] = defaultCellStyle()
		}
		rt.vEdges[r] = make([]edge, cols+1)
	}
	for r := range rt.hEdges {
		rt.hEdges[r] = make([]edge, cols)
	}

	for _, cmd := range t.Style {
		rect, err := normalizeRange(cmd, cols, rows)
		if err != nil {
			return nil, err
		}
		if err := rt.apply(cmd, rect); err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// apply executes one command over rect.
func (rt *resolvedTable) apply(cmd StyleCommand, rect cellRect) error {
	line := edge{Width: cmd.Value, Color: cmd.Color}

	switch cmd.Op {
	case OpGrid:
		rt.setH(rect.r0, rect.r1+1, rect.c0, rect.c1, line)
		rt.setV(rect.r0, rect.r1, rect.c0, rect.c1+1, line)
		return nil
	case OpInnerGrid:
		rt.setH(rect.r0+1, rect.r1, rect.c0, rect.c1, line)
		rt.setV(rect.r0, rect.r1, rect.c0+1, rect.c1, line)
		return nil
	case OpBox:
		rt.setH(rect.r0, rect.r0, rect.c0, rect.c1, line)
		rt.setH(rect.r1+1, rect.r1+1, rect.c0, rect.c1, line)
		rt.setV(rect.r0, rect.r1, rect.c0, rect.c0, line)
		rt.setV(rect.r0, rect.r1, rect.c1+1, rect.c1+1, line)
		return nil
	case OpLineAbove:
		rt.setH(rect.r0, rect.r1, rect.c0, rect.c1, line)
		return nil
	case OpLineBelow:
		rt.setH(rect.r0+1, rect.r1+1, rect.c0, rect.c1, line)
		return nil
	case OpLineBefore:
		rt.setV(rect.r0, rect.r1, rect.c0, rect.c1, line)
		return nil
	case OpLineAfter:
		rt.setV(rect.r0, rect.r1, rect.c0+1, rect.c1+1, line)
		return nil
	}

	if cmd.Op == OpFontName {
		if _, err := parseFontName(cmd.Font); err != nil {
			return err
		}
	}
	if (cmd.Op == OpFontSize || cmd.Op == OpLeading) && cmd.Value <= 0 {
		return fmt.Errorf("%w: %s %.2f", ErrInvalidFontSize, cmd.Op, cmd.Value)
	}

	for r := rect.r0; r <= rect.r1; r++ {
		for c := rect.c0; c <= rect.c1; c++ {
			s := &rt.cells[r][c]
			switch cmd.Op {
			case OpBackground:
				s.Background, s.HasBackground = cmd.Color, true
			case OpTextColor:
				s.TextColor = cmd.Color
			case OpFontName:
				s.FontName = cmd.Font
			case OpFontSize:
				s.FontSize = cmd.Value
			case OpLeading:
				s.Leading = cmd.Value
			case OpAlign:
				s.Align = cmd.Align
			case OpVAlign:
				s.VAlign = cmd.VAlign
			case OpLeftPadding:
				s.PadLeft = cmd.Value
			case OpRightPadding:
				s.PadRight = cmd.Value
			case OpTopPadding:
				s.PadTop = cmd.Value
			case OpBottomPadding:
				s.PadBottom = cmd.Value
			default:
				return fmt.Errorf("unsupported style op %s", cmd.Op)
			}
		}
	}
	return nil
}

// setH sets horizontal edges for edge rows r0..r1 and columns c0..c1.
func (rt *resolvedTable) setH(r0, r1, c0, c1 int, e edge) {
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			rt.hEdges[r][c] = e
		}
	}
}

// setV sets vertical edges for rows r0..r1 and edge columns c0..c1.
func (rt *resolvedTable) setV(r0, r1, c0, c1 int, e edge) {
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			rt.vEdges[r][c] = e
		}
	}
}
