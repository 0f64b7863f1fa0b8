package pdfreport

import "fmt"

// Cell is a table cell: plain text or a nested paragraph.
// Text may contain newlines and is never wrapped. A paragraph wraps to the
// column width minus horizontal padding and uses its own style.
type Cell struct {
	Text      string
	Paragraph *Paragraph
}

// TextCell returns a plain text cell.
func TextCell(s string) Cell {
	return Cell{Text: s}
}

// ParagraphCell returns a cell holding a wrapped paragraph.
func ParagraphCell(p *Paragraph) Cell {
	return Cell{Paragraph: p}
}

// TextRows converts a literal string grid into cells.
func TextRows(rows [][]string) [][]Cell {
	out := make([][]Cell, len(rows))
	for r, row := range rows {
		out[r] = make([]Cell, len(row))
		for c, s := range row {
			out[r][c] = TextCell(s)
		}
	}
	return out
}

// Table is a grid of cells with range-addressed styling.
type Table struct {
	Rows       [][]Cell
	ColWidths  []float64 // points; nil = frame width split evenly
	RowHeights []float64 // points; nil or 0 entries = measured from content
	Style      []StyleCommand
}

// NewTable returns a table over a literal string grid.
func NewTable(rows [][]string, colWidths ...float64) *Table {
	return &Table{Rows: TextRows(rows), ColWidths: colWidths}
}

// SetStyle appends style commands and returns the table.
func (t *Table) SetStyle(cmds ...StyleCommand) *Table {
	t.Style = append(t.Style, cmds...)
	return t
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the column count (width of the first row).
func (t *Table) NumCols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Validate checks shape, widths and that every style range addresses existing cells.
func (t *Table) Validate() error {
	rows, cols := t.NumRows(), t.NumCols()
	if rows == 0 || cols == 0 {
		return ErrEmptyTable
	}
	for r, row := range t.Rows {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedTable, r, len(row), cols)
		}
		for c, cell := range row {
			if cell.Paragraph != nil {
				if err := cell.Paragraph.Validate(); err != nil {
					return fmt.Errorf("cell (%d,%d): %w", c, r, err)
				}
			}
		}
	}
	if t.ColWidths != nil && len(t.ColWidths) != cols {
		return fmt.Errorf("%w: %d widths for %d columns", ErrColumnWidths, len(t.ColWidths), cols)
	}
	for i, w := range t.ColWidths {
		if w <= 0 {
			return fmt.Errorf("%w: column %d width %.2f", ErrColumnWidths, i, w)
		}
	}
	if t.RowHeights != nil && len(t.RowHeights) != rows {
		return fmt.Errorf("%w: %d heights for %d rows", ErrRowHeights, len(t.RowHeights), rows)
	}
	for i, h := range t.RowHeights {
		if h < 0 {
			return fmt.Errorf("%w: row %d height %.2f", ErrRowHeights, i, h)
		}
	}
	_, err := resolveTableStyle(t)
	return err
}

// columnWidths returns explicit widths or an even split of frameWidth.
func (t *Table) columnWidths(frameWidth float64) []float64 {
	if t.ColWidths != nil {
		return t.ColWidths
	}
	n := t.NumCols()
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = frameWidth / float64(n)
	}
	return widths
}

// fixedRowHeight returns the explicit height of row r, or 0.
func (t *Table) fixedRowHeight(r int) float64 {
	if r < len(t.RowHeights) {
		return t.RowHeights[r]
	}
	return 0
}
