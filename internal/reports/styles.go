package reports

import "github.com/alnah/go-pdfreport"

// Palette shared by both reports.
var (
	primary   = pdfreport.Hex("#2C3E50")
	accent    = pdfreport.Hex("#E74C3C")
	secondary = pdfreport.Hex("#3498DB")
	lightGrey = pdfreport.Hex("#ECF0F1")
)

// Base styles of the classic sample style sheet. Custom styles copy one of
// these and override fields, so unset values (leading, spacing) are inherited.
func normal() pdfreport.ParagraphStyle {
	return pdfreport.ParagraphStyle{
		Name:      "Normal",
		FontName:  pdfreport.FontHelvetica,
		FontSize:  10,
		Leading:   12,
		TextColor: pdfreport.Black,
	}
}

func heading1() pdfreport.ParagraphStyle {
	s := normal()
	s.Name = "Heading1"
	s.FontName = pdfreport.FontHelveticaBold
	s.FontSize = 18
	s.Leading = 22
	s.SpaceAfter = 6
	return s
}

func heading2() pdfreport.ParagraphStyle {
	s := normal()
	s.Name = "Heading2"
	s.FontName = pdfreport.FontHelveticaBold
	s.FontSize = 14
	s.Leading = 18
	s.SpaceBefore = 12
	s.SpaceAfter = 6
	return s
}

// titleStyle is the centred cover title.
func titleStyle(size, after float64) pdfreport.ParagraphStyle {
	s := heading1()
	s.Name = "CustomTitle"
	s.FontSize = size
	s.TextColor = primary
	s.SpaceAfter = after
	s.Alignment = pdfreport.AlignCenter
	return s
}

// subtitleStyle is the grey line under the cover title.
func subtitleStyle(after float64) pdfreport.ParagraphStyle {
	s := normal()
	s.Name = "CustomSubtitle"
	s.FontSize = 12
	s.TextColor = pdfreport.Grey
	s.Alignment = pdfreport.AlignCenter
	s.SpaceAfter = after
	return s
}

// sectionStyle is the numbered section heading.
func sectionStyle(size, before, after float64) pdfreport.ParagraphStyle {
	s := heading2()
	s.Name = "CustomHeading"
	s.FontSize = size
	s.TextColor = primary
	s.SpaceBefore = before
	s.SpaceAfter = after
	return s
}

// bodyStyle is justified body text.
func bodyStyle(size, leading, after float64) pdfreport.ParagraphStyle {
	s := normal()
	s.Name = "CustomBody"
	s.FontSize = size
	s.Leading = leading
	s.Alignment = pdfreport.AlignJustify
	s.SpaceAfter = after
	return s
}

// decoration is a thin accent bar of the given width.
func decoration(width float64) *pdfreport.Table {
	t := pdfreport.NewTable([][]string{{""}}, width)
	t.RowHeights = []float64{3}
	return t.SetStyle(pdfreport.Background(pdfreport.At(0, 0), pdfreport.At(-1, -1), accent))
}

// callout is a one-cell box around a paragraph.
func callout(text string, style pdfreport.ParagraphStyle, fill, border pdfreport.Color) *pdfreport.Table {
	t := &pdfreport.Table{
		Rows:      [][]pdfreport.Cell{{pdfreport.ParagraphCell(&pdfreport.Paragraph{Text: text, Style: style})}},
		ColWidths: []float64{15 * pdfreport.Cm},
	}
	all, end := pdfreport.At(0, 0), pdfreport.At(-1, -1)
	return t.SetStyle(
		pdfreport.Background(all, end, fill),
		pdfreport.Box(all, end, 1, border),
		pdfreport.LeftPadding(all, end, 15),
		pdfreport.RightPadding(all, end, 15),
		pdfreport.TopPadding(all, end, 10),
		pdfreport.BottomPadding(all, end, 10),
	)
}

// stripes fills the given rows (full width) with the light grey band.
func stripes(rows ...int) []pdfreport.StyleCommand {
	cmds := make([]pdfreport.StyleCommand, len(rows))
	for i, r := range rows {
		cmds[i] = pdfreport.Background(pdfreport.At(0, r), pdfreport.At(-1, r), lightGrey)
	}
	return cmds
}
