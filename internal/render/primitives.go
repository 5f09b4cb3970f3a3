package render

import "github.com/go-pdf/fpdf"

// Layout primitives shared by every generator style: ruled section
// headers, accent cards, wrapping pill badge rows and the two-column
// grid packer.

// SectionHeader renders an upper-cased title with an accent rule
// beneath it.
type SectionHeader struct {
	Title string
	Style TextStyle
	Rule  RGB
}

const headerRulePad = 1.2

func (h SectionHeader) Height(_ *fpdf.Fpdf, _ float64) float64 {
	return h.Style.LineHeight + headerRulePad
}

func (h SectionHeader) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	applyStyle(pdf, h.Style)
	pdf.SetXY(x, y)
	pdf.CellFormat(width, h.Style.LineHeight, upper(h.Title), "", 0, "L", false, 0, "")
	pdf.SetDrawColor(h.Rule.R, h.Rule.G, h.Rule.B)
	pdf.SetLineWidth(0.35)
	ry := y + h.Style.LineHeight + headerRulePad/2
	pdf.Line(x, ry, x+width, ry)
}

// Card groups one record's blocks inside a background-colored box with
// an optional left accent bar. Cards are atomic for pagination: the
// paginator never splits one across a page boundary.
type Card struct {
	Children []Block
	Bg       RGB
	Accent   *RGB
	Pad      float64
}

const accentBarWidth = 1.4

func (c Card) pad() float64 {
	if c.Pad > 0 {
		return c.Pad
	}
	return 3
}

func (c Card) Height(pdf *fpdf.Fpdf, width float64) float64 {
	inner := width - 2*c.pad()
	h := 2 * c.pad()
	for _, ch := range c.Children {
		h += ch.Height(pdf, inner)
	}
	return h
}

func (c Card) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	h := c.Height(pdf, width)
	pdf.SetFillColor(c.Bg.R, c.Bg.G, c.Bg.B)
	pdf.Rect(x, y, width, h, "F")
	if c.Accent != nil {
		pdf.SetFillColor(c.Accent.R, c.Accent.G, c.Accent.B)
		pdf.Rect(x, y, accentBarWidth, h, "F")
	}
	cx := x + c.pad()
	cy := y + c.pad()
	inner := width - 2*c.pad()
	for _, ch := range c.Children {
		ch.Draw(pdf, cx, cy, inner)
		cy += ch.Height(pdf, inner)
	}
}

// PillRow lays short labels out left to right as rounded badges, each
// sized to its text plus fixed padding, wrapping to a new row when the
// next badge would exceed the available width.
type PillRow struct {
	Items []string
	Style TextStyle
	Bg    RGB
	Fg    RGB
	PadX  float64
	PillH float64
	Gap   float64
}

func (p PillRow) padX() float64 {
	if p.PadX > 0 {
		return p.PadX
	}
	return 2.5
}

func (p PillRow) pillH() float64 {
	if p.PillH > 0 {
		return p.PillH
	}
	return 6
}

func (p PillRow) gap() float64 {
	if p.Gap > 0 {
		return p.Gap
	}
	return 1.8
}

type pill struct {
	text  string
	width float64
}

// wrapRows measures every badge and packs them greedily against
// maxWidth. A badge wider than maxWidth gets a row of its own.
func (p PillRow) wrapRows(pdf *fpdf.Fpdf, maxWidth float64) [][]pill {
	applyStyle(pdf, p.Style)
	var rows [][]pill
	var row []pill
	var used float64
	for _, it := range p.Items {
		w := pdf.GetStringWidth(it) + 2*p.padX()
		if len(row) > 0 && used+p.gap()+w > maxWidth {
			rows = append(rows, row)
			row = nil
			used = 0
		}
		if len(row) > 0 {
			used += p.gap()
		}
		row = append(row, pill{text: it, width: w})
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func (p PillRow) Height(pdf *fpdf.Fpdf, width float64) float64 {
	n := len(p.wrapRows(pdf, width))
	if n == 0 {
		return 0
	}
	return float64(n)*p.pillH() + float64(n-1)*p.gap()
}

func (p PillRow) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	rows := p.wrapRows(pdf, width)
	fg := p.Style
	fg.Color = p.Fg
	for _, row := range rows {
		cx := x
		for _, pl := range row {
			pdf.SetFillColor(p.Bg.R, p.Bg.G, p.Bg.B)
			pdf.RoundedRect(cx, y, pl.width, p.pillH(), p.pillH()/2, "1234", "F")
			applyStyle(pdf, fg)
			pdf.SetXY(cx, y)
			pdf.CellFormat(pl.width, p.pillH(), pl.text, "", 0, "CM", false, 0, "")
			cx += pl.width + p.gap()
		}
		y += p.pillH() + p.gap()
	}
}

// gridRow pairs one left and one right block into two equal-width
// columns. Rows produced by TwoColRows are individually keep-together.
type gridRow struct {
	Left   Block
	Right  Block
	Gutter float64
}

func (g gridRow) colWidth(width float64) float64 {
	return (width - g.Gutter) / 2
}

func (g gridRow) Height(pdf *fpdf.Fpdf, width float64) float64 {
	cw := g.colWidth(width)
	lh := g.Left.Height(pdf, cw)
	rh := g.Right.Height(pdf, cw)
	if rh > lh {
		return rh
	}
	return lh
}

func (g gridRow) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	cw := g.colWidth(width)
	g.Left.Draw(pdf, x, y, cw)
	g.Right.Draw(pdf, x+cw+g.Gutter, y, cw)
}

// TwoColRows packs blocks two per row, reading order left then right.
// The shorter side of the final row is padded with an empty filler so
// alignment holds.
func TwoColRows(blocks []Block, gutter float64, rowGap float64) []Block {
	var out []Block
	for i := 0; i < len(blocks); i += 2 {
		var right Block = Spacer{H: 0}
		if i+1 < len(blocks) {
			right = blocks[i+1]
		}
		out = append(out, gridRow{Left: blocks[i], Right: right, Gutter: gutter})
		out = append(out, Spacer{H: rowGap})
	}
	return out
}
