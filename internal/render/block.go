package render

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// Block is the drawable unit the builders emit and the paginator
// consumes. Blocks are pure values: they hold no reference back to the
// source document and no layout state between renders.
//
// Height must report exactly what Draw will occupy for the same width,
// otherwise page reflow drifts.
type Block interface {
	Height(pdf *fpdf.Fpdf, width float64) float64
	Draw(pdf *fpdf.Fpdf, x, y, width float64)
}

func applyStyle(pdf *fpdf.Fpdf, ts TextStyle) {
	pdf.SetFont(ts.Family, ts.Style, ts.Size)
	pdf.SetTextColor(ts.Color.R, ts.Color.G, ts.Color.B)
}

// Spacer is fixed vertical whitespace.
type Spacer struct {
	H float64
}

func (s Spacer) Height(*fpdf.Fpdf, float64) float64 { return s.H }

func (s Spacer) Draw(*fpdf.Fpdf, float64, float64, float64) {}

// Paragraph is a run of wrapped text in a single style.
type Paragraph struct {
	Text  string
	Style TextStyle
	Align string // fpdf alignment, "" means left
}

func (p Paragraph) lines(pdf *fpdf.Fpdf, width float64) []string {
	applyStyle(pdf, p.Style)
	return pdf.SplitText(p.Text, width)
}

func (p Paragraph) Height(pdf *fpdf.Fpdf, width float64) float64 {
	return float64(len(p.lines(pdf, width))) * p.Style.LineHeight
}

func (p Paragraph) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	applyStyle(pdf, p.Style)
	align := p.Align
	if align == "" {
		align = "L"
	}
	pdf.SetXY(x, y)
	pdf.MultiCell(width, p.Style.LineHeight, p.Text, "", align, false)
}

// BulletList renders one bullet per item, wrapping long items under a
// hanging indent.
type BulletList struct {
	Items  []string
	Style  TextStyle
	Indent float64
}

const bulletGlyph = "•"

func (b BulletList) indent() float64 {
	if b.Indent > 0 {
		return b.Indent
	}
	return 5
}

func (b BulletList) Height(pdf *fpdf.Fpdf, width float64) float64 {
	applyStyle(pdf, b.Style)
	var h float64
	for _, it := range b.Items {
		h += float64(len(pdf.SplitText(it, width-b.indent()))) * b.Style.LineHeight
	}
	return h
}

func (b BulletList) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	applyStyle(pdf, b.Style)
	in := b.indent()
	for _, it := range b.Items {
		pdf.SetXY(x, y)
		pdf.CellFormat(in, b.Style.LineHeight, bulletGlyph, "", 0, "C", false, 0, "")
		pdf.SetXY(x+in, y)
		pdf.MultiCell(width-in, b.Style.LineHeight, it, "", "L", false)
		y += float64(len(pdf.SplitText(it, width-in))) * b.Style.LineHeight
	}
}

// group stacks blocks into one atomic unit without card chrome; the
// paginator keeps it together like a Card.
type group []Block

func (g group) Height(pdf *fpdf.Fpdf, width float64) float64 {
	var h float64
	for _, b := range g {
		h += b.Height(pdf, width)
	}
	return h
}

func (g group) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	for _, b := range g {
		b.Draw(pdf, x, y, width)
		y += b.Height(pdf, width)
	}
}

// ImageBlock draws a pre-registered image scaled into a fixed box.
type ImageBlock struct {
	Name string
	W, H float64
}

func (ib ImageBlock) Height(*fpdf.Fpdf, float64) float64 { return ib.H }

func (ib ImageBlock) Draw(pdf *fpdf.Fpdf, x, y, _ float64) {
	pdf.ImageOptions(ib.Name, x, y, ib.W, ib.H, false, fpdf.ImageOptions{}, 0, "")
}

// styledLine draws a single non-wrapping line built from styled spans,
// e.g. a bold job title followed by an italic company name.
type span struct {
	Text  string
	Style TextStyle
}

type styledLine struct {
	Spans      []span
	LineHeight float64
}

func (l styledLine) Height(*fpdf.Fpdf, float64) float64 { return l.LineHeight }

func (l styledLine) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	cx := x
	for _, sp := range l.Spans {
		if strings.TrimSpace(sp.Text) == "" {
			continue
		}
		applyStyle(pdf, sp.Style)
		w := pdf.GetStringWidth(sp.Text)
		if cx+w > x+width {
			w = x + width - cx
			if w <= 0 {
				return
			}
		}
		pdf.SetXY(cx, y)
		pdf.CellFormat(w, l.LineHeight, sp.Text, "", 0, "L", false, 0, "")
		cx += w
	}
}
