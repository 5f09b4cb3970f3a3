package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"

	"cv-builder/internal/model"
)

// Style selects one of the three page-assembly strategies. They share
// the builders and the paginator; only margins and packing differ.
type Style string

const (
	// StyleBasic is the dense classic look: flowing text sections,
	// ruled headers, pill badges for skills.
	StyleBasic Style = "basic"
	// StyleIntermediate packs repeating sections two per row to save
	// vertical space.
	StyleIntermediate Style = "intermediate"
	// StyleAdvanced is the single-column card layout.
	StyleAdvanced Style = "advanced"
)

// ErrRenderFailed wraps fatal layout-engine errors. Anything else that
// goes wrong inside a single section is contained and logged, never
// surfaced.
var ErrRenderFailed = errors.New("cv render failed")

var ErrUnknownStyle = errors.New("unknown cv style")

type profile struct {
	margin    float64
	twoColumn bool
	flowing   bool
}

var profiles = map[Style]profile{
	StyleBasic:        {margin: 20, flowing: true},
	StyleIntermediate: {margin: 18, twoColumn: true},
	StyleAdvanced:     {margin: 18},
}

// ParseStyle validates a caller-supplied style identifier.
func ParseStyle(s string) (Style, error) {
	st := Style(s)
	if _, ok := profiles[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
	return st, nil
}

// Fixed creation date keeps renders of the same document byte-identical.
var pdfEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Options tweaks per-render behavior; the zero value is valid.
type Options struct {
	// MediaRoot resolves relative profile image references.
	MediaRoot string
}

// Generate renders the document in the given style and writes the PDF
// to w. A single section failing is logged and skipped; only a fatal
// layout-engine error aborts the render.
func Generate(doc *model.CVDocument, style Style, w io.Writer, opts Options) error {
	prof, ok := profiles[style]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	if doc == nil {
		doc = &model.CVDocument{}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetMargins(prof.margin, prof.margin, prof.margin)
	pdf.SetAutoPageBreak(false, prof.margin)
	pdf.AddPage()

	ctx := &builderCtx{
		doc:       doc,
		th:        defaultTheme(),
		twoColumn: prof.twoColumn,
		flowing:   prof.flowing,
		mediaRoot: opts.MediaRoot,
	}
	fl := newFlow(pdf, prof.margin)

	for _, sec := range sections {
		fl.add(buildSection(sec, ctx)...)
	}

	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrRenderFailed, pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return nil
}

type section struct {
	name  string
	build func(*builderCtx) []Block
}

// One canonical section order for all styles; a section whose builder
// returns nothing is simply absent from the flow.
var sections = []section{
	{"identity", (*builderCtx).buildIdentity},
	{"profile_summary", (*builderCtx).buildSummary},
	{"career_objective", (*builderCtx).buildCareerObjective},
	{"education", (*builderCtx).buildEducation},
	{"work_experience", (*builderCtx).buildWorkExperience},
	{"projects", (*builderCtx).buildProjects},
	{"skills", (*builderCtx).buildSkills},
	{"achievements", (*builderCtx).buildAchievements},
	{"languages", (*builderCtx).buildLanguages},
	{"certificates", (*builderCtx).buildCertificates},
	{"references", (*builderCtx).buildReferences},
}

// buildSection runs one builder under fault containment: a panic in a
// single section is logged and that section omitted, so the rest of
// the document still renders.
func buildSection(sec section, ctx *builderCtx) (blocks []Block) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("section builder failed, section skipped", "section", sec.name, "error", r)
			blocks = nil
		}
	}()
	return sec.build(ctx)
}

// flow walks blocks down the page, measuring each one against the
// content width and moving whole blocks to a fresh page when they do
// not fit. Cards, groups and grid rows are atomic here, which is the
// keep-together contract.
type flow struct {
	pdf    *fpdf.Fpdf
	margin float64
	width  float64
	maxY   float64
	y      float64
}

func newFlow(pdf *fpdf.Fpdf, margin float64) *flow {
	pw, ph := pdf.GetPageSize()
	return &flow{
		pdf:    pdf,
		margin: margin,
		width:  pw - 2*margin,
		maxY:   ph - margin,
		y:      margin,
	}
}

func (f *flow) add(blocks ...Block) {
	for _, b := range blocks {
		h := b.Height(f.pdf, f.width)
		if h <= 0 {
			continue
		}
		if f.y+h > f.maxY && f.y > f.margin {
			f.pdf.AddPage()
			f.y = f.margin
		}
		// A block taller than a whole page still draws from the top of
		// a fresh one; fpdf clips the overrun.
		b.Draw(f.pdf, f.margin, f.y, f.width)
		f.y += h
	}
}
