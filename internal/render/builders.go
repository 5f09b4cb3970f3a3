package render

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"cv-builder/internal/model"
)

// Section builders map the data document onto layout primitives. Each
// returns the full section (header included) or nil when nothing valid
// is present, so an empty section leaves no trace in the flow.

const (
	sectionGap  = 3.0
	cardGap     = 2.5
	gridGutter  = 3.0
	profileSize = 28.0 // profile image bounding box, mm
)

type builderCtx struct {
	doc       *model.CVDocument
	th        *Theme
	twoColumn bool
	flowing   bool
	mediaRoot string
}

func (b *builderCtx) header(title string) Block {
	return SectionHeader{Title: title, Style: b.th.SectionHead, Rule: b.th.Rule}
}

// sectionOf assembles header + per-record blocks, honoring the
// two-column packing when the profile asks for it.
func (b *builderCtx) sectionOf(title string, cards []Block) []Block {
	if len(cards) == 0 {
		return nil
	}
	out := []Block{b.header(title), Spacer{H: sectionGap}}
	if b.twoColumn {
		return append(out, TwoColRows(cards, gridGutter, cardGap)...)
	}
	for _, c := range cards {
		out = append(out, c, Spacer{H: cardGap})
	}
	return out
}

// ---------------- identity ----------------

type imageRef struct {
	name    string
	imgType string
	data    []byte
}

// identityBlock composes the profile image (when present) beside the
// upper-cased full name and the pipe-separated contact line.
type identityBlock struct {
	img     *imageRef
	name    Paragraph
	contact Paragraph
}

const identityImgGap = 3.0

func (ib identityBlock) textWidth(width float64) float64 {
	if ib.img != nil {
		return width - profileSize - identityImgGap
	}
	return width
}

func (ib identityBlock) Height(pdf *fpdf.Fpdf, width float64) float64 {
	tw := ib.textWidth(width)
	h := ib.name.Height(pdf, tw)
	if ib.contact.Text != "" {
		h += 1 + ib.contact.Height(pdf, tw)
	}
	if ib.img != nil && profileSize > h {
		return profileSize
	}
	return h
}

func (ib identityBlock) Draw(pdf *fpdf.Fpdf, x, y, width float64) {
	tx := x
	if ib.img != nil {
		if pdf.GetImageInfo(ib.img.name) == nil {
			pdf.RegisterImageOptionsReader(ib.img.name,
				fpdf.ImageOptions{ImageType: ib.img.imgType},
				bytes.NewReader(ib.img.data))
		}
		pdf.ImageOptions(ib.img.name, x, y, profileSize, profileSize, false, fpdf.ImageOptions{}, 0, "")
		tx = x + profileSize + identityImgGap
	}
	tw := ib.textWidth(width)
	ib.name.Draw(pdf, tx, y, tw)
	if ib.contact.Text != "" {
		ib.contact.Draw(pdf, tx, y+ib.name.Height(pdf, tw)+1, tw)
	}
}

// loadProfileImage resolves the document's image reference to bytes.
// Any failure is logged and treated as "no image"; rendering never
// aborts on a missing or corrupt picture.
func loadProfileImage(ref, mediaRoot string) *imageRef {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	path := ref
	if mediaRoot != "" && !filepath.IsAbs(path) {
		path = filepath.Join(mediaRoot, strings.TrimPrefix(ref, "/"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("profile image unreadable, rendering without it", "path", path, "error", err)
		return nil
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		slog.Warn("profile image undecodable, rendering without it", "path", path, "error", err)
		return nil
	}
	var imgType string
	switch http.DetectContentType(data) {
	case "image/png":
		imgType = "PNG"
	case "image/jpeg":
		imgType = "JPG"
	case "image/gif":
		imgType = "GIF"
	default:
		slog.Warn("profile image format unsupported, rendering without it", "path", path)
		return nil
	}
	return &imageRef{name: path, imgType: imgType, data: data}
}

func (b *builderCtx) buildIdentity() []Block {
	doc := b.doc
	name := strings.TrimSpace(doc.FullName)
	if name == "" {
		name = joinNonEmpty(" ", doc.FirstName, doc.MiddleName, doc.LastName)
	}
	contact := joinNonEmpty(" | ", doc.Phone, doc.Email, doc.Address, doc.GitHub, doc.LinkedIn)

	blk := identityBlock{
		img:     loadProfileImage(doc.ProfileImage, b.mediaRoot),
		name:    Paragraph{Text: upper(name), Style: b.th.Name},
		contact: Paragraph{Text: contact, Style: b.th.Contact},
	}
	return []Block{Spacer{H: 1.5}, blk, Spacer{H: sectionGap}}
}

// ---------------- prose sections ----------------

func (b *builderCtx) prose(title, text string, bg RGB) []Block {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	para := Paragraph{Text: text, Style: b.th.Body, Align: "J"}
	if b.flowing {
		return []Block{b.header(title), Spacer{H: sectionGap}, para, Spacer{H: cardGap}}
	}
	return []Block{
		b.header(title), Spacer{H: sectionGap},
		Card{Children: []Block{para}, Bg: bg, Pad: 3},
		Spacer{H: cardGap},
	}
}

func (b *builderCtx) buildSummary() []Block {
	return b.prose("Profile Summary", b.doc.ProfileSummary, b.th.SummaryBg)
}

func (b *builderCtx) buildCareerObjective() []Block {
	return b.prose("Career Objective", b.doc.CareerObj, b.th.SummaryBg)
}

// ---------------- education ----------------

func educationPresent(e model.Education) bool {
	return hasContent(e.Degree, e.Institution, e.Location, e.StartDate, e.EndDate, e.Grade)
}

func (b *builderCtx) buildEducation() []Block {
	var cards []Block
	for _, e := range sortedEducations(b.doc.Educations) {
		if !educationPresent(e) {
			continue
		}
		if b.flowing {
			line := joinNonEmpty(" — ", e.Degree, titleCase(e.Institution))
			if r := dateRange(e.StartDate, e.EndDate); r != "" {
				line = joinNonEmpty(" ", line, "("+r+")")
			}
			if e.Grade != "" {
				line = joinNonEmpty(", ", line, "Grade: "+e.Grade)
			}
			if e.Location != "" {
				line = joinNonEmpty(", ", line, "Location: "+e.Location)
			}
			cards = append(cards, BulletList{Items: []string{line}, Style: b.th.Body})
			continue
		}
		var ch []Block
		if e.Degree != "" {
			ch = append(ch, Paragraph{Text: e.Degree, Style: b.th.BodyBold})
		}
		if e.Institution != "" {
			ch = append(ch, Paragraph{Text: titleCase(e.Institution), Style: b.th.BodyItalic})
		}
		if meta := joinNonEmpty("  •  ", e.Location, dateRange(e.StartDate, e.EndDate)); meta != "" {
			ch = append(ch, Paragraph{Text: meta, Style: b.th.Body})
		}
		if e.Grade != "" {
			ch = append(ch, Paragraph{Text: "Grade: " + e.Grade, Style: b.th.Body})
		}
		cards = append(cards, Card{Children: ch, Bg: b.th.EduBg, Accent: &b.th.EduAccent})
	}
	return b.sectionOf("Education", cards)
}

// ---------------- work experience ----------------

func experiencePresent(w model.WorkExperience) bool {
	return hasContent(w.JobTitle, w.Company, w.Location, w.StartDate, w.EndDate) ||
		len(cleanStrings(w.Responsibilities)) > 0
}

func (b *builderCtx) buildWorkExperience() []Block {
	var cards []Block
	for _, w := range sortedExperiences(b.doc.WorkExperiences) {
		if !experiencePresent(w) {
			continue
		}
		resp := normalizeSentences(w.Responsibilities)
		if b.flowing {
			title := joinNonEmpty(" at ", titleCase(w.JobTitle), titleCase(w.Company))
			if r := dateRange(w.StartDate, w.EndDate); r != "" {
				title = joinNonEmpty(" ", title, "("+r+")")
			}
			var ch []Block
			if title != "" {
				ch = append(ch, Paragraph{Text: title, Style: b.th.BodyBold})
			}
			if len(resp) > 0 {
				ch = append(ch, BulletList{Items: resp, Style: b.th.Body})
			}
			cards = append(cards, group(ch))
			continue
		}
		var ch []Block
		if t := joinNonEmpty("  ", titleCase(w.JobTitle), titleCase(w.Company)); t != "" {
			ch = append(ch, styledLine{LineHeight: b.th.Body.LineHeight, Spans: []span{
				{Text: titleCase(w.JobTitle), Style: b.th.BodyBold},
				{Text: "  " + titleCase(w.Company), Style: b.th.BodyItalic},
			}})
		}
		if meta := joinNonEmpty("  •  ", w.Location, dateRange(w.StartDate, w.EndDate)); meta != "" {
			ch = append(ch, Paragraph{Text: meta, Style: b.th.BodyItalic})
		}
		if len(resp) > 0 {
			ch = append(ch, BulletList{Items: resp, Style: b.th.Body})
		}
		cards = append(cards, Card{Children: ch, Bg: b.th.WorkBg, Accent: &b.th.WorkAccent})
	}
	return b.sectionOf("Work Experience", cards)
}

// ---------------- projects ----------------

func projectPresent(p model.Project) bool {
	return hasContent(p.Title, p.Description, p.Link) || len(cleanStrings(p.Technologies)) > 0
}

func (b *builderCtx) buildProjects() []Block {
	var cards []Block
	for _, p := range sortedProjects(b.doc.Projects) {
		if !projectPresent(p) {
			continue
		}
		techs := cleanStrings(p.Technologies)
		var ch []Block
		if p.Title != "" {
			ch = append(ch, Paragraph{Text: titleCase(p.Title), Style: b.th.BodyBold})
		}
		if p.Description != "" {
			ch = append(ch, Paragraph{Text: p.Description, Style: b.th.Body})
		}
		if p.Link != "" {
			link := b.th.Body
			link.Style = "U"
			ch = append(ch, Paragraph{Text: p.Link, Style: link})
		}
		if len(techs) > 0 {
			if b.flowing {
				ch = append(ch, Spacer{H: 1},
					PillRow{Items: techs, Style: b.th.Pill, Bg: b.th.ProjPillBg, Fg: b.th.ProjPillFg})
			} else {
				ch = append(ch, Paragraph{Text: "Technologies: " + strings.Join(techs, ", "), Style: b.th.Body})
			}
		}
		if b.flowing {
			cards = append(cards, group(ch))
		} else {
			cards = append(cards, Card{Children: ch, Bg: b.th.ProjBg, Accent: &b.th.ProjAccent})
		}
	}
	return b.sectionOf("Projects", cards)
}

// ---------------- skills ----------------

func (b *builderCtx) skillRow(label string, items []string, bg, fg, cardBg, accent RGB) Block {
	row := PillRow{Items: items, Style: b.th.Pill, Bg: bg, Fg: fg}
	blocks := []Block{
		Paragraph{Text: label, Style: b.th.BodyBold},
		Spacer{H: 1},
		row,
	}
	if b.flowing {
		return group(blocks)
	}
	return Card{Children: blocks, Bg: cardBg, Accent: &accent}
}

func (b *builderCtx) buildSkills() []Block {
	tech := cleanStrings(b.doc.TechnicalSkills)
	soft := cleanStrings(b.doc.SoftSkills)
	if len(tech) == 0 && len(soft) == 0 {
		return nil
	}
	out := []Block{b.header("Skills"), Spacer{H: sectionGap}}
	if len(tech) > 0 {
		out = append(out,
			b.skillRow("Technical Skills", tech, b.th.TechPillBg, b.th.TechPillFg, b.th.LangBg, b.th.LangAccent),
			Spacer{H: cardGap})
	}
	if len(soft) > 0 {
		out = append(out,
			b.skillRow("Soft Skills", soft, b.th.SoftPillBg, b.th.SoftPillFg, hexColor("#f0fdf4"), hexColor("#10b981")),
			Spacer{H: cardGap})
	}
	return out
}

// ---------------- languages ----------------

func (b *builderCtx) buildLanguages() []Block {
	var labels []string
	for _, l := range b.doc.Languages {
		if !hasContent(l.Language) {
			continue
		}
		label := strings.TrimSpace(l.Language)
		if strings.TrimSpace(l.Proficiency) != "" {
			label += " (" + strings.TrimSpace(l.Proficiency) + ")"
		}
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		return nil
	}
	row := PillRow{Items: labels, Style: b.th.Pill, Bg: b.th.LangPillBg, Fg: b.th.LangPillFg}
	var body Block = row
	if !b.flowing {
		body = Card{Children: []Block{row}, Bg: b.th.LangBg, Accent: &b.th.LangAccent}
	}
	return []Block{b.header("Languages"), Spacer{H: sectionGap}, body, Spacer{H: cardGap}}
}

// ---------------- achievements ----------------

func (b *builderCtx) buildAchievements() []Block {
	items := normalizeSentences(b.doc.Achievements)
	if len(items) == 0 {
		return nil
	}
	list := BulletList{Items: items, Style: b.th.Body}
	var body Block = list
	if !b.flowing {
		body = Card{Children: []Block{list}, Bg: b.th.AchieveBg, Accent: &b.th.AchieveAccent}
	}
	return []Block{b.header("Achievements"), Spacer{H: sectionGap}, body, Spacer{H: cardGap}}
}

// ---------------- certificates ----------------

func (b *builderCtx) buildCertificates() []Block {
	var lines []string
	for _, c := range b.doc.Certificates {
		if !hasContent(c.Name, c.Issuer, c.Date) {
			continue
		}
		line := joinNonEmpty(" — ", c.Name, c.Issuer)
		if strings.TrimSpace(c.Date) != "" {
			line = joinNonEmpty(" ", line, "("+strings.TrimSpace(c.Date)+")")
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}
	return []Block{
		b.header("Certifications"), Spacer{H: sectionGap},
		BulletList{Items: lines, Style: b.th.Body},
		Spacer{H: cardGap},
	}
}

// ---------------- references ----------------

func referencePresent(r model.Reference) bool {
	return hasContent(r.Name, r.Position, r.Email, r.Phone)
}

func (b *builderCtx) buildReferences() []Block {
	var cards []Block
	for _, r := range sortedReferences(b.doc.References) {
		if !referencePresent(r) {
			continue
		}
		if b.flowing {
			line := joinNonEmpty(" — ", r.Name, r.Position)
			if c := joinNonEmpty(", ", r.Email, r.Phone); c != "" {
				line = joinNonEmpty(" ", line, "("+c+")")
			}
			cards = append(cards, BulletList{Items: []string{line}, Style: b.th.Body})
			continue
		}
		var ch []Block
		if r.Name != "" {
			ch = append(ch, Paragraph{Text: r.Name, Style: b.th.BodyBold})
		}
		for _, f := range []string{r.Position, r.Email, r.Phone} {
			if strings.TrimSpace(f) != "" {
				ch = append(ch, Paragraph{Text: f, Style: b.th.Body})
			}
		}
		cards = append(cards, Card{Children: ch, Bg: b.th.RefBg, Accent: &b.th.RefAccent})
	}
	return b.sectionOf("References", cards)
}
