package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/model"
)

func sampleDoc() *model.CVDocument {
	return &model.CVDocument{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Educations: []model.Education{{
			Degree:      "BSc Computer Science",
			Institution: "Example University",
			StartDate:   "2018-09-01",
			EndDate:     "2022-06-01",
		}},
		TechnicalSkills: []string{"Python", "Go", "SQL"},
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []string{"basic", "intermediate", "advanced"} {
		st, err := ParseStyle(s)
		require.NoError(t, err)
		assert.Equal(t, Style(s), st)
	}
	_, err := ParseStyle("fancy")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestGenerateAllStyles(t *testing.T) {
	for _, style := range []Style{StyleBasic, StyleIntermediate, StyleAdvanced} {
		t.Run(string(style), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Generate(sampleDoc(), style, &buf, Options{}))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output is a PDF byte stream")
			assert.Greater(t, buf.Len(), 500)
		})
	}
}

func TestGenerateUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(sampleDoc(), Style("fancy"), &buf, Options{})
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestGenerateIdempotent(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Generate(sampleDoc(), StyleAdvanced, &a, Options{}))
	require.NoError(t, Generate(sampleDoc(), StyleAdvanced, &b, Options{}))
	assert.Equal(t, a.Bytes(), b.Bytes(), "same document renders byte-identical")
}

func TestGenerateEmptyDocumentStillValidPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&model.CVDocument{}, StyleAdvanced, &buf, Options{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestGenerateNilDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(nil, StyleBasic, &buf, Options{}))
}

func TestGenerateMissingImageDoesNotFail(t *testing.T) {
	doc := sampleDoc()
	doc.ProfileImage = "uploads/ghost.png"
	var buf bytes.Buffer
	require.NoError(t, Generate(doc, StyleAdvanced, &buf, Options{MediaRoot: t.TempDir()}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

// The end-to-end omission check: only identity, education and skills
// appear; every other section leaves no header behind.
func TestOnlyPopulatedSectionsBuild(t *testing.T) {
	ctx := &builderCtx{doc: sampleDoc(), th: defaultTheme()}
	var headers []string
	for _, sec := range sections {
		for _, s := range collectText(buildSection(sec, ctx)) {
			if isSectionTitle(s) {
				headers = append(headers, s)
			}
		}
	}
	assert.Equal(t, []string{"Education", "Skills"}, headers)
}

func isSectionTitle(s string) bool {
	switch s {
	case "Profile Summary", "Career Objective", "Education", "Work Experience",
		"Projects", "Skills", "Achievements", "Languages", "Certifications", "References":
		return true
	}
	return false
}

func TestBuildSectionContainsPanic(t *testing.T) {
	sec := section{name: "explosive", build: func(*builderCtx) []Block {
		panic("boom")
	}}
	assert.Nil(t, buildSection(sec, &builderCtx{doc: &model.CVDocument{}, th: defaultTheme()}))
}

func TestFlowKeepsBlocksTogether(t *testing.T) {
	pdf := newTestPDF()
	fl := newFlow(pdf, 18)
	usable := fl.maxY - fl.margin

	// Fill most of the first page, then add a card that cannot fit in
	// the remainder. The whole card must move to page two.
	fl.add(Spacer{H: usable - 10})
	require.Equal(t, 1, pdf.PageNo())

	card := Card{Children: []Block{Spacer{H: 24}}, Bg: hexColor("#f1f5f9"), Pad: 3}
	fl.add(card)
	assert.Equal(t, 2, pdf.PageNo(), "overflowing card moves wholly to the next page")
	assert.InDelta(t, fl.margin+card.Height(pdf, fl.width), fl.y, 0.001, "card starts at the top of the new page")
}

func TestFlowOversizedBlockStartsFreshPage(t *testing.T) {
	pdf := newTestPDF()
	fl := newFlow(pdf, 18)
	fl.add(Spacer{H: 5})
	fl.add(Spacer{H: 5000}) // taller than any page
	assert.Equal(t, 2, pdf.PageNo())
}
