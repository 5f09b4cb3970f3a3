package render

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/model"
)

func ctxFor(doc *model.CVDocument) *builderCtx {
	return &builderCtx{doc: doc, th: defaultTheme()}
}

// collectText walks the blocks a builder produced and gathers every
// piece of text, so tests can assert on rendered content without
// parsing PDF bytes.
func collectText(blocks []Block) []string {
	var out []string
	var walk func(b Block)
	walk = func(b Block) {
		switch v := b.(type) {
		case Paragraph:
			out = append(out, v.Text)
		case BulletList:
			out = append(out, v.Items...)
		case PillRow:
			out = append(out, v.Items...)
		case SectionHeader:
			out = append(out, v.Title)
		case styledLine:
			for _, sp := range v.Spans {
				out = append(out, sp.Text)
			}
		case Card:
			for _, c := range v.Children {
				walk(c)
			}
		case group:
			for _, c := range v {
				walk(c)
			}
		case gridRow:
			walk(v.Left)
			walk(v.Right)
		}
	}
	for _, b := range blocks {
		walk(b)
	}
	return out
}

func TestBuildersOmitEmptySections(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{FullName: "Jane Doe"})

	assert.Nil(t, ctx.buildSummary())
	assert.Nil(t, ctx.buildCareerObjective())
	assert.Nil(t, ctx.buildEducation())
	assert.Nil(t, ctx.buildWorkExperience())
	assert.Nil(t, ctx.buildProjects())
	assert.Nil(t, ctx.buildSkills())
	assert.Nil(t, ctx.buildAchievements())
	assert.Nil(t, ctx.buildLanguages())
	assert.Nil(t, ctx.buildCertificates())
	assert.Nil(t, ctx.buildReferences())
	assert.NotEmpty(t, ctx.buildIdentity(), "identity always renders")
}

func TestPresenceFilterDropsBlankRecords(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{
		Educations:      []model.Education{{Degree: "  ", Institution: "", Grade: " "}},
		WorkExperiences: []model.WorkExperience{{Responsibilities: []string{"   ", ""}}},
		References:      []model.Reference{{}},
		Languages:       []model.Language{{Proficiency: "Fluent"}}, // no language name
	})
	assert.Nil(t, ctx.buildEducation(), "record with only whitespace fields contributes nothing")
	assert.Nil(t, ctx.buildWorkExperience())
	assert.Nil(t, ctx.buildReferences())
	assert.Nil(t, ctx.buildLanguages())
}

func TestWorkExperienceFieldDegradation(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{
		WorkExperiences: []model.WorkExperience{{
			JobTitle:  "engineer",
			Location:  "",
			StartDate: "2021-01-01",
			EndDate:   "",
		}},
	})
	texts := collectText(ctx.buildWorkExperience())
	assert.Contains(t, texts, "2021-01-01 – Present", "missing end date renders as ongoing")
	for _, s := range texts {
		assert.NotContains(t, s, "None")
	}
}

func TestWorkExperienceTitleCasingAndPeriods(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{
		WorkExperiences: []model.WorkExperience{{
			JobTitle:         "senior engineer",
			Company:          "acme corp",
			Responsibilities: []string{"Led a team of five", "Shipped product.."},
		}},
	})
	texts := collectText(ctx.buildWorkExperience())
	assert.Contains(t, texts, "Senior Engineer")
	assert.Contains(t, texts, "Led a team of five.")
	assert.Contains(t, texts, "Shipped product.")
}

func TestEducationCardsSortedMostRecentFirst(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{
		Educations: []model.Education{
			{Degree: "BSc", EndDate: "2018-06-01"},
			{Degree: "MSc", EndDate: "2022-06-01"},
		},
	})
	texts := collectText(ctx.buildEducation())
	msc, bsc := -1, -1
	for i, s := range texts {
		switch s {
		case "MSc":
			msc = i
		case "BSc":
			bsc = i
		}
	}
	require.GreaterOrEqual(t, msc, 0)
	require.GreaterOrEqual(t, bsc, 0)
	assert.Less(t, msc, bsc, "most recent degree first")
}

func TestLanguagesProficiencyOptional(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{
		Languages: []model.Language{
			{Language: "English", Proficiency: "Fluent"},
			{Language: "French"},
		},
	})
	texts := collectText(ctx.buildLanguages())
	assert.Contains(t, texts, "English (Fluent)")
	assert.Contains(t, texts, "French")
}

func TestSkillsTwoIndependentRows(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{TechnicalSkills: []string{"Python", "Go", "SQL"}})
	texts := collectText(ctx.buildSkills())
	assert.Contains(t, texts, "Technical Skills")
	assert.NotContains(t, texts, "Soft Skills", "empty soft skills row omitted entirely")
	assert.Contains(t, texts, "Go")
}

func TestIdentityContactNoDanglingSeparator(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{FullName: "Jane Doe", Email: "jane@example.com", Phone: ""})
	blocks := ctx.buildIdentity()
	var id identityBlock
	found := false
	for _, b := range blocks {
		if v, ok := b.(identityBlock); ok {
			id = v
			found = true
		}
	}
	require.True(t, found)
	assert.Equal(t, "JANE DOE", id.name.Text)
	assert.Equal(t, "jane@example.com", id.contact.Text)
	assert.Nil(t, id.img)
}

func TestIdentityFallsBackToNameParts(t *testing.T) {
	ctx := ctxFor(&model.CVDocument{FirstName: "Jane", LastName: "Doe"})
	blocks := ctx.buildIdentity()
	for _, b := range blocks {
		if v, ok := b.(identityBlock); ok {
			assert.Equal(t, "JANE DOE", v.name.Text)
			return
		}
	}
	t.Fatal("identity block missing")
}

func TestLoadProfileImageMissingFile(t *testing.T) {
	assert.Nil(t, loadProfileImage("no/such/image.png", t.TempDir()))
	assert.Nil(t, loadProfileImage("", ""))
}

func TestLoadProfileImageCorruptBytes(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/broken.png"
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))
	assert.Nil(t, loadProfileImage(path, ""))
}
