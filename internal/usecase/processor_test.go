package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"cv-builder/internal/domain"
	"cv-builder/internal/render"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRendersRepo struct {
	saved []*domain.RenderRecord
	err   error
}

func (r *memRendersRepo) Save(_ context.Context, rec *domain.RenderRecord) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, rec)
	return nil
}

type upperEnhancer struct{ calls []string }

func (e *upperEnhancer) EnhanceSection(_ context.Context, section, text string) (string, error) {
	e.calls = append(e.calls, section)
	return "ENHANCED: " + text, nil
}

type failingEnhancer struct{}

func (failingEnhancer) EnhanceSection(context.Context, string, string) (string, error) {
	return "", errors.New("ai-service unavailable")
}

func samplePayload() map[string]interface{} {
	return map[string]interface{}{
		"full_name":       "jane doe",
		"email":           "jane@example.com",
		"profile_summary": "Engineer with ten years of experience",
		"technical_skills": []interface{}{"Go", "PostgreSQL"},
	}
}

func TestRenderCVProducesPDFAndRecord(t *testing.T) {
	repo := &memRendersRepo{}
	p := NewProcessor(repo, nil, nil, "../../templates", "")
	userID := uuid.New()

	pdf, rec, err := p.RenderCV(context.Background(), userID, samplePayload(), render.StyleBasic, false)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	require.NotNil(t, rec)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, "basic", rec.Style)
	assert.Equal(t, len(pdf), rec.FileSize)
	assert.Equal(t, "completed", rec.Status)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, rec.ID, repo.saved[0].ID)
}

func TestRenderCVEnhancesFreeTextSections(t *testing.T) {
	enh := &upperEnhancer{}
	p := NewProcessor(&memRendersRepo{}, enh, nil, "../../templates", "")

	payload := samplePayload()
	payload["career_objective"] = "Grow into a staff role"

	_, _, err := p.RenderCV(context.Background(), uuid.New(), payload, render.StyleBasic, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"profile_summary", "career_objective"}, enh.calls)
}

func TestRenderCVSkipsEnhancementWhenDisabled(t *testing.T) {
	enh := &upperEnhancer{}
	p := NewProcessor(&memRendersRepo{}, enh, nil, "../../templates", "")

	_, _, err := p.RenderCV(context.Background(), uuid.New(), samplePayload(), render.StyleBasic, false)
	require.NoError(t, err)
	assert.Empty(t, enh.calls)
}

func TestRenderCVKeepsTextOnEnhancerFailure(t *testing.T) {
	p := NewProcessor(&memRendersRepo{}, failingEnhancer{}, nil, "../../templates", "")

	pdf, _, err := p.RenderCV(context.Background(), uuid.New(), samplePayload(), render.StyleAdvanced, true)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestRenderCVSurvivesHistorySaveFailure(t *testing.T) {
	repo := &memRendersRepo{err: errors.New("db down")}
	p := NewProcessor(repo, nil, nil, "../../templates", "")

	pdf, rec, err := p.RenderCV(context.Background(), uuid.New(), samplePayload(), render.StyleIntermediate, false)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.NotNil(t, rec)
}
