package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"cv-builder/internal/domain"
	"cv-builder/internal/model"
	"cv-builder/internal/render"

	"github.com/google/uuid"
)

// Renderer turns HTML into PDF bytes; used for cover letters, which
// keep the template-based pipeline instead of the box-layout engine.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// RendersRepo records render history.
type RendersRepo interface {
	Save(ctx context.Context, rec *domain.RenderRecord) error
}

// Enhancer improves free-text sections before rendering. Optional.
type Enhancer interface {
	EnhanceSection(ctx context.Context, section, text string) (string, error)
}

// Processor drives a CV or letter render end to end: enhancement,
// document conversion, generation, history.
type Processor struct {
	repo      RendersRepo
	enhancer  Enhancer
	letters   Renderer
	tplDir    string
	mediaRoot string
}

func NewProcessor(repo RendersRepo, enhancer Enhancer, letters Renderer, tplDir, mediaRoot string) *Processor {
	return &Processor{repo: repo, enhancer: enhancer, letters: letters, tplDir: tplDir, mediaRoot: mediaRoot}
}

// RenderCV validates, optionally enhances and renders the aggregated
// CV data in the requested style. Schema violations are logged, not
// fatal; the builders tolerate partial data.
func (p *Processor) RenderCV(ctx context.Context, userID uuid.UUID, data map[string]interface{}, style render.Style, enhance bool) ([]byte, *domain.RenderRecord, error) {
	if err := model.ValidateMap(p.tplDir, data); err != nil {
		slog.Warn("cv payload failed schema validation, rendering anyway", "user_id", userID, "error", err)
	}
	doc := model.FromMap(data)

	if enhance && p.enhancer != nil {
		doc.ProfileSummary = p.enhanceText(ctx, "profile_summary", doc.ProfileSummary)
		doc.CareerObj = p.enhanceText(ctx, "career_objective", doc.CareerObj)
	}

	var buf bytes.Buffer
	if err := render.Generate(doc, style, &buf, render.Options{MediaRoot: p.mediaRoot}); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	rec := &domain.RenderRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Style:     string(style),
		FileName:  fmt.Sprintf("%s_cv_%s.pdf", userID, style),
		FileSize:  buf.Len(),
		Status:    "completed",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.repo != nil {
		if err := p.repo.Save(ctx, rec); err != nil {
			slog.Warn("failed to save render history", "render_id", rec.ID, "error", err)
		}
	}
	return buf.Bytes(), rec, nil
}

// enhanceText calls the ai-service for one section, keeping the
// original text on any failure.
func (p *Processor) enhanceText(ctx context.Context, section, text string) string {
	if text == "" {
		return text
	}
	out, err := p.enhancer.EnhanceSection(ctx, section, text)
	if err != nil {
		slog.Warn("text enhancement failed, keeping original", "section", section, "error", err)
		return text
	}
	return out
}
