package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cv-builder/internal/domain"
	"cv-builder/internal/render"
	"cv-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Aggregator assembles the CV data document for a user from the
// per-section stores.
type Aggregator interface {
	AggregateCV(ctx context.Context, userID string) (map[string]interface{}, error)
}

// Entitlements gates premium export styles.
type Entitlements interface {
	HasPremium(ctx context.Context, userID string) (bool, error)
}

type Handler struct {
	processor    *usecase.Processor
	aggregator   Aggregator
	entitlements Entitlements
}

func NewHandler(p *usecase.Processor, agg Aggregator, ent Entitlements) *Handler {
	return &Handler{processor: p, aggregator: agg, entitlements: ent}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/cv/:style", h.RenderCV)
	app.Post("/letters", h.RenderLetter)
}

// RenderCV serves GET /cv/:style. With ?format=json the aggregated
// document is returned instead of a PDF; ?enhance=true routes the
// free-text sections through the ai-service first.
func (h *Handler) RenderCV(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Get("X-User-ID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid or missing X-User-ID"})
	}

	style, err := render.ParseStyle(c.Params("style"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cv style"})
	}

	// Premium gate applies to the advanced export only.
	if style == render.StyleAdvanced && h.entitlements != nil {
		ok, err := h.entitlements.HasPremium(c.Context(), userID.String())
		if err != nil || !ok {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "premium export requires an active payment"})
		}
	}

	data, err := h.aggregator.AggregateCV(c.Context(), userID.String())
	if err != nil {
		slog.Error("cv aggregation failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load profile"})
	}

	if c.Query("format") == "json" {
		return c.JSON(data)
	}

	pdf, rec, err := h.processor.RenderCV(c.Context(), userID, data, style, c.QueryBool("enhance"))
	if err != nil {
		if errors.Is(err, render.ErrUnknownStyle) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cv style"})
		}
		slog.Error("cv render failed", "user_id", userID, "style", style, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cv render failed"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", rec.FileName))
	return c.Send(pdf)
}

// RenderLetter serves POST /letters.
func (h *Handler) RenderLetter(c *fiber.Ctx) error {
	var req domain.LetterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	pdf, err := h.processor.RenderLetter(c.Context(), req)
	if err != nil {
		slog.Error("letter render failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "letter render failed"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="letter.pdf"`)
	return c.Send(pdf)
}
