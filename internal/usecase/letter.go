package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"cv-builder/internal/domain"
)

// ComposeLetter builds the letter body from the request fields. It is
// the deterministic fallback path; callers may replace Content with
// AI-improved text before rendering.
func ComposeLetter(req domain.LetterRequest) domain.LetterContent {
	subject := "Letter"
	if p := strings.TrimSpace(req.Purpose); p != "" {
		subject = "Application: " + strings.ToUpper(p[:1]) + p[1:]
	}

	greeting := "Dear " + strings.TrimSpace(strings.Join(strings.Fields(req.RecipientTitle+" "+req.Recipient), " ")) + ","
	if strings.TrimSpace(req.RecipientTitle+req.Recipient) == "" {
		greeting = "To whom it may concern,"
	}

	lines := []string{}
	if p := strings.TrimSpace(req.Purpose); p != "" {
		lines = append(lines, "I am writing regarding "+p+".")
	} else {
		lines = append(lines, "I am writing to you.")
	}
	if c := strings.TrimSpace(req.Context); c != "" {
		lines = append(lines, c)
	}
	lines = append(lines, "Please consider this as my formal communication.")

	closing := "Sincerely,"
	if n := strings.TrimSpace(req.SenderName); n != "" {
		closing += " " + n
	}

	return domain.LetterContent{
		Subject:          subject,
		RecipientAddress: strings.TrimSpace(req.RecipientAddress),
		Greeting:         greeting,
		Content:          strings.Join(lines, "\n\n"),
		Closing:          closing,
	}
}

// RenderLetter fills the letter template and prints it to PDF through
// the HTML renderer.
func (p *Processor) RenderLetter(ctx context.Context, req domain.LetterRequest) ([]byte, error) {
	if p.letters == nil {
		return nil, fmt.Errorf("letter renderer not configured")
	}
	content := ComposeLetter(req)

	if p.enhancer != nil {
		content.Content = p.enhanceText(ctx, "letter", content.Content)
	}

	tpl, err := template.ParseFiles(filepath.Join(p.tplDir, "letter.html"))
	if err != nil {
		return nil, fmt.Errorf("parse letter template: %w", err)
	}
	var html bytes.Buffer
	if err := tpl.Execute(&html, content); err != nil {
		return nil, fmt.Errorf("execute letter template: %w", err)
	}
	return p.letters.RenderHTMLToPDF(ctx, html.String())
}
