package domain

import (
	"time"

	"github.com/google/uuid"
)

// RenderRecord is the persisted trace of one CV render: who asked,
// which style, and what came out. Persistence is best-effort; a render
// never fails because history could not be written.
type RenderRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Style     string    `json:"style"`
	FileName  string    `json:"file_name"`
	FileSize  int       `json:"file_size"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LetterRequest carries the inputs for a cover letter render.
type LetterRequest struct {
	SenderName       string `json:"sender_name,omitempty"`
	SenderEmail      string `json:"sender_email,omitempty"`
	SenderPhone      string `json:"sender_phone,omitempty"`
	RecipientTitle   string `json:"recipient_title,omitempty"`
	Recipient        string `json:"recipient,omitempty"`
	RecipientAddress string `json:"recipient_address,omitempty"`
	Purpose          string `json:"purpose,omitempty"`
	Context          string `json:"context,omitempty"`
}

// LetterContent is the composed letter handed to the HTML template.
type LetterContent struct {
	Subject          string `json:"subject"`
	RecipientAddress string `json:"recipientAddress"`
	Greeting         string `json:"greeting"`
	Content          string `json:"content"`
	Closing          string `json:"closing"`
}
