// Package ai is the handle for the external text-improvement service.
// The render core never touches it; callers use it to pre-process
// free-text sections before rendering.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the ai-service over HTTP. Construct one explicitly and
// pass it where needed; there is no package-level singleton.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Language string
}

func NewClient(baseURL, language string) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     &http.Client{Timeout: 30 * time.Second},
		Language: language,
	}
}

type enhanceRequest struct {
	Section  string `json:"section"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

type enhanceResponse struct {
	Output string `json:"output"`
}

// doPostWithRetry performs an HTTP POST to the given path with
// exponential backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	const attempts = 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// EnhanceSection asks the ai-service to improve one free-text CV
// section and returns the rewritten text. Callers are expected to keep
// the original text when this fails.
func (c *Client) EnhanceSection(ctx context.Context, section, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	body, err := json.Marshal(enhanceRequest{Section: section, Text: text, Language: c.Language})
	if err != nil {
		return "", err
	}
	resp, err := c.doPostWithRetry(ctx, "/v1/enhance", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("ai-service returned %d: %s", resp.StatusCode, string(b))
	}
	var out enhanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Output) == "" {
		return "", fmt.Errorf("ai-service returned empty output")
	}
	return out.Output, nil
}
