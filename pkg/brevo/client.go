// Package brevo is a minimal client for the Brevo transactional email API.
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://api.brevo.com"

// Client is the HTTP wrapper for the Brevo REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Brevo client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// SetBaseURL overrides the default API URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SendEmail sends one transactional email via POST /v3/smtp/email.
// Brevo answers 201 on acceptance; anything else is a hard failure.
func (c *Client) SendEmail(ctx context.Context, req SendEmailRequest) error {
	url := fmt.Sprintf("%s/v3/smtp/email", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal send email request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build send email request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call brevo send API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo send error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
