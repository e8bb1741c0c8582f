// Package brevo sends transactional email through the Brevo HTTP API.
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api.brevo.com/v3/smtp/email"

// Mailer implements ports.Mailer against the Brevo v3 transactional API.
type Mailer struct {
	apiKey      string
	senderEmail string
	senderName  string
	endpoint    string
	client      *http.Client
}

// Option customizes a Mailer.
type Option func(*Mailer)

// WithEndpoint overrides the API endpoint, used by tests.
func WithEndpoint(endpoint string) Option {
	return func(m *Mailer) { m.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Mailer) { m.client = client }
}

// NewMailer creates a Brevo mailer sending on behalf of the given sender.
func NewMailer(apiKey, senderEmail, senderName string, opts ...Option) *Mailer {
	m := &Mailer{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		endpoint:    defaultEndpoint,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type party struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	Subject     string  `json:"subject"`
	HTMLContent string  `json:"htmlContent"`
}

// Send delivers one email. Any non-2xx answer from the API is an error, so
// the outbox dispatcher keeps the row and retries later.
func (m *Mailer) Send(ctx context.Context, toEmail, toName, subject, body string) error {
	payload, err := json.Marshal(sendRequest{
		Sender:      party{Email: m.senderEmail, Name: m.senderName},
		To:          []party{{Email: toEmail, Name: toName}},
		Subject:     subject,
		HTMLContent: body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("brevo: send failed with status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
