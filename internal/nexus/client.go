package nexus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultWebhookURL is the production ingestion endpoint.
	DefaultWebhookURL = "https://nexus.zar.app/webhooks/zar_surveys"

	defaultSource  = "zar_surveys"
	defaultProject = "zar-retail-survey"
)

// Payload is the webhook request body. Source and Project are filled with
// the survey defaults when empty.
type Payload struct {
	Content   string         `json:"content"`
	Source    string         `json:"source"`
	SessionID string         `json:"session_id,omitempty"`
	Project   string         `json:"project"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type webhookResponse struct {
	SessionID string `json:"session_id"`
}

// Client posts survey documents to the knowledge ingestion webhook.
type Client struct {
	webhookURL string
	apiKey     string
	http       *http.Client
}

func NewClient(webhookURL, apiKey string) *Client {
	if webhookURL == "" {
		webhookURL = DefaultWebhookURL
	}
	return &Client{
		webhookURL: webhookURL,
		apiKey:     apiKey,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Enabled reports whether the client has an API key to authenticate with.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Send posts one payload and returns the session id the webhook assigned.
func (c *Client) Send(ctx context.Context, p Payload) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("api key not configured")
	}
	if p.Source == "" {
		p.Source = defaultSource
	}
	if p.Project == "" {
		p.Project = defaultProject
	}

	blob, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(blob))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("webhook failed status=%d body=%s", resp.StatusCode, string(body))
	}

	var out webhookResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode webhook response: %w", err)
	}
	return out.SessionID, nil
}
