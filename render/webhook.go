package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hupe1980/agenttrace/core"
)

// defaultWebhookTimeout bounds one delivery attempt end to end.
const defaultWebhookTimeout = 10 * time.Second

// WebhookOptions configures a Webhook renderer.
type WebhookOptions struct {
	// HTTPClient performs the deliveries. Defaults to a client with a
	// 10 second timeout.
	HTTPClient *http.Client
}

// Webhook delivers events and summaries as JSON documents via HTTP POST.
// Each render is one synchronous delivery attempt; there is no queueing or
// retry, matching the advisory nature of render errors.
type Webhook struct {
	url    string
	client *http.Client
}

var _ core.Renderer = (*Webhook)(nil)

// NewWebhook creates a webhook renderer posting to the given URL.
func NewWebhook(url string, optFns ...func(o *WebhookOptions)) *Webhook {
	opts := WebhookOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultWebhookTimeout}
	}
	return &Webhook{url: url, client: opts.HTTPClient}
}

// WithHTTPClient replaces the delivery client.
func WithHTTPClient(client *http.Client) func(o *WebhookOptions) {
	return func(o *WebhookOptions) { o.HTTPClient = client }
}

// URL returns the delivery endpoint.
func (w *Webhook) URL() string { return w.url }

// Render posts the event.
func (w *Webhook) Render(ev core.Event) error {
	return w.post(ev)
}

// RenderSummary posts the summary tagged with the session_summary record
// type.
func (w *Webhook) RenderSummary(s core.Summary) error {
	return w.post(summaryRecord{EventType: summaryRecordType, Summary: s})
}

func (w *Webhook) post(payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("delivering to webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
