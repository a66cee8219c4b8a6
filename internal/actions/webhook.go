package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

// WebhookShare is the site's native share capability: it posts the
// payload to a configured share service. Concurrent shares of the same
// URL collapse into one request.
type WebhookShare struct {
	endpoint string
	client   *http.Client
	group    singleflight.Group
}

// NewWebhookShare posts to endpoint. An empty endpoint makes the
// capability unavailable.
func NewWebhookShare(endpoint string, client *http.Client) *WebhookShare {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &WebhookShare{endpoint: endpoint, client: client}
}

func (w *WebhookShare) Available() bool {
	return w != nil && w.endpoint != ""
}

func (w *WebhookShare) Invoke(ctx context.Context, p Payload) error {
	_, err, _ := w.group.Do(p.URL, func() (interface{}, error) {
		return nil, w.post(ctx, p)
	})
	return err
}

func (w *WebhookShare) post(ctx context.Context, p Payload) error {
	buf, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("share webhook: status %d body %s", resp.StatusCode, body)
	}
	return nil
}
