package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"eventlineup/internal/domain"
)

type httpNotifier struct {
	client *http.Client
	signer *Signer
}

// NewHTTPNotifier returns a WebhookNotifier that POSTs the notification as JSON.
// When signer is non-nil each request carries "Authorization: Bearer <token>".
func NewHTTPNotifier(client *http.Client, signer *Signer) domain.WebhookNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpNotifier{client: client, signer: signer}
}

func (n *httpNotifier) Notify(ctx context.Context, url string, notification domain.ExportNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.signer != nil {
		token, err := n.signer.Sign(notification.JobID, body)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status: %d", resp.StatusCode)
	}
	return nil
}
