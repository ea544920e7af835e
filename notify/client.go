package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the Resend endpoint for sending e-mails.
const DefaultEndpoint = "https://api.resend.com/emails"

// ErrDeliveryFailed is wrapped by all errors reporting a rejected message.
var ErrDeliveryFailed = errors.New("email delivery failed")

// StatusError is returned when the API answers with an unexpected status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", ErrDeliveryFailed, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrDeliveryFailed
}

// Client delivers messages through the Resend API.
type Client struct {
	Endpoint string
	APIKey   string
	HTTP     *http.Client
}

// NewClient creates a client for endpoint; an empty endpoint means
// DefaultEndpoint.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint: endpoint,
		APIKey:   apiKey,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

// maxErrorBody limits how much of an error response is kept.
const maxErrorBody = 4096

// Send delivers msg. The API accepting the message with status 200 or 202 is
// success; any other status yields a *StatusError.
func (c *Client) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if msg.ID != "" {
		req.Header.Set("Idempotency-Key", msg.ID)
	}
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	tracer().Debugf("sending message %s to %s", msg.ID, msg.To)
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		tracer().Errorf("message %s rejected with status %d", msg.ID, resp.StatusCode)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}
	tracer().Infof("message %s sent to %s", msg.ID, msg.To)
	return nil
}
