package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultBaseURL = "https://api.sendgrid.com"

// Client issues the outbound mail send call. The concrete APIClient
// talks to SendGrid; tests substitute a fake.
type Client interface {
	Send(ctx context.Context, msg *Message) error
}

// APIClient sends mail via the SendGrid v3 Mail Send API.
type APIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures an APIClient.
type ClientOption func(*APIClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *APIClient) { c.httpClient = hc }
}

// WithBaseURL overrides the API endpoint, e.g. for a test server.
func WithBaseURL(u string) ClientOption {
	return func(c *APIClient) { c.baseURL = u }
}

// NewAPIClient creates a client authenticated with apiKey.
func NewAPIClient(apiKey string, opts ...ClientOption) *APIClient {
	c := &APIClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Send posts msg to the mail send endpoint.
func (c *APIClient) Send(ctx context.Context, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("sendgrid: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sendgrid: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: returned status %d", resp.StatusCode)
	}
	return nil
}
