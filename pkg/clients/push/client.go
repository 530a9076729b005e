package push

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/rabbitry/internal/config"
)

// Client delivers reminder messages to an external notification webhook.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one reminder pushed to the webhook.
type Message struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Tag     string `json:"tag"`
	DueDate string `json:"dueDate,omitempty"`
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
}

// NewClient builds a webhook push client using the provided configuration.
func NewClient(cfg config.PushConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(cfg.URL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.Token != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token))
	}

	return &WebhookClient{httpClient: restyClient}
}

// apiError represents the webhook's error payload.
type apiError struct {
	Error string `json:"error"`
}

// Send posts one message to the webhook. Delivery is best-effort; callers log
// failures and move on.
func (c *WebhookClient) Send(ctx context.Context, msg Message) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(msg).
		SetError(apiErr).
		Post("")
	if err != nil {
		return fmt.Errorf("send push message: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("push webhook error: status=%d, message=%s", resp.StatusCode(), apiErr.Error)
	}

	return nil
}
