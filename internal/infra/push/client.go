package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/subplan/notification-dispatch/internal/domain"
	"github.com/subplan/notification-dispatch/internal/observability/logging"
	"github.com/subplan/notification-dispatch/internal/observability/tracing"
)

// Client posts deliveries to the push gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendRequest struct {
	Endpoint string  `json:"endpoint"`
	P256dh   string  `json:"p256dh"`
	Auth     string  `json:"auth"`
	Message  Message `json:"message"`
}

func (c *Client) Send(ctx context.Context, device domain.Device, msg Message) (SendResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/api/v1/send"

	body, err := json.Marshal(sendRequest{
		Endpoint: device.Endpoint,
		P256dh:   device.P256dhKey,
		Auth:     device.AuthKey,
		Message:  msg,
	})
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("x-request-id", requestID)
	}
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	result := SendResult{StatusCode: resp.StatusCode}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		result.OK = true
	case http.StatusNotFound, http.StatusGone:
		// The subscription no longer exists upstream.
		result.Remove = true
		result.Reason = "endpoint gone"
	default:
		result.Reason = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	slog.DebugContext(ctx, "push delivery attempted",
		slog.String("device_id", device.ID),
		slog.Int("status_code", resp.StatusCode),
		slog.Bool("ok", result.OK),
		slog.Bool("remove", result.Remove),
	)

	return result, nil
}
