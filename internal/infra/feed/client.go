package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/subplan/notification-dispatch/internal/backoff"
	"github.com/subplan/notification-dispatch/internal/domain"
	"github.com/subplan/notification-dispatch/internal/observability/logging"
	"github.com/subplan/notification-dispatch/internal/observability/tracing"
)

// Client fetches substitution rows over HTTP from the feed service.
type Client struct {
	baseURL    string
	maxRetries int
	httpClient *http.Client
}

func NewClient(baseURL string, maxRetries int, timeout time.Duration) *Client {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		baseURL:    baseURL,
		maxRetries: maxRetries,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type dayResponse struct {
	Date string                   `json:"date"`
	Rows []domain.SubstitutionRow `json:"rows"`
}

// FetchDay retrieves the rows for one date, retrying transient failures with
// jittered exponential backoff. Non-retryable responses and exhausted retries
// surface as *UnavailableError so the caller aborts the cycle.
func (c *Client) FetchDay(ctx context.Context, date time.Time) ([]domain.SubstitutionRow, error) {
	dateKey := domain.DateKey(date)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		rows, retryable, err := c.fetchOnce(ctx, dateKey)
		if err == nil {
			return rows, nil
		}
		lastErr = err

		if !retryable || attempt == c.maxRetries {
			break
		}

		delay := backoff.Delay(attempt, backoff.DefaultBaseDelay, backoff.DefaultMaxDelay)
		slog.WarnContext(ctx, "feed fetch failed, retrying",
			slog.String("date", dateKey),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return nil, &UnavailableError{DateKey: dateKey, Err: ctx.Err()}
		case <-time.After(delay):
		}
	}

	if ue, ok := lastErr.(*UnavailableError); ok {
		return nil, ue
	}
	return nil, &UnavailableError{DateKey: dateKey, Err: lastErr}
}

func (c *Client) fetchOnce(ctx context.Context, dateKey string) (rows []domain.SubstitutionRow, retryable bool, err error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/api/v1/substitutions"
	q := u.Query()
	q.Set("date", dateKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("x-request-id", requestID)
	}
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, &UnavailableError{DateKey: dateKey, StatusCode: resp.StatusCode}
	default:
		return nil, false, &UnavailableError{DateKey: dateKey, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response body: %w", err)
	}

	var day dayResponse
	if err := json.Unmarshal(body, &day); err != nil {
		return nil, false, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.DebugContext(ctx, "fetched substitution rows",
		slog.String("date", dateKey),
		slog.Int("count", len(day.Rows)),
	)

	return day.Rows, false, nil
}
