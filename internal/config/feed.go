package config

import (
	"os"
	"strconv"
	"time"
)

const (
	feedURLEnv            = "FEED_URL"
	feedMaxRetriesEnv     = "FEED_MAX_RETRIES"
	feedRequestTimeoutEnv = "FEED_REQUEST_TIMEOUT_SECONDS"

	defaultFeedMaxRetries     = 3
	defaultFeedRequestTimeout = 30 * time.Second
)

type FeedConfig struct {
	BaseURL        string
	MaxRetries     int
	RequestTimeout time.Duration
}

func LoadFeedConfig() *FeedConfig {
	maxRetries := defaultFeedMaxRetries
	if v := os.Getenv(feedMaxRetriesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	timeout := defaultFeedRequestTimeout
	if v := os.Getenv(feedRequestTimeoutEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	return &FeedConfig{
		BaseURL:        os.Getenv(feedURLEnv),
		MaxRetries:     maxRetries,
		RequestTimeout: timeout,
	}
}
