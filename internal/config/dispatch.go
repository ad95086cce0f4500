package config

import (
	"os"
	"strconv"
)

const (
	dispatchUserConcurrencyEnv = "DISPATCH_USER_CONCURRENCY"
	dispatchWindowFromEnv      = "DISPATCH_WINDOW_FROM_MINUTE"
	dispatchWindowToEnv        = "DISPATCH_WINDOW_TO_MINUTE"
	feedCapPerMinuteEnv        = "FEED_CAP_PER_MINUTE"
	pushCapPerMinuteEnv        = "PUSH_CAP_PER_MINUTE"

	defaultUserConcurrency = 8
	// Deliveries run between 06:00 and 21:00 local time unless forced.
	defaultWindowFromMinute = 6 * 60
	defaultWindowToMinute   = 21 * 60
	defaultFeedCapPerMinute = 30
	defaultPushCapPerMinute = 600
)

type DispatchConfig struct {
	UserConcurrency  int
	WindowFromMinute int
	WindowToMinute   int
	FeedCapPerMinute int
	PushCapPerMinute int
}

func LoadDispatchConfig() *DispatchConfig {
	concurrency := defaultUserConcurrency
	if v := os.Getenv(dispatchUserConcurrencyEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			concurrency = parsed
		}
	}

	windowFrom := defaultWindowFromMinute
	if v := os.Getenv(dispatchWindowFromEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < 24*60 {
			windowFrom = parsed
		}
	}

	windowTo := defaultWindowToMinute
	if v := os.Getenv(dispatchWindowToEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 24*60 {
			windowTo = parsed
		}
	}

	feedCap := defaultFeedCapPerMinute
	if v := os.Getenv(feedCapPerMinuteEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			feedCap = parsed
		}
	}

	pushCap := defaultPushCapPerMinute
	if v := os.Getenv(pushCapPerMinuteEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			pushCap = parsed
		}
	}

	return &DispatchConfig{
		UserConcurrency:  concurrency,
		WindowFromMinute: windowFrom,
		WindowToMinute:   windowTo,
		FeedCapPerMinute: feedCap,
		PushCapPerMinute: pushCap,
	}
}
