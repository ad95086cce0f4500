package config

import (
	"os"
	"strconv"
	"time"
)

const (
	rateLimitMaxEntriesEnv     = "RATE_LIMIT_MAX_ENTRIES"
	rateLimitRegisterLimitEnv  = "RATE_LIMIT_REGISTER_LIMIT"
	rateLimitRegisterWindowEnv = "RATE_LIMIT_REGISTER_WINDOW_SECONDS"

	defaultRateLimitMaxEntries  = 10000
	defaultRegisterLimit        = 10
	defaultRegisterWindowSecond = 60
)

type RateLimitConfig struct {
	MaxEntries     int
	RegisterLimit  int
	RegisterWindow time.Duration
}

func LoadRateLimitConfig() *RateLimitConfig {
	maxEntries := defaultRateLimitMaxEntries
	if v := os.Getenv(rateLimitMaxEntriesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxEntries = parsed
		}
	}

	registerLimit := defaultRegisterLimit
	if v := os.Getenv(rateLimitRegisterLimitEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			registerLimit = parsed
		}
	}

	registerWindow := defaultRegisterWindowSecond
	if v := os.Getenv(rateLimitRegisterWindowEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			registerWindow = parsed
		}
	}

	return &RateLimitConfig{
		MaxEntries:     maxEntries,
		RegisterLimit:  registerLimit,
		RegisterWindow: time.Duration(registerWindow) * time.Second,
	}
}
