package config

import (
	"os"
	"strconv"
	"time"
)

const (
	pushGatewayURLEnv     = "PUSH_GATEWAY_URL"
	pushRequestTimeoutEnv = "PUSH_REQUEST_TIMEOUT_SECONDS"

	defaultPushRequestTimeout = 15 * time.Second
)

type PushConfig struct {
	// GatewayURL is the push relay that performs the Web Push crypto
	// handshake. Endpoint-specific delivery details stay behind it.
	GatewayURL     string
	RequestTimeout time.Duration
}

func LoadPushConfig() *PushConfig {
	timeout := defaultPushRequestTimeout
	if v := os.Getenv(pushRequestTimeoutEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	return &PushConfig{
		GatewayURL:     os.Getenv(pushGatewayURLEnv),
		RequestTimeout: timeout,
	}
}
