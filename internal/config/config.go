package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Port     string
	LogLevel slog.Level

	Feed      *FeedConfig
	Push      *PushConfig
	Redis     *RedisConfig
	Database  *DatabaseConfig
	Dispatch  *DispatchConfig
	RateLimit *RateLimitConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:      port,
		LogLevel:  parseLogLevel(os.Getenv("LOG_LEVEL")),
		Feed:      LoadFeedConfig(),
		Push:      LoadPushConfig(),
		Redis:     redisConfig,
		Database:  LoadDatabaseConfig(),
		Dispatch:  LoadDispatchConfig(),
		RateLimit: LoadRateLimitConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
