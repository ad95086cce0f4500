package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	dbHostEnv     = "DB_HOST"
	dbPortEnv     = "DB_PORT"
	dbNameEnv     = "DB_NAME"
	dbUserEnv     = "DB_USER"
	dbPasswordEnv = "DB_PASSWORD"
	dbSSLModeEnv  = "DB_SSLMODE"

	defaultDBHost    = "localhost"
	defaultDBPort    = 5432
	defaultDBName    = "subplan"
	defaultDBUser    = "postgres"
	defaultDBSSLMode = "disable"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
}

func LoadDatabaseConfig() *DatabaseConfig {
	host := os.Getenv(dbHostEnv)
	if host == "" {
		host = defaultDBHost
	}

	port := defaultDBPort
	if raw := os.Getenv(dbPortEnv); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			port = parsed
		}
	}

	name := os.Getenv(dbNameEnv)
	if name == "" {
		name = defaultDBName
	}

	user := os.Getenv(dbUserEnv)
	if user == "" {
		user = defaultDBUser
	}

	sslMode := os.Getenv(dbSSLModeEnv)
	if sslMode == "" {
		sslMode = defaultDBSSLMode
	}

	return &DatabaseConfig{
		Host:     host,
		Port:     port,
		Name:     name,
		User:     user,
		Password: os.Getenv(dbPasswordEnv),
		SSLMode:  sslMode,
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
