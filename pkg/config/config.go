package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// OwnerID is the account every command and query is scoped to.
	OwnerID string

	// Client selection. When UseMock is true the in-memory substitute
	// replaces both remote services. Chosen once at startup, never at
	// runtime.
	UseMock bool

	// Remote services. The command and query sides are separate
	// deployments on separate ports of the same host.
	DefaultHost string
	CommandPort int
	QueryPort   int
	HTTPTimeout time.Duration

	// Mock behavior
	MockLatency time.Duration

	// View-model
	RefreshDelay time.Duration
	PageSize     int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		OwnerID: getEnv("SCHEDSYNC_OWNER_ID", "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"),

		UseMock: getBoolEnv("SCHEDSYNC_USE_MOCK", true),

		DefaultHost: getEnv("SCHEDSYNC_DEFAULT_HOST", "192.168.0.41"),
		CommandPort: getIntEnv("SCHEDSYNC_COMMAND_PORT", 8081),
		QueryPort:   getIntEnv("SCHEDSYNC_QUERY_PORT", 8082),
		HTTPTimeout: getDurationEnv("SCHEDSYNC_HTTP_TIMEOUT", 15*time.Second),

		MockLatency: getDurationEnv("SCHEDSYNC_MOCK_LATENCY", 500*time.Millisecond),

		RefreshDelay: getDurationEnv("SCHEDSYNC_REFRESH_DELAY", time.Second),
		PageSize:     getIntEnv("SCHEDSYNC_PAGE_SIZE", 20),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
