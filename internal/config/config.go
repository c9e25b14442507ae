package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"tradesim/internal/pricing"
)

type Config struct {
	Server ServerConfig
	Market MarketConfig
	Limits LimitsConfig
	Demo   DemoConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// MarketConfig controls the price provider backing quotes and trades.
type MarketConfig struct {
	Prices    map[string]decimal.Decimal
	Simulated bool
	Jitter    float64
	Seed      int64
}

type LimitsConfig struct {
	RequestsPerSecond int
	Burst             int
}

// DemoConfig controls seeding of demo accounts at startup.
type DemoConfig struct {
	Enabled  bool
	Accounts int
}

// Load reads configuration from environment variables and an optional .env
// file. A malformed MARKET_PRICES aborts startup rather than silently
// serving the wrong quotes.
func Load() (*Config, error) {
	// Ignore error if the .env file doesn't exist
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Market: MarketConfig{
			Simulated: getBoolEnv("MARKET_SIMULATED", false),
			Jitter:    getFloatEnv("MARKET_JITTER", 0.02),
			Seed:      int64(getIntEnv("MARKET_SEED", 1)),
		},
		Limits: LimitsConfig{
			RequestsPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Demo: DemoConfig{
			Enabled:  getBoolEnv("DEMO_SEED", false),
			Accounts: getIntEnv("DEMO_ACCOUNTS", 3),
		},
	}

	if spec := os.Getenv("MARKET_PRICES"); spec != "" {
		prices, err := pricing.ParsePriceTable(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid MARKET_PRICES: %w", err)
		}
		config.Market.Prices = prices
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins(config.IsProduction())

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// Address returns the host:port the server binds to.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins(isProduction bool) []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if isProduction {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
