package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Stripe    StripeConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Public    PublicConfig
	N8N       N8NConfig
	AI        AIConfig
	Log       LogConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds the single admin account and token signing secret
type AuthConfig struct {
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
}

// StripeConfig holds the payment provider settings. Every field is optional:
// an empty secret key disables the Stripe workflows instead of failing boot.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	APIURL        string
}

// RedisConfig holds Redis connection settings used by the rate limiter
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RateLimitConfig holds per-minute request budgets
type RateLimitConfig struct {
	AuthPerMinute   int
	AdminPerMinute  int
	ChatPerMinute   int
	PublicPerMinute int
}

// PublicConfig holds the API key and tenant identity of the public read API.
// An empty key rejects every public request.
type PublicConfig struct {
	APIKey     string
	TenantName string
	TenantSlug string
}

// N8NConfig holds the tool relay webhook. Empty disables tool calls.
type N8NConfig struct {
	WebhookURL string
}

// AIConfig holds provider keys used when the stored chat settings carry none
type AIConfig struct {
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string
}

// LogConfig holds logger settings. File is optional; when set, logs are also
// written to a rotating file.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
	Version   string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{}

	var err error
	if cfg.Database, err = LoadDatabase(); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.AdminEmail, err = requireEnv("ADMIN_EMAIL"); err != nil {
		return nil, err
	}
	if cfg.Auth.AdminPasswordHash, err = requireEnv("ADMIN_PASSWORD_HASH"); err != nil {
		return nil, err
	}

	cfg.Stripe = LoadStripe()

	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if cfg.RateLimit.AuthPerMinute, err = getIntEnv("RATE_LIMIT_AUTH", 5); err != nil {
		return nil, err
	}
	if cfg.RateLimit.AdminPerMinute, err = getIntEnv("RATE_LIMIT_ADMIN", 60); err != nil {
		return nil, err
	}
	if cfg.RateLimit.ChatPerMinute, err = getIntEnv("RATE_LIMIT_CHAT", 20); err != nil {
		return nil, err
	}
	if cfg.RateLimit.PublicPerMinute, err = getIntEnv("RATE_LIMIT_PUBLIC", 60); err != nil {
		return nil, err
	}

	cfg.Public = PublicConfig{
		APIKey:     os.Getenv("ADMIN_API_KEY"),
		TenantName: getEnvWithDefault("TENANT_NAME", "Default"),
		TenantSlug: getEnvWithDefault("TENANT_SLUG", "default"),
	}
	cfg.N8N.WebhookURL = os.Getenv("N8N_WEBHOOK_URL")
	cfg.AI = AIConfig{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
	}

	cfg.Log.Level = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.Log.File = os.Getenv("LOG_FILE")
	if cfg.Log.MaxSizeMB, err = getIntEnv("LOG_MAX_SIZE_MB", 100); err != nil {
		return nil, err
	}
	if cfg.Log.MaxBackups, err = getIntEnv("LOG_MAX_BACKUPS", 5); err != nil {
		return nil, err
	}
	if cfg.Log.MaxAgeDays, err = getIntEnv("LOG_MAX_AGE_DAYS", 30); err != nil {
		return nil, err
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	cfg.Server.Version = getEnvWithDefault("APP_VERSION", "1.0.0")

	return cfg, nil
}

// LoadDatabase reads only the database settings. The operator CLI uses it
// so maintenance commands do not need the server's secrets.
func LoadDatabase() (DatabaseConfig, error) {
	if err := loadEnvFile(); err != nil {
		return DatabaseConfig{}, err
	}

	var db DatabaseConfig
	var err error
	if db.Host, err = requireEnv("DB_HOST"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Name, err = requireEnv("DB_NAME"); err != nil {
		return DatabaseConfig{}, err
	}
	db.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")
	return db, nil
}

// LoadStripe reads the optional Stripe settings. env.local is picked up by a
// preceding Load or LoadDatabase.
func LoadStripe() StripeConfig {
	return StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		APIURL:        getEnvWithDefault("STRIPE_API_URL", "https://api.stripe.com"),
	}
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// loadEnvFile loads env.local in non-production environments. Variables
// already set in the environment win.
func loadEnvFile() error {
	if os.Getenv("GO_ENV") == "production" {
		return nil
	}
	if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env.local: %w", err)
	}
	return nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
