package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"0"`
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"postgres"`
	StationsFile   string `env:"STATIONS_FILE"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"500ms"`

	// Dispatch Config
	DefaultRadiusMeters  float64       `env:"DISPATCH_DEFAULT_RADIUS_METERS" envDefault:"10000"`
	MaxCandidates        int           `env:"DISPATCH_MAX_CANDIDATES" envDefault:"16"`
	AuditClaimConflicts  bool          `env:"AUDIT_CLAIM_CONFLICTS" envDefault:"false"`
	IndexRefreshInterval time.Duration `env:"INDEX_REFRESH_INTERVAL" envDefault:"2s"`
	IndexCellDegrees     float64       `env:"INDEX_CELL_DEGREES" envDefault:"0.05"`
	HeartbeatTTL         time.Duration `env:"HEARTBEAT_TTL" envDefault:"0"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		DBMaxConns:           getEnvAsInt("DB_MAX_CONNS", 0),
		StorageBackend:       strings.ToLower(getEnv("STORAGE_BACKEND", StoragePostgres)),
		StationsFile:         os.Getenv("STATIONS_FILE"),
		MigrationsPath:       getEnv("MIGRATIONS_PATH", "file://migrations"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:    getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:     getEnvAsDuration("WEBHOOK_BASE_DELAY", 500*time.Millisecond),
		DefaultRadiusMeters:  getEnvAsFloat("DISPATCH_DEFAULT_RADIUS_METERS", 10000),
		MaxCandidates:        getEnvAsInt("DISPATCH_MAX_CANDIDATES", 16),
		AuditClaimConflicts:  getEnvAsBool("AUDIT_CLAIM_CONFLICTS", false),
		IndexRefreshInterval: getEnvAsDuration("INDEX_REFRESH_INTERVAL", 2*time.Second),
		IndexCellDegrees:     getEnvAsFloat("INDEX_CELL_DEGREES", 0.05),
		HeartbeatTTL:         getEnvAsDuration("HEARTBEAT_TTL", 0),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for the postgres backend")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("DISPATCH_DEFAULT_RADIUS_METERS must be positive")
	}
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("DISPATCH_MAX_CANDIDATES must be positive")
	}
	if c.IndexRefreshInterval <= 0 {
		return fmt.Errorf("INDEX_REFRESH_INTERVAL must be positive")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
