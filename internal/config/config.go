package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
}

// AppConfig covers server-wide settings.
type AppConfig struct {
	Name       string `env:"APP_NAME, default=ArtistHub API"`
	Version    string `env:"APP_VERSION, default=1.0.0"`
	Env        string `env:"ENV, default=development"`
	Port       string `env:"PORT, default=3001"`
	APIPrefix  string `env:"API_PREFIX, default=/api/v1"`
	CORSOrigin string `env:"CORS_ORIGIN, default=http://localhost:3000"`
	LogLevel   string `env:"LOG_LEVEL, default=info"`
}

// DatabaseConfig covers the PostgreSQL connection and its static pool bounds.
type DatabaseConfig struct {
	Host        string        `env:"DB_HOST, default=localhost"`
	Port        int           `env:"DB_PORT, default=5432"`
	Name        string        `env:"DB_NAME, default=artisthub_dev"`
	Username    string        `env:"DB_USERNAME, default=postgres"`
	Password    string        `env:"DB_PASSWORD, default=password"`
	SSLMode     string        `env:"DB_SSLMODE, default=disable"`
	PoolMax     int           `env:"DB_POOL_MAX, default=10"`
	PoolMin     int           `env:"DB_POOL_MIN, default=2"`
	PoolAcquire time.Duration `env:"DB_POOL_ACQUIRE, default=30s"`
	PoolIdle    time.Duration `env:"DB_POOL_IDLE, default=10s"`
}

// RedisConfig covers the refresh-token store.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST, default=localhost"`
	Port     int    `env:"REDIS_PORT, default=6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// JWTConfig covers token issuance.
type JWTConfig struct {
	Secret        string        `env:"JWT_SECRET, default=artisthub-dev-secret-key-2024"`
	Issuer        string        `env:"JWT_ISSUER, default=artisthub-api"`
	AccessExpiry  time.Duration `env:"JWT_ACCESS_EXPIRY, default=24h"`
	RefreshExpiry time.Duration `env:"JWT_REFRESH_EXPIRY, default=168h"`
}

// SecurityConfig covers password hashing and request throttling.
type SecurityConfig struct {
	// RateLimitWindowMS is a bare millisecond count, not a duration string.
	RateLimitWindowMS int64 `env:"RATE_LIMIT_WINDOW_MS, default=900000"`
	BcryptRounds      int   `env:"BCRYPT_ROUNDS, default=10"`
	RateLimitMaxReqs  int   `env:"RATE_LIMIT_MAX_REQUESTS, default=100"`
}

// RateLimitWindow returns the throttling window as a duration.
func (s SecurityConfig) RateLimitWindow() time.Duration {
	return time.Duration(s.RateLimitWindowMS) * time.Millisecond
}

// Addr returns the Redis host:port pair.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Name, d.SSLMode)
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load builds Config from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.IsProduction() && (c.JWT.Secret == "" || c.JWT.Secret == "artisthub-dev-secret-key-2024") {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}
