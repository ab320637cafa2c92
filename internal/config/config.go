// Package config loads application configuration from the environment.
//
// Values are read once at startup into a Config struct which is then passed
// explicitly to the components that need it (hasher, token issuer, mailer,
// payment client).  Nothing reads the process environment at request time.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; nested structs group related settings.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"dev"`    // application environment (dev/test/prod)
	Port     string `env:"APP_PORT" envDefault:"3000"`  // HTTP port to listen on
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"` // debug, info, warn or error

	DB DBConfig

	// Secret salts password hashes and signs tokens.  It is required: a
	// missing secret is a startup error, never a per-request one.
	Secret     string        `env:"SECRET,required,notEmpty"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	ClientHost string        `env:"CLIENT_HOST" envDefault:"http://localhost:3001"`

	Mail        MailConfig
	RabbitMQURL string `env:"RABBITMQ_URL"` // empty disables the broker; mail is then sent in-process
	Midtrans    MidtransConfig
	Redis       RedisConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
}

// DBConfig describes the MySQL connection.
type DBConfig struct {
	User    string `env:"DB_USER,required"`
	Pass    string `env:"DB_PASS"` // empty allowed
	Host    string `env:"DB_HOST,required"`
	Port    string `env:"DB_PORT" envDefault:"3306"`
	Name    string `env:"DB_NAME,required"`
	Migrate bool   `env:"DB_MIGRATE" envDefault:"true"` // run embedded migrations on startup
}

// MailConfig configures the outgoing mail transport.
type MailConfig struct {
	From           string `env:"EMAIL_FROM" envDefault:"no-reply@acara.local"`
	FromName       string `env:"EMAIL_FROM_NAME" envDefault:"Acara"`
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
}

// MidtransConfig configures the payment gateway client.
type MidtransConfig struct {
	ServerKey      string        `env:"MIDTRANS_SERVER_KEY"`
	TransactionURL string        `env:"MIDTRANS_TRANSACTION_URL" envDefault:"https://app.sandbox.midtrans.com/snap/v1/transactions"`
	Timeout        time.Duration `env:"MIDTRANS_TIMEOUT" envDefault:"10s"`
}

// IsProduction reports whether the service runs with APP_ENV=prod.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}

// Load reads an optional .env file and parses the environment into a
// Config.  Missing required variables are reported as an error.
func Load() (Config, error) {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, errors.New("TOKEN_TTL must be positive")
	}
	cfg.RateLimit = cfg.RateLimit.normalized()
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}
	return cfg, nil
}
