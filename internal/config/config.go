package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      string `envconfig:"ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	Port    string `envconfig:"PORT" default:"50051"`
	WebPort string `envconfig:"WEB_PORT" default:"8080"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"15m"`

	// zero disables the simulated delay
	CatalogLatency     time.Duration `envconfig:"CATALOG_LATENCY" default:"0s"`
	AppointmentLatency time.Duration `envconfig:"APPOINTMENT_LATENCY" default:"0s"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
	// honor X-Forwarded-For only behind a proxy that sets it
	TrustProxy bool `envconfig:"TRUST_PROXY" default:"false"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func (c Config) Pretty() bool {
	return c.Env == "development"
}

// Load reads a .env file when one exists, then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if c.JWTSecret == "" {
		return Config{}, errors.New("config: JWT_SECRET is empty")
	}
	if c.TokenTTL <= 0 {
		return Config{}, errors.New("config: TOKEN_TTL must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return Config{}, errors.New("config: rate limit must be positive")
	}
	return c, nil
}
