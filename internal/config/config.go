package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/passadmin/passadmin-go/internal/crypto"
)

const devSecret = "dev-secret-change-in-production"

var ErrInsecureSecret = errors.New("JWT_SECRET must be changed in production")

type Config struct {
	Port string
	Env  string

	RandomSource string
	RandomSeed   uint64

	DefaultLength     int
	DefaultSeparators bool
	MaxLength         int

	RateLimitRPS   float64
	RateLimitBurst int

	// An empty JWTSecret leaves the API unauthenticated.
	JWTSecret string
	JWTExpiry time.Duration
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		RandomSource: strings.ToLower(getEnv("RANDOM_SOURCE", crypto.SourceCrypto)),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}

	var err error
	if cfg.RandomSeed, err = getUint("RANDOM_SEED", 0); err != nil {
		return Config{}, err
	}
	if cfg.DefaultLength, err = getInt("DEFAULT_LENGTH", 12); err != nil {
		return Config{}, err
	}
	if cfg.DefaultSeparators, err = getBool("DEFAULT_SEPARATORS", true); err != nil {
		return Config{}, err
	}
	if cfg.MaxLength, err = getInt("MAX_LENGTH", 128); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 5); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 10); err != nil {
		return Config{}, err
	}
	if cfg.JWTExpiry, err = getDuration("JWT_EXPIRY", 24*time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.RandomSource != crypto.SourceCrypto && cfg.RandomSource != crypto.SourceMath {
		return Config{}, fmt.Errorf("RANDOM_SOURCE: %w: %q", crypto.ErrUnknownSource, cfg.RandomSource)
	}
	if cfg.DefaultLength < crypto.MinLength {
		return Config{}, fmt.Errorf("DEFAULT_LENGTH must be at least %d", crypto.MinLength)
	}
	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		return Config{}, ErrInsecureSecret
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in the production environment.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getUint(key string, fallback uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
