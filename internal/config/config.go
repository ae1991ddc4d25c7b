package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	TLSCert         string
	TLSKey          string
	TokenKey        string
	DatabaseURL     string
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

var Keys = []string{"ADDR", "TLS_CERT", "TLS_KEY", "TOKEN_KEY", "DATABASE_URL", "RATE_LIMIT", "RATE_BURST", "SHUTDOWN_TIMEOUT"}

// Load reads the given .env files (default ".env") into the environment and
// builds the config. Missing files are fine, real environment wins.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Addr:        env("ADDR", ":443"),
		TLSCert:     env("TLS_CERT", "server.crt"),
		TLSKey:      env("TLS_KEY", "server.key"),
		TokenKey:    os.Getenv("TOKEN_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.TokenKey == "" {
		return Config{}, errors.New("TOKEN_KEY environment variable is not set")
	}

	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(env("RATE_LIMIT", "1"), 64); err != nil || cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("bad RATE_LIMIT %q", os.Getenv("RATE_LIMIT"))
	}
	if cfg.RateBurst, err = strconv.Atoi(env("RATE_BURST", "3")); err != nil || cfg.RateBurst <= 0 {
		return Config{}, fmt.Errorf("bad RATE_BURST %q", os.Getenv("RATE_BURST"))
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(env("SHUTDOWN_TIMEOUT", "5s")); err != nil {
		return Config{}, fmt.Errorf("bad SHUTDOWN_TIMEOUT: %w", err)
	}
	return cfg, nil
}

// TLS is off when both TLS_CERT and TLS_KEY are set to empty strings.
func (c Config) TLS() bool {
	return c.TLSCert != "" || c.TLSKey != ""
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
