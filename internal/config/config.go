package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultAppEnv      = "dev"
	defaultDatabaseURL = "salone.db"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	// RedisAddr selects the shared rate-limit counter; empty falls back to
	// the in-memory limiter.
	RedisAddr     string
	RedisPassword string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        strings.ToLower(getEnv("APP_ENV", defaultAppEnv)),
		Addr:          getEnv("ADDR", defaultAddr),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	if cfg.AppEnv == "prod" && cfg.DatabaseURL == defaultDatabaseURL {
		return nil, fmt.Errorf("DATABASE_URL must be set in prod")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
