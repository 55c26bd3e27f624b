package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddress = ":3000"
	defaultMaxCookieAge  = 3600
	defaultSubPath       = ""
)

// Config carries every runtime setting for one portal. It is built once in
// app.Run and passed into clients, services and middleware explicitly.
type Config struct {
	ServerAddress        string
	BackendHost          string
	Host                 string
	SubPath              string
	ColaURL              string
	MaxCookieAge         int
	SessionSecret        string
	AdvertBuilderEnabled bool
}

func Load() (*Config, error) {
	// A missing .env file is fine: production supplies real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:        envOrDefault("SERVER_ADDRESS", defaultServerAddress),
		BackendHost:          os.Getenv("BACKEND_HOST"),
		Host:                 os.Getenv("HOST"),
		SubPath:              envOrDefault("SUB_PATH", defaultSubPath),
		ColaURL:              os.Getenv("COLA_URL"),
		SessionSecret:        os.Getenv("SESSION_SECRET"),
		AdvertBuilderEnabled: os.Getenv("FEATURE_ADVERT_BUILDER") == "enabled",
		MaxCookieAge:         defaultMaxCookieAge,
	}

	if cfg.BackendHost == "" {
		return nil, fmt.Errorf("BACKEND_HOST is not set")
	}

	if raw := os.Getenv("MAX_COOKIE_AGE"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("MAX_COOKIE_AGE must be a number of seconds, got `%s`: %w", raw, err)
		}
		cfg.MaxCookieAge = age
	}

	return cfg, nil
}

func envOrDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
