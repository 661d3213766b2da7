package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort            = "8080"
	defaultJWTTTL          = "24h"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultAnalyticsBuffer = "256"
	defaultTimezone        = "America/Sao_Paulo"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	JWTSecret       string
	JWTTTL          time.Duration
	AnalyticsBuffer int
	DefaultTimezone string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", defaultPort),
		DatabaseURL:     getEnv("DATABASE_URL", "agendamentos.db"),
		JWTSecret:       getEnv("JWT_SECRET", defaultJWTSecret),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", defaultTimezone),
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	buffer, err := strconv.Atoi(getEnv("ANALYTICS_BUFFER", defaultAnalyticsBuffer))
	if err != nil || buffer <= 0 {
		return nil, fmt.Errorf("invalid ANALYTICS_BUFFER")
	}
	cfg.AnalyticsBuffer = buffer

	if cfg.AppEnv == "production" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
