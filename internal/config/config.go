package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "bookshelf.db"
	defaultAccessTTL      = "1h"
	defaultRefreshTTL     = "72h"
	defaultCookieSecure   = "true"
	defaultCookieSameSite = "Lax"
	defaultCookiePath     = "/api/v1/auth"
)

// Config is built once at boot and passed into the services and middleware
// explicitly. The signing secrets have no defaults: the process refuses to
// start without them.
type Config struct {
	Port               string
	DatabaseURL        string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
	CookieSecure       bool
	CookieSameSite     http.SameSite
	CookiePath         string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               strings.TrimSpace(getEnv("PORT", defaultPort)),
		DatabaseURL:        strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		AccessTokenSecret:  strings.TrimSpace(os.Getenv("ACCESS_TOKEN_SECRET")),
		RefreshTokenSecret: strings.TrimSpace(os.Getenv("REFRESH_TOKEN_SECRET")),
		CookieSecure:       parseBoolEnv("COOKIE_SECURE", defaultCookieSecure),
		CookiePath:         strings.TrimSpace(getEnv("COOKIE_PATH", defaultCookiePath)),
	}

	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET must be set")
	}
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_SECRET must be set")
	}
	if cfg.CookiePath == "" {
		return nil, fmt.Errorf("COOKIE_PATH must not be empty")
	}

	var err error
	cfg.AccessTokenTTL, err = parseDurationEnv("ACCESS_TOKEN_TTL", defaultAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTokenTTL, err = parseDurationEnv("REFRESH_TOKEN_TTL", defaultRefreshTTL)
	if err != nil {
		return nil, err
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("REFRESH_TOKEN_TTL must be > 0")
	}

	cfg.CookieSameSite, err = parseSameSiteEnv("COOKIE_SAMESITE", defaultCookieSameSite)
	if err != nil {
		return nil, err
	}
	if cfg.CookieSameSite == http.SameSiteNoneMode && !cfg.CookieSecure {
		return nil, fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}

	return cfg, nil
}

func parseSameSiteEnv(name, fallback string) (http.SameSite, error) {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	switch value {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("%s must be one of: Lax, None, Strict", name)
	}
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
