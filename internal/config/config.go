package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	AIBaseURL   string
	CORSOrigins []string
	// DatabaseURL is optional; when empty the in-memory store is used.
	DatabaseURL string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "3000"),
		JWTSecret:   fallback(os.Getenv("JWT_SECRET"), "ai-chat-secret-key"),
		AIBaseURL:   fallback(os.Getenv("AI_BASE_URL"), "http://localhost:1234/v1"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}

	seconds := fallback(os.Getenv("JWT_EXPIRATION"), "86400")
	if ttl, err := strconv.Atoi(seconds); err == nil && ttl > 0 {
		cfg.JWTTTL = time.Duration(ttl) * time.Second
	} else {
		cfg.JWTTTL = 86400 * time.Second
	}

	return cfg
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
