package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config is the process configuration: built once at startup, validated,
// and never mutated afterwards.
type Config struct {
	Addr string

	// GutendexURL is the catalog search endpoint base.
	GutendexURL string
	// GutenbergURL is the trusted origin every content URL is rewritten
	// onto.
	GutenbergURL string
	// TextStorageURL is the downstream text-storage service base.
	TextStorageURL string

	// JWTSecret verifies caller credentials. Required.
	JWTSecret string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		GutendexURL:    getEnv("GUTENDEX_URL", "https://gutendex.com"),
		GutenbergURL:   getEnv("GUTENBERG_URL", "https://gutenberg.org"),
		TextStorageURL: getEnv("TEXT_STORAGE_URL", "http://text-storage:8000"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variable: JWT_SECRET")
	}

	for name, raw := range map[string]*string{
		"GUTENDEX_URL":     &cfg.GutendexURL,
		"GUTENBERG_URL":    &cfg.GutenbergURL,
		"TEXT_STORAGE_URL": &cfg.TextStorageURL,
	} {
		u, err := url.Parse(*raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%s: not an absolute URL: %q", name, *raw)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("%s: unsupported scheme %q", name, u.Scheme)
		}
		*raw = strings.TrimRight(*raw, "/")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
