package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://gutendex.com", cfg.GutendexURL)
	assert.Equal(t, "https://gutenberg.org", cfg.GutenbergURL)
	assert.Equal(t, "http://text-storage:8000", cfg.TextStorageURL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("GUTENBERG_URL", "https://files.local/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://files.local", cfg.GutenbergURL)
}

func TestLoad_RejectsBadURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"relative catalog URL", "GUTENDEX_URL", "gutendex.com"},
		{"empty storage host", "TEXT_STORAGE_URL", "http://"},
		{"non-http scheme", "GUTENBERG_URL", "ftp://files.local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
