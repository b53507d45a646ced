package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "API_PREFIX", "LOG_LEVEL", "APP_VERSION", "COMPLETION_PROVIDER", "CEREBRAS_BASE_URL", "CEREBRAS_MODEL", "GEMINI_MODEL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "2.0.0", cfg.AppVersion)
	assert.Equal(t, ProviderCerebras, cfg.Provider)
	assert.Equal(t, "https://api.cerebras.ai/v1", cfg.Cerebras.BaseURL)
	assert.Equal(t, "llama3.1-8b", cfg.Cerebras.Model)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
}

func TestLoadNormalisesPrefixAndProvider(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_PREFIX", "v1/")
	t.Setenv("COMPLETION_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/v1", cfg.APIPrefix)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "k", cfg.Gemini.APIKey)
}

func TestLoadEmptyPrefixMountsAtRoot(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_PREFIX", "/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.APIPrefix)
}

func TestLoadRequiresPort(t *testing.T) {
	t.Setenv("PORT", "")

	_, err := Load()
	assert.Error(t, err)
}
