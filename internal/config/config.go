package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	ProviderCerebras = "cerebras"
	ProviderGemini   = "gemini"
)

// Config holds application configuration
type Config struct {
	Port        string
	APIPrefix   string
	LogLevel    string
	AppVersion  string
	CORSOrigins string

	Provider string
	Cerebras ModelConfig
	Gemini   ModelConfig
}

type ModelConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		APIPrefix:   getEnv("API_PREFIX", "/api"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		AppVersion:  getEnv("APP_VERSION", "2.0.0"),
		CORSOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		Provider:    strings.ToLower(getEnv("COMPLETION_PROVIDER", ProviderCerebras)),
		Cerebras: ModelConfig{
			APIKey:  os.Getenv("CEREBRAS_API_KEY"),
			BaseURL: getEnv("CEREBRAS_BASE_URL", "https://api.cerebras.ai/v1"),
			Model:   getEnv("CEREBRAS_MODEL", "llama3.1-8b"),
		},
		Gemini: ModelConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			BaseURL: os.Getenv("GEMINI_BASE_URL"),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	cfg.APIPrefix = "/" + strings.Trim(cfg.APIPrefix, "/")
	if cfg.APIPrefix == "/" {
		cfg.APIPrefix = ""
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
