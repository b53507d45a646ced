package client

import (
	"context"
	"fmt"

	"moneymitra/internal/config"
	"moneymitra/internal/domain/entity"
	"moneymitra/internal/domain/repository"
)

// NewProvider builds the configured completion backend. Any error wraps
// entity.ErrProviderUnavailable.
func NewProvider(ctx context.Context, cfg *config.Config) (repository.CompletionProvider, error) {
	switch cfg.Provider {
	case config.ProviderCerebras:
		c, err := NewCerebrasClient(cfg.Cerebras.APIKey, cfg.Cerebras.BaseURL, cfg.Cerebras.Model)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderGemini:
		g, err := NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q: %w", cfg.Provider, entity.ErrProviderUnavailable)
	}
}
