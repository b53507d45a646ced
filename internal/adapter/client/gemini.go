package client

import (
	"context"
	"fmt"

	"moneymitra/internal/domain/entity"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient uses the public Gemini API; baseURL overrides the endpoint
// when non-empty.
func NewGeminiClient(ctx context.Context, apiKey, baseURL, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set: %w", entity.ErrProviderUnavailable)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %v: %w", err, entity.ErrProviderUnavailable)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, req entity.CompletionRequest) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.User), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
		MaxOutputTokens:   int32(req.MaxTokens),
	})
	if err != nil {
		return "", err
	}

	text := result.Text()
	if text == "" {
		return "", entity.ErrEmptyCompletion
	}
	return text, nil
}

func (g *GeminiClient) Label() string {
	return "Gemini " + g.model
}

func (g *GeminiClient) Vendor() string {
	return "Google Gemini"
}
