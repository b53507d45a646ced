package client

import (
	"context"
	"fmt"

	"moneymitra/internal/domain/entity"

	"github.com/sashabaranov/go-openai"
)

const CerebrasBaseURL = "https://api.cerebras.ai/v1"

// CerebrasClient talks to the OpenAI-compatible Cerebras inference API.
type CerebrasClient struct {
	client *openai.Client
	model  string
	label  string
}

func NewCerebrasClient(apiKey, baseURL, model string) (*CerebrasClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("CEREBRAS_API_KEY is not set: %w", entity.ErrProviderUnavailable)
	}
	if baseURL == "" {
		baseURL = CerebrasBaseURL
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &CerebrasClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
		label:  cerebrasLabel(model),
	}, nil
}

func (c *CerebrasClient) Complete(ctx context.Context, req entity.CompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", entity.ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *CerebrasClient) Label() string {
	return c.label
}

func (c *CerebrasClient) Vendor() string {
	return "Cerebras AI"
}

func cerebrasLabel(model string) string {
	if model == "llama3.1-8b" {
		return "Cerebras Llama3.1-8B"
	}
	return "Cerebras " + model
}
