package repository

import (
	"context"

	"moneymitra/internal/domain/entity"
)

// CompletionProvider is one chat-completion backend.
type CompletionProvider interface {
	Complete(ctx context.Context, req entity.CompletionRequest) (string, error)
	// Label is the human readable model name shown to clients.
	Label() string
	// Vendor names the company behind the model, e.g. "Cerebras AI".
	Vendor() string
}
