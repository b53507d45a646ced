package usecase

import (
	"context"

	"moneymitra/internal/domain/entity"
	"moneymitra/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Completer makes exactly one provider call and turns its error into a
// Failure result carrying the caller's fallback text. It never retries.
type Completer struct {
	provider repository.CompletionProvider
	log      *logrus.Logger
}

func NewCompleter(provider repository.CompletionProvider, log *logrus.Logger) *Completer {
	return &Completer{provider: provider, log: log}
}

func (c *Completer) Complete(ctx context.Context, call string, req entity.CompletionRequest, fallback string) entity.CompletionResult {
	text, err := c.provider.Complete(ctx, req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"call":     call,
			"provider": c.provider.Label(),
			"error":    err.Error(),
		}).Warn("completion failed, serving fallback")
		return entity.Failure(err, fallback)
	}

	c.log.WithFields(logrus.Fields{"call": call, "chars": len(text)}).Debug("completion ok")
	return entity.Success(text, c.provider.Label())
}
