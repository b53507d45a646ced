package usecase

import (
	"context"
	"io"

	"moneymitra/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

type fakeProvider struct {
	text  string
	err   error
	panic any
	calls []entity.CompletionRequest
}

func (f *fakeProvider) Complete(_ context.Context, req entity.CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.panic != nil {
		panic(f.panic)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeProvider) Label() string { return "Fake Model" }

func (f *fakeProvider) Vendor() string { return "Fake Labs" }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
