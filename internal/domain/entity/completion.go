package entity

// Prompt is a rendered system/user message pair.
type Prompt struct {
	System string
	User   string
}

// CompletionRequest carries one chat-completion call with its call-site limits.
type CompletionRequest struct {
	Prompt
	MaxTokens   int
	Temperature float32
}

type Outcome int

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomeFailure
)

// CompletionResult is either a Success (Text, ModelLabel) or a Failure
// (ErrorMessage, FallbackText). Only the fields of Outcome are set.
type CompletionResult struct {
	Outcome      Outcome
	Text         string
	ModelLabel   string
	ErrorMessage string
	FallbackText string
}

func Success(text, modelLabel string) CompletionResult {
	return CompletionResult{Outcome: OutcomeSuccess, Text: text, ModelLabel: modelLabel}
}

func Failure(err error, fallback string) CompletionResult {
	return CompletionResult{Outcome: OutcomeFailure, ErrorMessage: err.Error(), FallbackText: fallback}
}

func (r CompletionResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}
