package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moneymitra/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

func newCompletionServer(t *testing.T, status int, body string, got *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCerebrasClientComplete(t *testing.T) {
	var got capturedRequest
	srv := newCompletionServer(t, http.StatusOK,
		`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Save 10% daily."},"finish_reason":"stop"}]}`,
		&got)

	c, err := NewCerebrasClient("test-key", srv.URL, "llama3.1-8b")
	require.NoError(t, err)

	text, err := c.Complete(context.Background(), entity.CompletionRequest{
		Prompt:      entity.Prompt{System: "sys", User: "usr"},
		MaxTokens:   500,
		Temperature: 0.1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Save 10% daily.", text)

	assert.Equal(t, "llama3.1-8b", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "sys", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "usr", got.Messages[1].Content)
	assert.Equal(t, 500, got.MaxTokens)
	assert.InDelta(t, 0.1, got.Temperature, 1e-6)
}

func TestCerebrasClientNoChoices(t *testing.T) {
	srv := newCompletionServer(t, http.StatusOK, `{"id":"1","choices":[]}`, nil)

	c, err := NewCerebrasClient("test-key", srv.URL, "llama3.1-8b")
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), entity.CompletionRequest{})
	assert.ErrorIs(t, err, entity.ErrEmptyCompletion)
}

func TestCerebrasClientAPIError(t *testing.T) {
	srv := newCompletionServer(t, http.StatusInternalServerError,
		`{"error":{"message":"upstream exploded","type":"server_error"}}`, nil)

	c, err := NewCerebrasClient("test-key", srv.URL, "llama3.1-8b")
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), entity.CompletionRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestCerebrasLabel(t *testing.T) {
	c, err := NewCerebrasClient("k", "", "llama3.1-8b")
	require.NoError(t, err)
	assert.Equal(t, "Cerebras Llama3.1-8B", c.Label())

	c, err = NewCerebrasClient("k", "", "llama-3.3-70b")
	require.NoError(t, err)
	assert.Equal(t, "Cerebras llama-3.3-70b", c.Label())
	assert.Equal(t, "Cerebras AI", c.Vendor())
}
