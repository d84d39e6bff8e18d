package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bubom6755/portfolio-backend/internal/chat/llm"
)

func TestReply_BuildsConversationInOrder(t *testing.T) {
	var captured struct {
		Model       string        `json:"model"`
		MaxTokens   int           `json:"max_tokens"`
		Temperature float64       `json:"temperature"`
		Messages    []llm.Message `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Bonjour!"}}]}`))
	}))
	defer server.Close()

	svc := New(llm.NewClient(server.URL, "sk-test", "gpt-4o-mini"))
	require.True(t, svc.Available())

	history := []Turn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	answer, err := svc.Reply(context.Background(), "who are you?", history)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour!", answer)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, 500, captured.MaxTokens)
	assert.Equal(t, 0.5, captured.Temperature)

	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "Victor Wambersie")
	assert.Equal(t, llm.Message{Role: "user", Content: "hi"}, captured.Messages[1])
	assert.Equal(t, llm.Message{Role: "assistant", Content: "hello"}, captured.Messages[2])
	assert.Equal(t, llm.Message{Role: "user", Content: "who are you?"}, captured.Messages[3])
}

func TestReply_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	svc := New(llm.NewClient(server.URL, "sk-test", "gpt-4o-mini"))

	_, err := svc.Reply(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestService_UnavailableWithoutClient(t *testing.T) {
	svc := New(nil)
	assert.False(t, svc.Available())

	_, err := svc.Reply(context.Background(), "hello", nil)
	assert.Error(t, err)
}
