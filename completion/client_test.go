// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/coachly/cliparse"
)

// fakeOpenAI serves /v1/chat/completions with the given handler
func fakeOpenAI(t *testing.T, handler http.HandlerFunc) cliparse.Config {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return cliparse.Config{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: srv.URL + "/v1",
		ChatModel:     "gpt-4o-mini",
		AITimeout:     2 * time.Second,
	}
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
}

func TestNewOpenAIClient_MissingKey(t *testing.T) {
	_, err := NewOpenAIClient(cliparse.Config{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestComplete_SingleTurnRequest(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	var authHeader string

	cfg := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeCompletion(w, "Keep your head still.")
	})

	c, err := NewOpenAIClient(cfg)
	require.NoError(t, err)

	reply, err := c.Complete(context.Background(), "How do I putt better?")
	require.NoError(t, err)

	assert.Equal(t, "Keep your head still.", reply)
	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "How do I putt better?", got.Messages[0].Content)
}

func TestComplete_DefaultModel(t *testing.T) {
	var model string
	cfg := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string `json:"model"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		model = body.Model
		writeCompletion(w, "ok")
	})
	cfg.ChatModel = ""

	c, err := NewOpenAIClient(cfg)
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, DefaultChatModel, model)
}

func TestComplete_UpstreamError(t *testing.T) {
	cfg := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	})

	c, err := NewOpenAIClient(cfg)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "hi")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTimeout))
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestComplete_NoChoices(t *testing.T) {
	cfg := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	})

	c, err := NewOpenAIClient(cfg)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestComplete_Timeout(t *testing.T) {
	cfg := fakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		writeCompletion(w, "too late")
	})
	cfg.AITimeout = 50 * time.Millisecond

	c, err := NewOpenAIClient(cfg)
	require.NoError(t, err)

	start := time.Now()
	_, err = c.Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}
