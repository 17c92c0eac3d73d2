// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/danielhkuo/coachly/cliparse"
)

// DefaultChatModel is used when no model is configured
const DefaultChatModel = "gpt-4o-mini"

var (
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY not set")
	ErrTimeout       = errors.New("completion service timed out")
	ErrEmptyResponse = errors.New("completion service returned no choices")
)

// Completer turns a single user message into a model reply
type Completer interface {
	Complete(ctx context.Context, text string) (string, error)
}

// OpenAIClient calls an OpenAI-compatible chat completion endpoint.
// Every call is single-turn: no history, no system prompt.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient builds a client from the configuration.
// Returns ErrMissingAPIKey when no credential is configured.
func NewOpenAIClient(cfg cliparse.Config) (*OpenAIClient, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	model := cfg.ChatModel
	if model == "" {
		model = DefaultChatModel
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: cfg.AITimeout,
	}, nil
}

// Complete sends text as the only user message and returns the first choice.
// A call that outlives the configured timeout returns an error wrapping
// ErrTimeout.
func (c *OpenAIClient) Complete(ctx context.Context, text string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
