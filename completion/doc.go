// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package completion wraps the external chat-completion service.

Handlers depend on the Completer interface; OpenAIClient is the production
implementation backed by go-openai:

	c, err := completion.NewOpenAIClient(cfg)
	if errors.Is(err, completion.ErrMissingAPIKey) {
		// no credential configured
	}
	reply, err := c.Complete(ctx, text)

Each call sends exactly one user message with the configured model and runs
under cfg.AITimeout. Expiry is reported as ErrTimeout so callers can tell it
apart from other upstream failures. Nothing is retried.
*/
package completion
