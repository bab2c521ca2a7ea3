package summary

import (
	"context"
	"fmt"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
)

// anthropicCompleter calls the Anthropic Messages API through llmkit.
type anthropicCompleter struct {
	config Config
}

// NewAnthropicCompleter returns the production Completer.
func NewAnthropicCompleter(config Config) Completer {
	return &anthropicCompleter{config: config}
}

func (c *anthropicCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	// llmkit manages its own HTTP client; honor cancellation up front
	// since the call itself does not take a context.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	settings := types.RequestSettings{
		Model:       c.config.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: c.config.Temperature,
	}

	response, err := anthropic.PromptWithSettings(req.System, req.User, "", req.APIKey, settings)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}

	if len(response.Content) == 0 {
		return "", nil
	}
	return response.Content[0].Text, nil
}
