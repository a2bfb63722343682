package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/areteselect/backend/internal/domain"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Client performs single-turn completions against an OpenAI-compatible
// endpoint. One synchronous call per message; no retries, no state.
type Client struct {
	api   openai.Client
	model string
}

// NewClient creates a chat client for the given base URL and model
func NewClient(baseURL, apiKey, model string) *Client {
	api := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)
	return &Client{api: api, model: model}
}

// Complete sends one user message and returns the assistant reply
func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(message),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrChatUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", domain.ErrChatUnavailable)
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Printf("[CHAT] completion ok, %d chars", len(reply))
	return reply, nil
}
