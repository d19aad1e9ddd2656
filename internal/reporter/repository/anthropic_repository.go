package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang-stock-insight/internal/reporter/config"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicClient struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewAnthropicClient creates a CompletionClient for the Anthropic messages API.
func NewAnthropicClient(cfg *config.Config, httpClient *http.Client) CompletionClient {
	return &anthropicClient{
		client: anthropic.NewClient(
			option.WithAPIKey(cfg.Anthropic.APIKey),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(0),
		),
		model:       cfg.Anthropic.Model,
		maxTokens:   int64(cfg.Anthropic.MaxTokens),
		temperature: cfg.AI.Temperature,
	}
}

func (c *anthropicClient) Name() string { return "anthropic" }

func (c *anthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request to Anthropic API: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
