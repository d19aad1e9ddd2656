package repository

import (
	"context"
	"fmt"
	"net/http"

	"golang-stock-insight/internal/reporter/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openaiClient struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAIClient creates a CompletionClient for the OpenAI chat completions API.
// SDK retries are disabled; a failed call falls back to the locale text instead.
func NewOpenAIClient(cfg *config.Config, httpClient *http.Client) CompletionClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAI.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAI.BaseURL))
	}
	return &openaiClient{
		client:      openai.NewClient(opts...),
		model:       cfg.OpenAI.Model,
		temperature: cfg.AI.Temperature,
	}
}

func (c *openaiClient) Name() string { return "openai" }

func (c *openaiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenAI API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
