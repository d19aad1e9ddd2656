package repository

import (
	"context"
	"fmt"
	"net/http"

	"golang-stock-insight/internal/reporter/config"

	"google.golang.org/genai"
)

type geminiClient struct {
	genAiClient *genai.Client
	model       string
	temperature float64
}

// NewGeminiClient creates a CompletionClient for the Gemini API.
func NewGeminiClient(ctx context.Context, cfg *config.Config, httpClient *http.Client) (CompletionClient, error) {
	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.Gemini.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &geminiClient{
		genAiClient: genAiClient,
		model:       cfg.Gemini.Model,
		temperature: cfg.AI.Temperature,
	}, nil
}

func (c *geminiClient) Name() string { return "gemini" }

func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genAiClient.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(c.temperature)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content with Gemini: %w", err)
	}
	return resp.Text(), nil
}
