package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/locale"
	"golang-stock-insight/pkg/common"
	"golang-stock-insight/pkg/logger"

	"golang.org/x/time/rate"
)

type aiRepository struct {
	client         CompletionClient
	labels         locale.Labels
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewAIRepository builds the prompt layer on top of a provider client.
// A zero MaxRequestPerMinute leaves requests unthrottled.
func NewAIRepository(cfg *config.Config, log *logger.Logger, client CompletionClient, labels locale.Labels) AIRepository {
	limit := rate.Inf
	if cfg.AI.MaxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.AI.MaxRequestPerMinute))
	}
	return &aiRepository{
		client:         client,
		labels:         labels,
		logger:         log,
		requestLimiter: rate.NewLimiter(limit, 1),
	}
}

func (r *aiRepository) SummarizeNews(ctx context.Context, item entity.NewsItem) (string, error) {
	return r.sendRequest(ctx, BuildSummarizeNewsPrompt(r.labels, item))
}

func (r *aiRepository) GenerateInvestmentNarrative(ctx context.Context, analysis entity.AnalysisResult, news []entity.NewsItem) (string, error) {
	return r.sendRequest(ctx, BuildInvestmentNarrativePrompt(r.labels, analysis, news))
}

func (r *aiRepository) sendRequest(ctx context.Context, prompt string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.logger.Error("failed to wait for request limit", logger.ErrorField(err))
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	r.logger.DebugContext(ctx, "Sending completion request",
		logger.StringField("provider", r.client.Name()),
		logger.IntField("prompt_length", len(prompt)),
	)

	text, err := r.client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to get completion from %s: %w", r.client.Name(), err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s: %w", r.client.Name(), ErrEmptyCompletion)
	}
	return text, nil
}

// NewCompletionClient returns the client for the configured provider.
func NewCompletionClient(ctx context.Context, cfg *config.Config, httpClient *http.Client) (CompletionClient, error) {
	switch cfg.AI.Provider {
	case common.ProviderOpenAI:
		return NewOpenAIClient(cfg, httpClient), nil
	case common.ProviderGemini:
		return NewGeminiClient(ctx, cfg, httpClient)
	case common.ProviderAnthropic:
		return NewAnthropicClient(cfg, httpClient), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.AI.Provider)
	}
}
