package repository

import (
	"context"
	"errors"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/dto"
)

var (
	ErrNoPriceData         = errors.New("no price data returned")
	ErrProviderRejected    = errors.New("provider rejected the request")
	ErrProviderRateLimit   = errors.New("provider rate limit or information note")
	ErrNoFundamentals      = errors.New("no fundamentals returned")
	ErrEmptyCompletion     = errors.New("empty completion")
	ErrUnsupportedProvider = errors.New("unsupported ai provider")
)

// PriceRepository fetches daily OHLCV bars.
type PriceRepository interface {
	GetDailySeries(ctx context.Context, param dto.GetDailySeriesParam) (*entity.PriceSeries, error)
}

// FundamentalsRepository fetches a point-in-time company snapshot.
type FundamentalsRepository interface {
	GetFundamentals(ctx context.Context, symbol string) (*entity.Fundamentals, error)
}

// NewsRepository searches recent headlines. Returned items have no Summary yet.
type NewsRepository interface {
	Search(ctx context.Context, query string, limit int) ([]entity.NewsItem, error)
}

// AIRepository turns report data into model-written text.
type AIRepository interface {
	SummarizeNews(ctx context.Context, item entity.NewsItem) (string, error)
	GenerateInvestmentNarrative(ctx context.Context, analysis entity.AnalysisResult, news []entity.NewsItem) (string, error)
}

// CompletionClient sends one prompt to a model and returns its text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
