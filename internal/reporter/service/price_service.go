package service

import (
	"context"
	"fmt"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/dto"
	"golang-stock-insight/internal/reporter/repository"
	"golang-stock-insight/pkg/logger"
)

// PriceService fetches the daily series with a bounded, fixed-delay retry.
type PriceService interface {
	FetchDailySeries(ctx context.Context, symbol, outputSize string) (*entity.PriceSeries, error)
}

type priceService struct {
	priceRepo  repository.PriceRepository
	maxRetries int
	retryDelay time.Duration
	logger     *logger.Logger
}

// NewPriceService creates a new PriceService.
func NewPriceService(cfg *config.Config, priceRepo repository.PriceRepository, log *logger.Logger) PriceService {
	maxRetries := cfg.AlphaVantage.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &priceService{
		priceRepo:  priceRepo,
		maxRetries: maxRetries,
		retryDelay: cfg.AlphaVantage.RetryDelay,
		logger:     log,
	}
}

// FetchDailySeries makes at most maxRetries provider calls, sleeping retryDelay
// between them. It returns ErrPriceUnavailable once attempts are exhausted.
func (s *priceService) FetchDailySeries(ctx context.Context, symbol, outputSize string) (*entity.PriceSeries, error) {
	param := dto.GetDailySeriesParam{Symbol: symbol, OutputSize: outputSize}

	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		series, err := s.priceRepo.GetDailySeries(ctx, param)
		if err == nil {
			return series, nil
		}
		lastErr = err

		if attempt == s.maxRetries {
			s.logger.ErrorContext(ctx, "Maximum retries reached",
				logger.StringField("symbol", symbol),
				logger.IntField("attempts", attempt),
				logger.ErrorField(err),
			)
			break
		}

		s.logger.WarnContext(ctx, "Error occurred",
			logger.StringField("symbol", symbol),
			logger.IntField("attempt", attempt),
			logger.ErrorField(err),
		)
		s.logger.WarnContext(ctx, fmt.Sprintf("Retrying in %d seconds...", int(s.retryDelay.Seconds())),
			logger.DurationField("retry_delay", s.retryDelay),
		)

		if err := sleepContext(ctx, s.retryDelay); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrPriceUnavailable, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
