package service

import (
	"context"
	"fmt"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/locale"
	"golang-stock-insight/internal/reporter/repository"
	"golang-stock-insight/pkg/logger"
)

// NewsService searches recent headlines and summarizes each one.
type NewsService interface {
	FetchNews(ctx context.Context, symbol, companyName string, limit int) ([]entity.NewsItem, error)
}

type newsService struct {
	newsRepo repository.NewsRepository
	aiRepo   repository.AIRepository
	labels   locale.Labels
	logger   *logger.Logger
}

// NewNewsService creates a new NewsService.
func NewNewsService(newsRepo repository.NewsRepository, aiRepo repository.AIRepository, labels locale.Labels, log *logger.Logger) NewsService {
	return &newsService{
		newsRepo: newsRepo,
		aiRepo:   aiRepo,
		labels:   labels,
		logger:   log,
	}
}

// FetchNews returns nil and ErrNoNews when the search fails or finds nothing.
// A failed summary is replaced by the fallback text and does not stop the loop.
func (s *newsService) FetchNews(ctx context.Context, symbol, companyName string, limit int) ([]entity.NewsItem, error) {
	query := fmt.Sprintf("%s OR %s stock", companyName, symbol)

	items, err := s.newsRepo.Search(ctx, query, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch news", logger.StringField("query", query), logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %v", ErrNoNews, err)
	}
	if len(items) == 0 {
		return nil, ErrNoNews
	}

	for i := range items {
		summary, err := s.aiRepo.SummarizeNews(ctx, items[i])
		if err != nil {
			s.logger.ErrorContext(ctx, "Failed to summarize news item",
				logger.StringField("title", items[i].Title),
				logger.ErrorField(err),
			)
			summary = s.labels.SummaryFallback
		}
		items[i].Summary = summary
	}
	return items, nil
}
