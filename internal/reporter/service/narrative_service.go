package service

import (
	"context"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/locale"
	"golang-stock-insight/internal/reporter/repository"
	"golang-stock-insight/pkg/logger"
)

// NarrativeService writes the overall investment opinion.
type NarrativeService interface {
	Generate(ctx context.Context, analysis entity.AnalysisResult, news []entity.NewsItem) string
}

type narrativeService struct {
	aiRepo repository.AIRepository
	labels locale.Labels
	logger *logger.Logger
}

// NewNarrativeService creates a new NarrativeService.
func NewNarrativeService(aiRepo repository.AIRepository, labels locale.Labels, log *logger.Logger) NarrativeService {
	return &narrativeService{
		aiRepo: aiRepo,
		labels: labels,
		logger: log,
	}
}

// Generate makes a single attempt and returns the fallback text on failure.
func (s *narrativeService) Generate(ctx context.Context, analysis entity.AnalysisResult, news []entity.NewsItem) string {
	text, err := s.aiRepo.GenerateInvestmentNarrative(ctx, analysis, news)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to generate investment narrative", logger.ErrorField(err))
		return s.labels.NarrativeFallback
	}
	return text
}
