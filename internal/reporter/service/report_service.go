package service

import (
	"context"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/locale"
	"golang-stock-insight/internal/reporter/repository"
	"golang-stock-insight/pkg/logger"
	"golang-stock-insight/pkg/telegram"
)

// ReportService runs the whole pipeline for one symbol.
type ReportService interface {
	Generate(ctx context.Context) (*entity.Report, error)
}

type reportService struct {
	cfg              *config.Config
	priceService     PriceService
	fundamentalsRepo repository.FundamentalsRepository
	newsService      NewsService
	narrativeService NarrativeService
	notifier         telegram.Notifier
	labels           locale.Labels
	logger           *logger.Logger
}

// NewReportService creates a new ReportService. notifier may be nil.
func NewReportService(
	cfg *config.Config,
	priceService PriceService,
	fundamentalsRepo repository.FundamentalsRepository,
	newsService NewsService,
	narrativeService NarrativeService,
	notifier telegram.Notifier,
	labels locale.Labels,
	log *logger.Logger,
) ReportService {
	return &reportService{
		cfg:              cfg,
		priceService:     priceService,
		fundamentalsRepo: fundamentalsRepo,
		newsService:      newsService,
		narrativeService: narrativeService,
		notifier:         notifier,
		labels:           labels,
		logger:           log,
	}
}

// Generate returns ErrPriceUnavailable without touching any later stage when the
// price series cannot be fetched. Every other failure degrades the report.
func (s *reportService) Generate(ctx context.Context) (*entity.Report, error) {
	rc := s.cfg.Report

	series, err := s.priceService.FetchDailySeries(ctx, rc.Symbol, s.cfg.AlphaVantage.OutputSize)
	if err != nil {
		return nil, err
	}

	report := &entity.Report{
		Symbol:      rc.Symbol,
		CompanyName: rc.CompanyName,
		Market:      rc.Market,
		Series:      series,
	}

	fundamentals, err := s.fundamentalsRepo.GetFundamentals(ctx, rc.Symbol)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch fundamentals", logger.StringField("symbol", rc.Symbol), logger.ErrorField(err))
		fundamentals = &entity.Fundamentals{Symbol: rc.Symbol}
	}
	fundamentals.BackfillFromSeries(series)
	report.Fundamentals = *fundamentals
	report.Analysis = Analyze(report.Fundamentals, s.labels)
	s.logger.DebugContext(ctx, "Analysis completed",
		logger.StringField("symbol", rc.Symbol),
		logger.FloatField("current_price", report.Fundamentals.CurrentPrice.Float64),
		logger.Field("keys", report.Analysis.Keys()),
	)

	limit := rc.NewsLimit
	if limit <= 0 {
		limit = s.cfg.GoogleNews.Limit
	}
	news, err := s.newsService.FetchNews(ctx, rc.Symbol, rc.CompanyName, limit)
	if err != nil {
		s.logger.WarnContext(ctx, "News unavailable", logger.StringField("symbol", rc.Symbol), logger.ErrorField(err))
		news = nil
	}
	report.News = news

	report.Narrative = s.narrativeService.Generate(ctx, report.Analysis, report.News)

	if s.notifier != nil {
		for _, msg := range telegram.FormatReportForTelegram(report, s.labels) {
			if err := s.notifier.SendMessage(msg); err != nil {
				s.logger.ErrorContext(ctx, "Failed to send report to Telegram", logger.ErrorField(err))
				break
			}
		}
	}

	s.logger.InfoContext(ctx, "Report generated",
		logger.StringField("symbol", rc.Symbol),
		logger.IntField("bars", series.Len()),
		logger.IntField("news", len(report.News)),
	)
	return report, nil
}
