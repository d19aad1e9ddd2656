package service

import (
	"context"
	"testing"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/locale"
	"golang-stock-insight/pkg/common"
	"golang-stock-insight/pkg/logger"
	"golang-stock-insight/pkg/telegram"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pipeline struct {
	price        *fakePriceRepo
	fundamentals *fakeFundamentalsRepo
	news         *fakeNewsRepo
	ai           *fakeAIRepo
}

func newPipeline() *pipeline {
	f := fundamentals()
	return &pipeline{
		price:        &fakePriceRepo{series: testSeries()},
		fundamentals: &fakeFundamentalsRepo{f: &f},
		news:         &fakeNewsRepo{items: []entity.NewsItem{{Title: "A"}, {Title: "B"}}},
		ai:           &fakeAIRepo{},
	}
}

func (p *pipeline) service(notifier telegram.Notifier) ReportService {
	return p.serviceWith(testConfig(), notifier)
}

func (p *pipeline) serviceWith(cfg *config.Config, notifier telegram.Notifier) ReportService {
	labels := locale.For(common.LocaleEN)
	log := logger.NewNop()
	return NewReportService(
		cfg,
		NewPriceService(cfg, p.price, log),
		p.fundamentals,
		NewNewsService(p.news, p.ai, labels, log),
		NewNarrativeService(p.ai, labels, log),
		notifier,
		labels,
		log,
	)
}

func TestReportService_Generate(t *testing.T) {
	p := newPipeline()

	report, err := p.service(nil).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "TSLA", report.Symbol)
	assert.Equal(t, "Tesla", report.CompanyName)
	assert.Equal(t, 5, report.Series.Len())
	assert.Equal(t, "+4.17%", report.Analysis.PriceChange.String)
	assert.Equal(t, "up", report.Analysis.PriceTrend.String)
	assert.Equal(t, "overvalued", report.Analysis.PEAnalysis.String)
	assert.Equal(t, "0.50%", report.Analysis.DividendYield.String)
	assert.Equal(t, "low", report.Analysis.DividendAnalysis.String)
	assert.Equal(t, "$800.00B", report.Analysis.MarketCap.String)
	assert.Equal(t, "mid-cap", report.Analysis.Size.String)
	assert.Equal(t, "66.7%", report.Analysis.PricePosition.String)
	assert.Equal(t, "mid-range", report.Analysis.PriceLevel.String)

	require.Len(t, report.News, 2)
	assert.Equal(t, "summary of A", report.News[0].Summary)
	assert.Equal(t, "narrative", report.Narrative)
	assert.Equal(t, report.News, p.ai.narrativeNews)
}

func TestReportService_PriceFailureStopsPipeline(t *testing.T) {
	p := newPipeline()
	p.price.failN = 100

	report, err := p.service(nil).Generate(context.Background())
	assert.ErrorIs(t, err, ErrPriceUnavailable)
	assert.Nil(t, report)
	assert.Equal(t, 3, p.price.calls)
	assert.Zero(t, p.fundamentals.calls)
	assert.Zero(t, p.news.calls)
	assert.Zero(t, p.ai.summaryCalls)
	assert.Zero(t, p.ai.narrativeCalls)
}

func TestReportService_FundamentalsFailureBackfillsFromSeries(t *testing.T) {
	p := newPipeline()
	p.fundamentals.err = errFake

	report, err := p.service(nil).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, null.FloatFrom(250), report.Fundamentals.CurrentPrice)
	assert.Equal(t, null.FloatFrom(240), report.Fundamentals.PreviousClose)
	assert.Equal(t, []string{"price_change", "price_trend"}, report.Analysis.Keys())
	assert.Equal(t, 1, p.ai.narrativeCalls)
}

func TestReportService_NoNewsStillNarrates(t *testing.T) {
	p := newPipeline()
	p.news.err = errFake

	report, err := p.service(nil).Generate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report.News)
	assert.Equal(t, "narrative", report.Narrative)
	assert.Nil(t, p.ai.narrativeNews)
}

type failingNewsService struct{}

func (failingNewsService) FetchNews(ctx context.Context, symbol, companyName string, limit int) ([]entity.NewsItem, error) {
	return []entity.NewsItem{{Title: "partial"}}, errFake
}

func TestReportService_NewsErrorIsNotFatal(t *testing.T) {
	p := newPipeline()
	cfg := testConfig()
	labels := locale.For(common.LocaleEN)
	log := logger.NewNop()
	svc := NewReportService(
		cfg,
		NewPriceService(cfg, p.price, log),
		p.fundamentals,
		failingNewsService{},
		NewNarrativeService(p.ai, labels, log),
		nil,
		labels,
		log,
	)

	report, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report.News)
	assert.Equal(t, "narrative", report.Narrative)
}

func TestReportService_NotifiesTelegram(t *testing.T) {
	p := newPipeline()
	notifier := &fakeNotifier{}

	_, err := p.service(notifier).Generate(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, notifier.messages)
	assert.Contains(t, notifier.messages[0], "narrative")

	failing := &fakeNotifier{err: errFake}
	report, err := newPipeline().service(failing).Generate(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestReportService_NewsLimitFallsBackToSearchDefault(t *testing.T) {
	p := newPipeline()
	p.news.items = []entity.NewsItem{{Title: "A"}, {Title: "B"}, {Title: "C"}, {Title: "D"}, {Title: "E"}, {Title: "F"}}

	cfg := testConfig()
	cfg.Report.NewsLimit = 0
	cfg.GoogleNews.Limit = 5

	report, err := p.serviceWith(cfg, nil).Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.News, 5)
}
