package service

import (
	"context"
	"errors"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/dto"
)

var errFake = errors.New("fake failure")

type fakePriceRepo struct {
	calls  int
	failN  int
	series *entity.PriceSeries
}

func (f *fakePriceRepo) GetDailySeries(ctx context.Context, param dto.GetDailySeriesParam) (*entity.PriceSeries, error) {
	f.calls++
	if f.calls <= f.failN {
		return nil, errFake
	}
	return f.series, nil
}

type fakeFundamentalsRepo struct {
	calls int
	f     *entity.Fundamentals
	err   error
}

func (f *fakeFundamentalsRepo) GetFundamentals(ctx context.Context, symbol string) (*entity.Fundamentals, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	cp := *f.f
	return &cp, nil
}

type fakeNewsRepo struct {
	calls int
	query string
	items []entity.NewsItem
	err   error
}

func (f *fakeNewsRepo) Search(ctx context.Context, query string, limit int) ([]entity.NewsItem, error) {
	f.calls++
	f.query = query
	if f.err != nil {
		return nil, f.err
	}
	if len(f.items) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

type fakeAIRepo struct {
	summaryCalls   int
	narrativeCalls int
	failSummaryOn  map[string]bool
	narrativeErr   error
	narrativeNews  []entity.NewsItem
}

func (f *fakeAIRepo) SummarizeNews(ctx context.Context, item entity.NewsItem) (string, error) {
	f.summaryCalls++
	if f.failSummaryOn[item.Title] {
		return "", errFake
	}
	return "summary of " + item.Title, nil
}

func (f *fakeAIRepo) GenerateInvestmentNarrative(ctx context.Context, analysis entity.AnalysisResult, news []entity.NewsItem) (string, error) {
	f.narrativeCalls++
	f.narrativeNews = news
	if f.narrativeErr != nil {
		return "", f.narrativeErr
	}
	return "narrative", nil
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) SendMessage(text string) error {
	f.messages = append(f.messages, text)
	return f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AlphaVantage.OutputSize = "compact"
	cfg.AlphaVantage.MaxRetries = 3
	cfg.AlphaVantage.RetryDelay = time.Millisecond
	cfg.Report = config.Report{
		Symbol:      "TSLA",
		CompanyName: "Tesla",
		Market:      "US",
		Locale:      "en",
		NewsLimit:   3,
	}
	return cfg
}

func testSeries() *entity.PriceSeries {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var bars []entity.PriceBar
	for i, c := range []float64{230, 235, 238, 240, 250} {
		bars = append(bars, entity.PriceBar{Date: day.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000})
	}
	return entity.NewPriceSeries("TSLA", bars)
}
