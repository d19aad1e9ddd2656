package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/dto"
	"golang-stock-insight/pkg/logger"
)

type alphaVantageRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewAlphaVantageRepository creates a PriceRepository backed by TIME_SERIES_DAILY.
func NewAlphaVantageRepository(cfg *config.Config, log *logger.Logger, httpClient *http.Client) PriceRepository {
	return &alphaVantageRepository{
		cfg:        cfg,
		log:        log,
		httpClient: httpClient,
	}
}

func (r *alphaVantageRepository) GetDailySeries(ctx context.Context, param dto.GetDailySeriesParam) (*entity.PriceSeries, error) {
	query := url.Values{}
	query.Set("function", "TIME_SERIES_DAILY")
	query.Set("symbol", param.Symbol)
	query.Set("outputsize", param.OutputSize)
	query.Set("datatype", "json")
	query.Set("apikey", r.cfg.AlphaVantage.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.AlphaVantage.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create alpha vantage request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	r.log.DebugContext(ctx, "Request Alpha Vantage daily series",
		logger.StringField("symbol", param.Symbol),
		logger.StringField("output_size", param.OutputSize),
	)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Alpha Vantage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-OK response from Alpha Vantage: %d - %s", resp.StatusCode, string(body))
	}

	var payload dto.AlphaVantageDailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode Alpha Vantage response: %w", err)
	}

	switch {
	case payload.ErrorMessage != "":
		return nil, fmt.Errorf("%w: %s", ErrProviderRejected, payload.ErrorMessage)
	case payload.Note != "":
		return nil, fmt.Errorf("%w: %s", ErrProviderRateLimit, payload.Note)
	case payload.Information != "":
		return nil, fmt.Errorf("%w: %s", ErrProviderRateLimit, payload.Information)
	case len(payload.TimeSeries) == 0:
		return nil, fmt.Errorf("%w for %s", ErrNoPriceData, param.Symbol)
	}

	bars := make([]entity.PriceBar, 0, len(payload.TimeSeries))
	for dateStr, entry := range payload.TimeSeries {
		bar, err := toPriceBar(dateStr, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Alpha Vantage bar %s: %w", dateStr, err)
		}
		bars = append(bars, bar)
	}

	return entity.NewPriceSeries(param.Symbol, bars), nil
}

func toPriceBar(dateStr string, entry dto.AlphaVantageDailyEntry) (entity.PriceBar, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return entity.PriceBar{}, err
	}

	values := make([]float64, 5)
	for i, raw := range []string{entry.Open, entry.High, entry.Low, entry.Close, entry.Volume} {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entity.PriceBar{}, err
		}
		values[i] = v
	}

	return entity.PriceBar{
		Date:   date,
		Open:   values[0],
		High:   values[1],
		Low:    values[2],
		Close:  values[3],
		Volume: values[4],
	}, nil
}
