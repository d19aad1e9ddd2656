package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/dto"
	"golang-stock-insight/pkg/logger"

	"github.com/guregu/null/v6"
	"github.com/patrickmn/go-cache"
)

const (
	yahooCrumbCacheKey = "yahoo_crumb"
	yahooModules       = "price,summaryDetail,financialData"
)

var errYahooUnauthorized = errors.New("yahoo finance rejected the session crumb")

type yahooFinanceRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
	crumbCache *cache.Cache
}

// NewYahooFinanceRepository creates a FundamentalsRepository backed by the quoteSummary API.
// Yahoo requires a session cookie plus a crumb, so the client gets its own cookie jar.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) (FundamentalsRepository, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &yahooFinanceRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: cfg.HTTPTimeout,
		},
		crumbCache: cache.New(30*time.Minute, time.Hour),
	}, nil
}

func (r *yahooFinanceRepository) GetFundamentals(ctx context.Context, symbol string) (*entity.Fundamentals, error) {
	result, err := r.fetchQuoteSummary(ctx, symbol)
	if errors.Is(err, errYahooUnauthorized) {
		r.log.WarnContext(ctx, "Yahoo Finance crumb rejected, refreshing", logger.StringField("symbol", symbol))
		r.crumbCache.Delete(yahooCrumbCacheKey)
		result, err = r.fetchQuoteSummary(ctx, symbol)
	}
	if err != nil {
		return nil, err
	}
	return toFundamentals(symbol, result), nil
}

func (r *yahooFinanceRepository) fetchQuoteSummary(ctx context.Context, symbol string) (*dto.YahooQuoteSummaryResult, error) {
	crumb, err := r.getCrumb(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("modules", yahooModules)
	query.Set("crumb", crumb)
	apiURL := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", r.cfg.YahooFinance.BaseURL, url.PathEscape(symbol), query.Encode())

	body, status, err := r.sendRequest(ctx, apiURL)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, errYahooUnauthorized
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("received non-OK response from Yahoo Finance: %d - %s", status, string(body))
	}

	var payload dto.YahooQuoteSummaryResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode Yahoo Finance response: %w", err)
	}
	if e := payload.QuoteSummary.Error; e != nil {
		return nil, fmt.Errorf("%w: %s %s", ErrProviderRejected, e.Code, e.Description)
	}
	if len(payload.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoFundamentals, symbol)
	}
	return &payload.QuoteSummary.Result[0], nil
}

func (r *yahooFinanceRepository) getCrumb(ctx context.Context) (string, error) {
	if cached, ok := r.crumbCache.Get(yahooCrumbCacheKey); ok {
		return cached.(string), nil
	}

	// The cookie endpoint answers 404 but still sets the session cookie.
	if _, _, err := r.sendRequest(ctx, r.cfg.YahooFinance.CookieURL); err != nil {
		return "", fmt.Errorf("failed to obtain Yahoo Finance session cookie: %w", err)
	}

	body, status, err := r.sendRequest(ctx, r.cfg.YahooFinance.BaseURL+"/v1/test/getcrumb")
	if err != nil {
		return "", fmt.Errorf("failed to obtain Yahoo Finance crumb: %w", err)
	}
	crumb := strings.TrimSpace(string(body))
	if status != http.StatusOK || crumb == "" {
		return "", fmt.Errorf("failed to obtain Yahoo Finance crumb: status %d", status)
	}

	r.crumbCache.Set(yahooCrumbCacheKey, crumb, cache.DefaultExpiration)
	return crumb, nil
}

func (r *yahooFinanceRepository) sendRequest(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("User-Agent", r.cfg.YahooFinance.UserAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to send request to Yahoo Finance", logger.ErrorField(err), logger.StringField("url", req.URL.Path))
		return nil, 0, fmt.Errorf("failed to send request to Yahoo Finance: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read Yahoo Finance response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func toFundamentals(symbol string, result *dto.YahooQuoteSummaryResult) *entity.Fundamentals {
	var (
		price     dto.YahooPriceModule
		detail    dto.YahooSummaryDetailModule
		financial dto.YahooFinancialDataModule
	)
	if result.Price != nil {
		price = *result.Price
	}
	if result.SummaryDetail != nil {
		detail = *result.SummaryDetail
	}
	if result.FinancialData != nil {
		financial = *result.FinancialData
	}

	return &entity.Fundamentals{
		Symbol:           symbol,
		CurrentPrice:     firstValid(financial.CurrentPrice.Raw, price.RegularMarketPrice.Raw),
		PreviousClose:    firstValid(detail.PreviousClose.Raw, price.RegularMarketPreviousClose.Raw),
		TrailingPE:       detail.TrailingPE.Raw,
		DividendYield:    detail.DividendYield.Raw,
		MarketCap:        firstValid(detail.MarketCap.Raw, price.MarketCap.Raw),
		FiftyTwoWeekHigh: detail.FiftyTwoWeekHigh.Raw,
		FiftyTwoWeekLow:  detail.FiftyTwoWeekLow.Raw,
	}
}

func firstValid(values ...null.Float) null.Float {
	for _, v := range values {
		if v.Valid {
			return v
		}
	}
	return null.Float{}
}
