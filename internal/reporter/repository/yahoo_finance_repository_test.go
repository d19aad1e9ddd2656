package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"golang-stock-insight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yahooQuoteSummaryBody = `{
  "quoteSummary": {
    "result": [{
      "price": {
        "symbol": "AAPL",
        "regularMarketPrice": {"raw": 251.0, "fmt": "251.00"},
        "regularMarketPreviousClose": {"raw": 239.0, "fmt": "239.00"},
        "marketCap": {"raw": 900000000000, "fmt": "900B"}
      },
      "summaryDetail": {
        "previousClose": {"raw": 240.0, "fmt": "240.00"},
        "trailingPE": {"raw": 22.0, "fmt": "22.00"},
        "dividendYield": {},
        "marketCap": {"raw": 800000000000, "fmt": "800B"},
        "fiftyTwoWeekHigh": {"raw": 300.0, "fmt": "300.00"},
        "fiftyTwoWeekLow": {"raw": 150.0, "fmt": "150.00"}
      },
      "financialData": {
        "currentPrice": {"raw": 250.0, "fmt": "250.00"}
      }
    }],
    "error": null
  }
}`

type yahooStub struct {
	crumbCalls   atomic.Int32
	quoteCalls   atomic.Int32
	unauthorized atomic.Int32
	quoteBody    string
}

func (s *yahooStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/cookie", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "A3", Value: "session", Path: "/"})
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/v1/test/getcrumb", func(w http.ResponseWriter, r *http.Request) {
		s.crumbCalls.Add(1)
		if _, err := r.Cookie("A3"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte("crumb-value"))
	})
	mux.HandleFunc("/v10/finance/quoteSummary/AAPL", func(w http.ResponseWriter, r *http.Request) {
		s.quoteCalls.Add(1)
		if s.unauthorized.Load() > 0 {
			s.unauthorized.Add(-1)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("crumb") != "crumb-value" || r.URL.Query().Get("modules") != yahooModules {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(s.quoteBody))
	})
	return mux
}

func newYahooTestRepository(t *testing.T, srv *httptest.Server) *yahooFinanceRepository {
	t.Helper()
	cfg := newTestConfig("")
	cfg.YahooFinance.BaseURL = srv.URL
	cfg.YahooFinance.CookieURL = srv.URL + "/cookie"
	cfg.YahooFinance.UserAgent = "test-agent"

	repo, err := NewYahooFinanceRepository(cfg, logger.NewNop())
	require.NoError(t, err)
	return repo.(*yahooFinanceRepository)
}

func TestYahooFinanceRepository_GetFundamentals(t *testing.T) {
	stub := &yahooStub{quoteBody: yahooQuoteSummaryBody}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	repo := newYahooTestRepository(t, srv)
	f, err := repo.GetFundamentals(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", f.Symbol)
	assert.Equal(t, 250.0, f.CurrentPrice.Float64)
	assert.Equal(t, 240.0, f.PreviousClose.Float64)
	assert.Equal(t, 22.0, f.TrailingPE.Float64)
	assert.False(t, f.DividendYield.Valid)
	assert.Equal(t, 800000000000.0, f.MarketCap.Float64)
	assert.Equal(t, 300.0, f.FiftyTwoWeekHigh.Float64)
	assert.Equal(t, 150.0, f.FiftyTwoWeekLow.Float64)

	_, err = repo.GetFundamentals(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, int32(1), stub.crumbCalls.Load(), "crumb should be cached")
}

func TestYahooFinanceRepository_RefreshesCrumbOnUnauthorized(t *testing.T) {
	stub := &yahooStub{quoteBody: yahooQuoteSummaryBody}
	stub.unauthorized.Store(1)
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	repo := newYahooTestRepository(t, srv)
	f, err := repo.GetFundamentals(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.True(t, f.CurrentPrice.Valid)
	assert.Equal(t, int32(2), stub.crumbCalls.Load())
	assert.Equal(t, int32(2), stub.quoteCalls.Load())
}

func TestYahooFinanceRepository_FallsBackToPriceModule(t *testing.T) {
	stub := &yahooStub{quoteBody: `{"quoteSummary": {"result": [{
      "price": {
        "regularMarketPrice": {"raw": 251.0},
        "regularMarketPreviousClose": {"raw": 239.0},
        "marketCap": {"raw": 900000000000}
      }
    }]}}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	f, err := newYahooTestRepository(t, srv).GetFundamentals(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 251.0, f.CurrentPrice.Float64)
	assert.Equal(t, 239.0, f.PreviousClose.Float64)
	assert.Equal(t, 900000000000.0, f.MarketCap.Float64)
	assert.False(t, f.TrailingPE.Valid)
	assert.False(t, f.FiftyTwoWeekHigh.Valid)
}

func TestYahooFinanceRepository_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "empty result", body: `{"quoteSummary": {"result": [], "error": null}}`, wantErr: ErrNoFundamentals},
		{name: "api error", body: `{"quoteSummary": {"result": null, "error": {"code": "Not Found", "description": "No data found"}}}`, wantErr: ErrProviderRejected},
		{name: "invalid json", body: `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &yahooStub{quoteBody: tt.body}
			srv := httptest.NewServer(stub.handler())
			defer srv.Close()

			f, err := newYahooTestRepository(t, srv).GetFundamentals(context.Background(), "AAPL")
			require.Error(t, err)
			assert.Nil(t, f)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
