package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-stock-insight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssItem(title, link string, published time.Time) string {
	pub := ""
	if !published.IsZero() {
		pub = "<pubDate>" + published.Format(time.RFC1123Z) + "</pubDate>"
	}
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link>%s<description>&lt;a href="%s"&gt;%s&lt;/a&gt;&amp;nbsp;&lt;font&gt;Example&lt;/font&gt;</description></item>`,
		title, link, pub, link, title)
}

func TestGoogleNewsRepository_Search(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	items := []string{
		rssItem("Older", "https://example.com/older", now.Add(-48*time.Hour)),
		rssItem("Newest", "https://example.com/newest", now.Add(-1*time.Hour)),
		rssItem("Stale", "https://example.com/stale", now.Add(-10*24*time.Hour)),
		rssItem("Undated", "https://example.com/undated", time.Time{}),
		rssItem("Newest duplicate", "https://example.com/newest", now.Add(-2*time.Hour)),
		rssItem("Middle", "https://example.com/middle", now.Add(-24*time.Hour)),
	}
	body := `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>news</title>`
	for _, it := range items {
		body += it
	}
	body += `</channel></rss>`

	var gotQuery string
	var gotHL, gotCEID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotHL = r.URL.Query().Get("hl")
		gotCEID = r.URL.Query().Get("ceid")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	cfg := newTestConfig("")
	cfg.GoogleNews.BaseURL = srv.URL
	cfg.GoogleNews.Language = "en"
	cfg.GoogleNews.Country = "US"
	cfg.Report.Market = "UNKNOWN"

	repo := NewGoogleNewsRepository(cfg, logger.NewNop(), srv.Client()).(*googleNewsRepository)
	repo.now = func() time.Time { return now }

	news, err := repo.Search(context.Background(), "Tesla OR TSLA stock", 2)
	require.NoError(t, err)

	assert.Equal(t, "Tesla OR TSLA stock when:7d", gotQuery)
	assert.Equal(t, "en-US", gotHL)
	assert.Equal(t, "US:en", gotCEID)

	require.Len(t, news, 2)
	assert.Equal(t, "Newest", news[0].Title)
	assert.Equal(t, "https://example.com/newest", news[0].URL)
	assert.Equal(t, "2024-05-10 11:00", news[0].Date)
	assert.Equal(t, "Newest Example", news[0].Description)
	assert.Empty(t, news[0].Summary)
	assert.Equal(t, "Middle", news[1].Title)

	all, err := repo.Search(context.Background(), "Tesla OR TSLA stock", 10)
	require.NoError(t, err)
	titles := make([]string, 0, len(all))
	for _, n := range all {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"Newest", "Middle", "Older"}, titles)
}

func TestGoogleNewsRepository_SearchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := newTestConfig("")
	cfg.GoogleNews.BaseURL = srv.URL

	news, err := NewGoogleNewsRepository(cfg, logger.NewNop(), srv.Client()).Search(context.Background(), "q", 3)
	require.Error(t, err)
	assert.Nil(t, news)
}

func TestGoogleNewsRepository_SearchNonPositiveLimit(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	cfg := newTestConfig("")
	cfg.GoogleNews.BaseURL = srv.URL
	repo := NewGoogleNewsRepository(cfg, logger.NewNop(), srv.Client())

	for _, limit := range []int{0, -1} {
		news, err := repo.Search(context.Background(), "q", limit)
		require.NoError(t, err)
		assert.Nil(t, news)
	}
	assert.Zero(t, hits)
}
