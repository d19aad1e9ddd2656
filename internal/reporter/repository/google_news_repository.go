package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/pkg/common"
	"golang-stock-insight/pkg/logger"
	"golang-stock-insight/pkg/utils"

	"github.com/mmcdole/gofeed"
)

type googleNewsRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
	now        func() time.Time
}

// NewGoogleNewsRepository creates a NewsRepository over the Google News RSS search feed.
func NewGoogleNewsRepository(cfg *config.Config, log *logger.Logger, httpClient *http.Client) NewsRepository {
	return &googleNewsRepository{
		cfg:        cfg,
		log:        log,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// Search returns at most limit items, newest first rather than in feed order.
// A non-positive limit returns nothing without calling the feed.
func (r *googleNewsRepository) Search(ctx context.Context, query string, limit int) ([]entity.NewsItem, error) {
	if limit <= 0 {
		return nil, nil
	}
	feedURL := r.buildSearchURL(query)
	r.log.DebugContext(ctx, "Processing RSS feed", logger.StringField("url", feedURL))

	fp := gofeed.NewParser()
	fp.Client = r.httpClient
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	sort.SliceStable(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return feed.Items[j].PublishedParsed == nil && feed.Items[i].PublishedParsed != nil
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	filtered := r.filterItems(feed.Items)
	r.log.DebugContext(ctx, "Filtered news items",
		logger.IntField("original_count", len(feed.Items)),
		logger.IntField("filtered_count", len(filtered)),
	)

	loc := utils.MarketLocation(r.cfg.Report.Market)
	items := make([]entity.NewsItem, 0, limit)
	for _, item := range filtered {
		if len(items) >= limit {
			break
		}
		published := item.PublishedParsed.In(loc)
		items = append(items, entity.NewsItem{
			Title:       strings.TrimSpace(item.Title),
			Date:        utils.PrettyDate(published),
			PublishedAt: published,
			Description: utils.CleanToValidUTF8(utils.HTMLToText(item.Description)),
			URL:         item.Link,
		})
	}
	return items, nil
}

func (r *googleNewsRepository) buildSearchURL(query string) string {
	lang := r.cfg.GoogleNews.Language
	country := r.cfg.GoogleNews.Country

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s when:%dd", query, common.NewsLookbackDays))
	params.Set("hl", fmt.Sprintf("%s-%s", lang, country))
	params.Set("gl", country)
	params.Set("ceid", fmt.Sprintf("%s:%s", country, lang))
	return r.cfg.GoogleNews.BaseURL + "?" + params.Encode()
}

// filterItems drops undated, stale and duplicate entries while keeping feed order.
func (r *googleNewsRepository) filterItems(items []*gofeed.Item) []*gofeed.Item {
	now := r.now()
	seen := make(map[string]bool, len(items))

	var filtered []*gofeed.Item
	for _, item := range items {
		if item.PublishedParsed == nil {
			r.log.Debug("News published date is nil", logger.StringField("rss", item.Link))
			continue
		}
		if !utils.WithinDays(*item.PublishedParsed, now, common.NewsLookbackDays) {
			continue
		}
		hash := md5.Sum([]byte(item.Link))
		key := hex.EncodeToString(hash[:])
		if seen[key] {
			continue
		}
		seen[key] = true
		filtered = append(filtered, item)
	}
	return filtered
}
