package entity

import "time"

// NewsItem is one search result plus its generated summary.
// Summary always holds either the model output or the fallback text.
type NewsItem struct {
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	PublishedAt time.Time `json:"published_at"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Summary     string    `json:"summary"`
}
