package repository

import (
	"fmt"
	"strings"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/locale"

	"github.com/guregu/null/v6"
)

// BuildSummarizeNewsPrompt embeds one article into the per-article summary prompt.
func BuildSummarizeNewsPrompt(labels locale.Labels, item entity.NewsItem) string {
	article := fmt.Sprintf(labels.ArticleBlock, item.Title, item.Date, item.Description, item.URL)
	return fmt.Sprintf(labels.ArticlePrompt, article)
}

// BuildAnalysisText renders the five analysis lines, with N/A for absent facts.
func BuildAnalysisText(labels locale.Labels, analysis entity.AnalysisResult) string {
	orNA := func(v null.String) string {
		if !v.Valid {
			return labels.NotAvailable
		}
		return v.String
	}
	return fmt.Sprintf(labels.AnalysisBlock,
		orNA(analysis.PriceChange), orNA(analysis.PriceTrend),
		orNA(analysis.PERatio), orNA(analysis.PEAnalysis),
		orNA(analysis.DividendYield), orNA(analysis.DividendAnalysis),
		orNA(analysis.MarketCap), orNA(analysis.Size),
		orNA(analysis.PricePosition), orNA(analysis.PriceLevel),
	)
}

// BuildNewsSummaryText concatenates title, date and summary of every article.
func BuildNewsSummaryText(labels locale.Labels, news []entity.NewsItem) string {
	var b strings.Builder
	for _, item := range news {
		b.WriteString(fmt.Sprintf(labels.NewsSummaryBlock, item.Title, item.Date, item.Summary))
		b.WriteString("\n")
	}
	return b.String()
}

// BuildInvestmentNarrativePrompt combines the analysis and the summarized news.
func BuildInvestmentNarrativePrompt(labels locale.Labels, analysis entity.AnalysisResult, news []entity.NewsItem) string {
	return fmt.Sprintf(labels.NarrativePrompt, BuildAnalysisText(labels, analysis), BuildNewsSummaryText(labels, news))
}
