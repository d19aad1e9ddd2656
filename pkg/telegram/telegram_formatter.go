package telegram

import (
	"fmt"
	"strings"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/locale"
	"golang-stock-insight/pkg/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxMessageLength = 4090

// FormatReportForTelegram renders the analysis, news titles and narrative as
// Markdown messages no longer than the Telegram limit.
func FormatReportForTelegram(report *entity.Report, labels locale.Labels) []string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📈 *%s* (%s)\n\n", escape(report.Symbol), escape(report.CompanyName)))

	sb.WriteString(fmt.Sprintf("*%s*\n", escape(strings.Trim(labels.AnalysisHeader, "= "))))
	lines := []struct {
		heading string
		value   string
		label   string
		ok      bool
	}{
		{labels.PriceChangeHeading, report.Analysis.PriceChange.String, report.Analysis.PriceTrend.String, report.Analysis.PriceChange.Valid},
		{labels.PERatioHeading, report.Analysis.PERatio.String, report.Analysis.PEAnalysis.String, report.Analysis.PERatio.Valid},
		{labels.DividendYieldHeading, report.Analysis.DividendYield.String, report.Analysis.DividendAnalysis.String, report.Analysis.DividendYield.Valid},
		{labels.MarketCapHeading, report.Analysis.MarketCap.String, report.Analysis.Size.String, report.Analysis.MarketCap.Valid},
		{labels.PositionHeading, report.Analysis.PricePosition.String, report.Analysis.PriceLevel.String, report.Analysis.PricePosition.Valid},
	}
	for _, l := range lines {
		if !l.ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("• %s: %s (%s)\n", escape(l.heading), escape(l.value), escape(l.label)))
	}

	sb.WriteString(fmt.Sprintf("\n*%s*\n", escape(strings.Trim(labels.NewsHeader, "= "))))
	if report.News == nil {
		sb.WriteString(escape(labels.NoNews) + "\n")
	}
	for i, item := range report.News {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, escape(item.Title)))
	}

	sb.WriteString(fmt.Sprintf("\n*%s*\n", escape(strings.Trim(labels.NarrativeHeader, "= "))))
	sb.WriteString(escape(report.Narrative))
	sb.WriteString("\n")

	return utils.SplitMessage(sb.String(), maxMessageLength)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
