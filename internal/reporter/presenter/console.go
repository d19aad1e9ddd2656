package presenter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/locale"

	"github.com/dustin/go-humanize"
	"github.com/guregu/null/v6"
)

const tailBars = 5

// Console prints the report as plain text in a fixed section order.
type Console struct {
	w      io.Writer
	labels locale.Labels
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, labels locale.Labels) *Console {
	return &Console{w: w, labels: labels}
}

func (c *Console) PrintBanner(symbol string) {
	fmt.Fprintf(c.w, "Fetching %s stock data...\n", symbol)
}

func (c *Console) PrintFetchFailure() {
	fmt.Fprintln(c.w, "Failed to fetch data.")
	fmt.Fprintln(c.w, "Please check the following:")
	fmt.Fprintln(c.w, "1. Internet connection")
	fmt.Fprintln(c.w, "2. API key validity")
	fmt.Fprintln(c.w, "3. Ticker symbol accuracy")
}

// PrintMissingCredential prints the remediation steps for one missing secret.
func (c *Console) PrintMissingCredential(cred config.Credential) {
	fmt.Fprintf(c.w, "Error: %s is not set.\n", cred.EnvName)
	fmt.Fprintf(c.w, "1. Get an API key from %s website\n", cred.Provider)
	fmt.Fprintln(c.w, "2. Set the API key in config.yaml or .env")
}

func (c *Console) PrintReport(report *entity.Report) {
	c.printSeries(report.Symbol, report.Series)
	c.printAnalysis(report.Analysis)
	c.printNews(report.News)

	fmt.Fprintf(c.w, "\n%s\n", c.labels.NarrativeHeader)
	fmt.Fprintln(c.w, report.Narrative)
}

func (c *Console) printSeries(symbol string, series *entity.PriceSeries) {
	fmt.Fprintf(c.w, "\n%s Stock Data (Last 100 Days):\n", symbol)

	tw := tabwriter.NewWriter(c.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tOpen\tHigh\tLow\tClose\tVolume\t")
	for _, bar := range series.Tail(tailBars) {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t\n",
			bar.Date.Format("2006-01-02"), bar.Open, bar.High, bar.Low, bar.Close, humanize.Comma(int64(bar.Volume)))
	}
	_ = tw.Flush()
}

func (c *Console) printAnalysis(a entity.AnalysisResult) {
	fmt.Fprintf(c.w, "\n%s\n", c.labels.AnalysisHeader)

	lines := []struct {
		heading      string
		value, label null.String
	}{
		{c.labels.PriceChangeHeading, a.PriceChange, a.PriceTrend},
		{c.labels.PERatioHeading, a.PERatio, a.PEAnalysis},
		{c.labels.DividendYieldHeading, a.DividendYield, a.DividendAnalysis},
		{c.labels.MarketCapHeading, a.MarketCap, a.Size},
		{c.labels.PositionHeading, a.PricePosition, a.PriceLevel},
	}
	for _, l := range lines {
		if !l.value.Valid {
			continue
		}
		fmt.Fprintf(c.w, "%s: %s (%s)\n", l.heading, l.value.String, l.label.String)
	}
}

func (c *Console) printNews(news []entity.NewsItem) {
	fmt.Fprintf(c.w, "\n%s\n", c.labels.NewsHeader)
	if news == nil {
		fmt.Fprintln(c.w, c.labels.NoNews)
		return
	}

	indent := strings.Repeat(" ", 3)
	for i, item := range news {
		fmt.Fprintf(c.w, "\n%d. %s\n", i+1, item.Title)
		fmt.Fprintf(c.w, "%s%s: %s\n", indent, c.labels.DateLabel, item.Date)
		fmt.Fprintf(c.w, "%s%s:\n", indent, c.labels.SummaryLabel)
		fmt.Fprintf(c.w, "%s%s\n", indent, item.Summary)
		fmt.Fprintf(c.w, "%sURL: %s\n", indent, item.URL)
	}
}
