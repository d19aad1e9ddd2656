package entity

import (
	"github.com/guregu/null/v6"
)

// Fundamentals is a point-in-time company snapshot. Every metric may be absent;
// an absent metric is never read as zero.
type Fundamentals struct {
	Symbol           string     `json:"symbol"`
	CurrentPrice     null.Float `json:"currentPrice"`
	PreviousClose    null.Float `json:"previousClose"`
	TrailingPE       null.Float `json:"trailingPE"`
	DividendYield    null.Float `json:"dividendYield"`
	MarketCap        null.Float `json:"marketCap"`
	FiftyTwoWeekHigh null.Float `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  null.Float `json:"fiftyTwoWeekLow"`
}

// BackfillFromSeries fills CurrentPrice and PreviousClose from the two latest
// closes when the provider left them absent. Present values are kept.
func (f *Fundamentals) BackfillFromSeries(series *PriceSeries) {
	if !f.CurrentPrice.Valid {
		if bar, ok := series.Latest(); ok {
			f.CurrentPrice = null.FloatFrom(bar.Close)
		}
	}
	if !f.PreviousClose.Valid {
		if bar, ok := series.Previous(); ok {
			f.PreviousClose = null.FloatFrom(bar.Close)
		}
	}
}
