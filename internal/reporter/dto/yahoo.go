package dto

import "github.com/guregu/null/v6"

// YahooQuoteSummaryResponse is the v10 quoteSummary payload.
type YahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []YahooQuoteSummaryResult `json:"result"`
		Error  *YahooError               `json:"error"`
	} `json:"quoteSummary"`
}

type YahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type YahooQuoteSummaryResult struct {
	Price         *YahooPriceModule         `json:"price"`
	SummaryDetail *YahooSummaryDetailModule `json:"summaryDetail"`
	FinancialData *YahooFinancialDataModule `json:"financialData"`
}

// YahooValue is a {raw, fmt} pair. Yahoo sends {} when a metric is unknown,
// which leaves Raw null.
type YahooValue struct {
	Raw null.Float `json:"raw"`
	Fmt string     `json:"fmt"`
}

type YahooPriceModule struct {
	Symbol                     string     `json:"symbol"`
	ShortName                  string     `json:"shortName"`
	LongName                   string     `json:"longName"`
	Currency                   string     `json:"currency"`
	RegularMarketPrice         YahooValue `json:"regularMarketPrice"`
	RegularMarketPreviousClose YahooValue `json:"regularMarketPreviousClose"`
	MarketCap                  YahooValue `json:"marketCap"`
}

type YahooSummaryDetailModule struct {
	PreviousClose    YahooValue `json:"previousClose"`
	TrailingPE       YahooValue `json:"trailingPE"`
	DividendYield    YahooValue `json:"dividendYield"`
	MarketCap        YahooValue `json:"marketCap"`
	FiftyTwoWeekHigh YahooValue `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  YahooValue `json:"fiftyTwoWeekLow"`
}

type YahooFinancialDataModule struct {
	CurrentPrice YahooValue `json:"currentPrice"`
}
