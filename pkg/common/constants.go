package common

const (
	MarketUS = "US"
	MarketJP = "JP"

	CurrencyUSD = "USD"
	CurrencyJPY = "JPY"

	OutputSizeCompact = "compact"
	OutputSizeFull    = "full"

	LocaleJA = "ja"
	LocaleEN = "en"

	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"

	// NewsLookbackDays bounds the news search window.
	NewsLookbackDays = 7
)

// CurrencyForMarket returns the currency label used on price axes.
func CurrencyForMarket(market string) string {
	if market == MarketJP {
		return CurrencyJPY
	}
	return CurrencyUSD
}
