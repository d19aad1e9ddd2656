package dto

// AlphaVantageDailyResponse is the TIME_SERIES_DAILY payload. Error, Note and
// Information are set instead of the series when the request is rejected.
type AlphaVantageDailyResponse struct {
	MetaData     AlphaVantageMetaData              `json:"Meta Data"`
	TimeSeries   map[string]AlphaVantageDailyEntry `json:"Time Series (Daily)"`
	ErrorMessage string                            `json:"Error Message"`
	Note         string                            `json:"Note"`
	Information  string                            `json:"Information"`
}

type AlphaVantageMetaData struct {
	Information   string `json:"1. Information"`
	Symbol        string `json:"2. Symbol"`
	LastRefreshed string `json:"3. Last Refreshed"`
	OutputSize    string `json:"4. Output Size"`
	TimeZone      string `json:"5. Time Zone"`
}

// AlphaVantageDailyEntry carries numbers as strings, as the API sends them.
type AlphaVantageDailyEntry struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// GetDailySeriesParam selects the symbol and history length.
type GetDailySeriesParam struct {
	Symbol     string
	OutputSize string
}
