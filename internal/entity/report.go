package entity

// Report is everything one run produced.
// News is nil when no news was available; it is never an empty non-nil slice.
type Report struct {
	Symbol       string
	CompanyName  string
	Market       string
	Series       *PriceSeries
	Fundamentals Fundamentals
	Analysis     AnalysisResult
	News         []NewsItem
	Narrative    string
}
