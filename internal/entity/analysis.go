package entity

import (
	"github.com/guregu/null/v6"
)

// AnalysisResult holds formatted derived facts. A field is valid only when the
// inputs it is computed from were present.
type AnalysisResult struct {
	PriceChange      null.String `json:"price_change"`
	PriceTrend       null.String `json:"price_trend"`
	PERatio          null.String `json:"pe_ratio"`
	PEAnalysis       null.String `json:"pe_analysis"`
	DividendYield    null.String `json:"dividend_yield"`
	DividendAnalysis null.String `json:"dividend_analysis"`
	MarketCap        null.String `json:"market_cap"`
	Size             null.String `json:"size"`
	PricePosition    null.String `json:"price_position"`
	PriceLevel       null.String `json:"price_level"`
}

// Keys lists the names of the facts that are present.
func (a AnalysisResult) Keys() []string {
	fields := []struct {
		key string
		v   null.String
	}{
		{"price_change", a.PriceChange},
		{"price_trend", a.PriceTrend},
		{"pe_ratio", a.PERatio},
		{"pe_analysis", a.PEAnalysis},
		{"dividend_yield", a.DividendYield},
		{"dividend_analysis", a.DividendAnalysis},
		{"market_cap", a.MarketCap},
		{"size", a.Size},
		{"price_position", a.PricePosition},
		{"price_level", a.PriceLevel},
	}
	var keys []string
	for _, f := range fields {
		if f.v.Valid {
			keys = append(keys, f.key)
		}
	}
	return keys
}
