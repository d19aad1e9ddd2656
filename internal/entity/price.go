package entity

import (
	"sort"
	"time"
)

// PriceBar is one trading day of OHLCV data.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries holds daily bars for one symbol, ordered oldest first.
type PriceSeries struct {
	Symbol string     `json:"symbol"`
	Bars   []PriceBar `json:"bars"`
}

// NewPriceSeries copies and sorts bars ascending by date.
func NewPriceSeries(symbol string, bars []PriceBar) *PriceSeries {
	sorted := make([]PriceBar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	return &PriceSeries{Symbol: symbol, Bars: sorted}
}

func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Latest returns the most recent bar.
func (s *PriceSeries) Latest() (PriceBar, bool) {
	if s.Len() == 0 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// Previous returns the bar before the most recent one.
func (s *PriceSeries) Previous() (PriceBar, bool) {
	if s.Len() < 2 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-2], true
}

// Tail returns the last n bars.
func (s *PriceSeries) Tail(n int) []PriceBar {
	if s.Len() == 0 || n <= 0 {
		return nil
	}
	if n > len(s.Bars) {
		n = len(s.Bars)
	}
	return s.Bars[len(s.Bars)-n:]
}

// Closes returns dates and closing prices, for charting.
func (s *PriceSeries) Closes() ([]time.Time, []float64) {
	dates := make([]time.Time, 0, s.Len())
	closes := make([]float64, 0, s.Len())
	if s == nil {
		return dates, closes
	}
	for _, b := range s.Bars {
		dates = append(dates, b.Date)
		closes = append(closes, b.Close)
	}
	return dates, closes
}
