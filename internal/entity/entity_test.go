package entity

import (
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPriceSeriesSortsAscending(t *testing.T) {
	s := NewPriceSeries("TSLA", []PriceBar{
		{Date: day(3), Close: 3},
		{Date: day(1), Close: 1},
		{Date: day(2), Close: 2},
	})

	_, closes := s.Closes()
	assert.Equal(t, []float64{1, 2, 3}, closes)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, 3.0, latest.Close)

	prev, ok := s.Previous()
	require.True(t, ok)
	assert.Equal(t, 2.0, prev.Close)

	assert.Len(t, s.Tail(2), 2)
	assert.Len(t, s.Tail(10), 3)
	assert.Nil(t, s.Tail(0))
}

func TestPriceSeriesNilSafe(t *testing.T) {
	var s *PriceSeries
	assert.Equal(t, 0, s.Len())
	_, ok := s.Latest()
	assert.False(t, ok)
	dates, closes := s.Closes()
	assert.Empty(t, dates)
	assert.Empty(t, closes)
}

func TestBackfillFromSeries(t *testing.T) {
	series := NewPriceSeries("TSLA", []PriceBar{{Date: day(1), Close: 240}, {Date: day(2), Close: 250}})

	f := Fundamentals{}
	f.BackfillFromSeries(series)
	assert.Equal(t, null.FloatFrom(250), f.CurrentPrice)
	assert.Equal(t, null.FloatFrom(240), f.PreviousClose)

	kept := Fundamentals{CurrentPrice: null.FloatFrom(251)}
	kept.BackfillFromSeries(series)
	assert.Equal(t, 251.0, kept.CurrentPrice.Float64)
	assert.Equal(t, 240.0, kept.PreviousClose.Float64)

	single := Fundamentals{}
	single.BackfillFromSeries(NewPriceSeries("TSLA", []PriceBar{{Date: day(1), Close: 10}}))
	assert.True(t, single.CurrentPrice.Valid)
	assert.False(t, single.PreviousClose.Valid)
}

func TestAnalysisResultKeys(t *testing.T) {
	a := AnalysisResult{PERatio: null.StringFrom("22.00"), PEAnalysis: null.StringFrom("fair")}
	assert.Equal(t, []string{"pe_ratio", "pe_analysis"}, a.Keys())
	assert.Empty(t, AnalysisResult{}.Keys())
}
