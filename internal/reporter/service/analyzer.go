package service

import (
	"fmt"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/reporter/locale"

	"github.com/dustin/go-humanize"
	"github.com/guregu/null/v6"
)

const (
	peOvervaluedAbove  = 20.0
	peUndervaluedBelow = 15.0

	// Dividend thresholds are compared against the raw provider value, which is
	// a fraction, so the high bucket is effectively unreachable.
	dividendHighAbove = 3.0
	dividendLowBelow  = 1.0

	trillion = 1e12
	billion  = 1e9

	positionHighAbove = 80.0
	positionLowBelow  = 20.0
)

// Analyze derives the formatted analysis facts from a fundamentals snapshot.
// Each fact is emitted only when every input it needs is present.
func Analyze(f entity.Fundamentals, labels locale.Labels) entity.AnalysisResult {
	var result entity.AnalysisResult

	if f.CurrentPrice.Valid && f.PreviousClose.Valid && f.PreviousClose.Float64 != 0 {
		change := (f.CurrentPrice.Float64 - f.PreviousClose.Float64) / f.PreviousClose.Float64 * 100
		result.PriceChange = null.StringFrom(fmt.Sprintf("%+.2f%%", change))
		trend := labels.TrendDown
		if change > 0 {
			trend = labels.TrendUp
		}
		result.PriceTrend = null.StringFrom(trend)
	}

	if f.TrailingPE.Valid {
		pe := f.TrailingPE.Float64
		result.PERatio = null.StringFrom(fmt.Sprintf("%.2f", pe))
		switch {
		case pe > peOvervaluedAbove:
			result.PEAnalysis = null.StringFrom(labels.PEOvervalued)
		case pe < peUndervaluedBelow:
			result.PEAnalysis = null.StringFrom(labels.PEUndervalued)
		default:
			result.PEAnalysis = null.StringFrom(labels.PEFair)
		}
	}

	if f.DividendYield.Valid {
		yield := f.DividendYield.Float64
		result.DividendYield = null.StringFrom(fmt.Sprintf("%.2f%%", yield*100))
		switch {
		case yield > dividendHighAbove:
			result.DividendAnalysis = null.StringFrom(labels.DividendHigh)
		case yield < dividendLowBelow:
			result.DividendAnalysis = null.StringFrom(labels.DividendLow)
		default:
			result.DividendAnalysis = null.StringFrom(labels.DividendFair)
		}
	}

	if f.MarketCap.Valid {
		capValue := f.MarketCap.Float64
		switch {
		case capValue >= trillion:
			result.MarketCap = null.StringFrom(fmt.Sprintf(labels.MarketCapTrillions, capValue/trillion))
			result.Size = null.StringFrom(labels.SizeLarge)
		case capValue >= billion:
			result.MarketCap = null.StringFrom(fmt.Sprintf(labels.MarketCapBillions, capValue/billion))
			result.Size = null.StringFrom(labels.SizeMid)
		default:
			result.MarketCap = null.StringFrom("$" + humanize.FormatFloat("#,###.##", capValue))
			result.Size = null.StringFrom(labels.SizeSmall)
		}
	}

	if f.CurrentPrice.Valid && f.FiftyTwoWeekHigh.Valid && f.FiftyTwoWeekLow.Valid &&
		f.FiftyTwoWeekHigh.Float64 != f.FiftyTwoWeekLow.Float64 {
		low, high := f.FiftyTwoWeekLow.Float64, f.FiftyTwoWeekHigh.Float64
		position := (f.CurrentPrice.Float64 - low) / (high - low) * 100
		result.PricePosition = null.StringFrom(fmt.Sprintf("%.1f%%", position))
		switch {
		case position > positionHighAbove:
			result.PriceLevel = null.StringFrom(labels.LevelHigh)
		case position < positionLowBelow:
			result.PriceLevel = null.StringFrom(labels.LevelLow)
		default:
			result.PriceLevel = null.StringFrom(labels.LevelMid)
		}
	}

	return result
}
