package presenter

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/pkg/common"

	"github.com/go-pdf/fpdf"
)

// ErrEmptySeries is returned when there is nothing to plot.
var ErrEmptySeries = errors.New("price series is empty")

const (
	chartLeft   = 30.0
	chartTop    = 25.0
	chartWidth  = 240.0
	chartHeight = 150.0
	gridLines   = 5
	dateTicks   = 6
)

// RenderChart draws the closing-price line chart as a one-page PDF.
func RenderChart(report *entity.Report) ([]byte, error) {
	dates, closes := report.Series.Closes()
	if len(closes) == 0 {
		return nil, ErrEmptySeries
	}

	minY, maxY := closes[0], closes[0]
	for _, c := range closes {
		minY = math.Min(minY, c)
		maxY = math.Max(maxY, c)
	}
	if minY == maxY {
		minY, maxY = minY-1, maxY+1
	}
	pad := (maxY - minY) * 0.05
	minY, maxY = minY-pad, maxY+pad

	xAt := func(i int) float64 {
		if len(closes) == 1 {
			return chartLeft + chartWidth/2
		}
		return chartLeft + float64(i)/float64(len(closes)-1)*chartWidth
	}
	yAt := func(v float64) float64 {
		return chartTop + chartHeight - (v-minY)/(maxY-minY)*chartHeight
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetXY(chartLeft, 10)
	pdf.CellFormat(chartWidth, 8, fmt.Sprintf("%s Stock Price Trend", report.Symbol), "", 0, "C", false, 0, "")

	// grid and y ticks
	pdf.SetFont("Arial", "", 8)
	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(210, 210, 210)
	for i := 0; i <= gridLines; i++ {
		v := minY + (maxY-minY)*float64(i)/gridLines
		y := yAt(v)
		pdf.Line(chartLeft, y, chartLeft+chartWidth, y)
		pdf.SetXY(chartLeft-22, y-2)
		pdf.CellFormat(20, 4, fmt.Sprintf("%.2f", v), "", 0, "R", false, 0, "")
	}
	step := int(math.Max(1, math.Ceil(float64(len(dates)-1)/float64(dateTicks-1))))
	for i := 0; i < len(dates); i += step {
		x := xAt(i)
		pdf.Line(x, chartTop, x, chartTop+chartHeight)
		pdf.SetXY(x-12, chartTop+chartHeight+1)
		pdf.CellFormat(24, 4, dates[i].Format("2006-01-02"), "", 0, "C", false, 0, "")
	}

	// axes
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(chartLeft, chartTop, chartLeft, chartTop+chartHeight)
	pdf.Line(chartLeft, chartTop+chartHeight, chartLeft+chartWidth, chartTop+chartHeight)

	pdf.SetFont("Arial", "", 10)
	pdf.SetXY(chartLeft, chartTop+chartHeight+7)
	pdf.CellFormat(chartWidth, 6, "Date", "", 0, "C", false, 0, "")

	yLabel := priceAxisLabel(report.Market)
	labelX, labelY := 8.0, chartTop+chartHeight/2+pdf.GetStringWidth(yLabel)/2
	pdf.TransformBegin()
	pdf.TransformRotate(90, labelX, labelY)
	pdf.Text(labelX, labelY, yLabel)
	pdf.TransformEnd()

	// close series
	pdf.SetDrawColor(31, 119, 180)
	pdf.SetLineWidth(0.5)
	if len(closes) == 1 {
		pdf.SetFillColor(31, 119, 180)
		pdf.Circle(xAt(0), yAt(closes[0]), 0.8, "F")
	}
	for i := 1; i < len(closes); i++ {
		pdf.Line(xAt(i-1), yAt(closes[i-1]), xAt(i), yAt(closes[i]))
	}

	// legend
	legendX, legendY := chartLeft+chartWidth-30, chartTop+5
	pdf.Line(legendX, legendY, legendX+8, legendY)
	pdf.SetFont("Arial", "", 9)
	pdf.Text(legendX+10, legendY+1.2, "Close")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveChart renders the chart and writes it to path.
func SaveChart(report *entity.Report, path string) error {
	data, err := RenderChart(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write chart to %s: %w", path, err)
	}
	return nil
}

func priceAxisLabel(market string) string {
	return fmt.Sprintf("Stock Price (%s)", common.CurrencyForMarket(market))
}
