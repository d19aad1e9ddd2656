// Package locale holds every user-facing string of the report. Decision
// thresholds live in the analyzer and never vary by locale.
package locale

import "golang-stock-insight/pkg/common"

// Labels is the display text for one locale.
type Labels struct {
	Code string

	TrendUp   string
	TrendDown string

	PEOvervalued  string
	PEUndervalued string
	PEFair        string

	DividendHigh string
	DividendLow  string
	DividendFair string

	// MarketCapTrillions and MarketCapBillions take the scaled value.
	MarketCapTrillions string
	MarketCapBillions  string
	SizeLarge          string
	SizeMid            string
	SizeSmall          string

	LevelHigh string
	LevelLow  string
	LevelMid  string

	PriceChangeHeading   string
	PERatioHeading       string
	DividendYieldHeading string
	MarketCapHeading     string
	PositionHeading      string

	AnalysisHeader  string
	NewsHeader      string
	NarrativeHeader string
	DateLabel       string
	SummaryLabel    string
	NoNews          string
	NotAvailable    string

	SummaryFallback   string
	NarrativeFallback string

	// ArticlePrompt takes the article block; ArticleBlock takes title, date, description, url.
	ArticlePrompt string
	ArticleBlock  string
	// NarrativePrompt takes the analysis block and the news block.
	NarrativePrompt  string
	AnalysisBlock    string
	NewsSummaryBlock string
}

var japanese = Labels{
	Code: common.LocaleJA,

	TrendUp:   "上昇",
	TrendDown: "下落",

	PEOvervalued:  "割高",
	PEUndervalued: "割安",
	PEFair:        "適正",

	DividendHigh: "高配当",
	DividendLow:  "低配当",
	DividendFair: "適正",

	MarketCapTrillions: "$%.2f兆",
	MarketCapBillions:  "$%.2f十億",
	SizeLarge:          "大型株",
	SizeMid:            "中型株",
	SizeSmall:          "小型株",

	LevelHigh: "高値圏",
	LevelLow:  "安値圏",
	LevelMid:  "中間圏",

	PriceChangeHeading:   "前日比",
	PERatioHeading:       "PER",
	DividendYieldHeading: "配当利回り",
	MarketCapHeading:     "時価総額",
	PositionHeading:      "52週間価格帯",

	AnalysisHeader:  "=== 投資分析 ===",
	NewsHeader:      "=== 最新ニュースと分析 ===",
	NarrativeHeader: "=== 総合投資判断 ===",
	DateLabel:       "日付",
	SummaryLabel:    "要約と分析",
	NoNews:          "ニュースは利用できません。",
	NotAvailable:    "N/A",

	SummaryFallback:   "要約を生成できませんでした。",
	NarrativeFallback: "総合判断を生成できませんでした。",

	ArticlePrompt: `以下のニュース記事を要約し、投資判断に役立つ情報を抽出してください：

%s

要約と投資判断に役立つ情報を日本語で提供してください。
`,
	ArticleBlock: `タイトル: %s
日付: %s
内容: %s
URL: %s
`,
	NarrativePrompt: `以下の株価分析結果とニュース情報を基に、総合的な投資判断を日本語で提供してください：

株価分析結果:
%s

最新ニュース:
%s

以下の点を含めて判断してください：
1. 現在の株価水準の評価
2. ニュースによる影響評価
3. 短期的な投資判断
4. 中長期的な投資判断
5. リスク要因
6. 具体的な投資戦略の提案

回答は箇条書きで、簡潔にまとめてください。
`,
	AnalysisBlock: `株価分析結果:
- 前日比: %s (%s)
- PER: %s (%s)
- 配当利回り: %s (%s)
- 時価総額: %s (%s)
- 52週間価格帯: %s (%s)
`,
	NewsSummaryBlock: `タイトル: %s
日付: %s
要約: %s
`,
}

var english = Labels{
	Code: common.LocaleEN,

	TrendUp:   "up",
	TrendDown: "down",

	PEOvervalued:  "overvalued",
	PEUndervalued: "undervalued",
	PEFair:        "fair",

	DividendHigh: "high",
	DividendLow:  "low",
	DividendFair: "fair",

	MarketCapTrillions: "$%.2fT",
	MarketCapBillions:  "$%.2fB",
	SizeLarge:          "large-cap",
	SizeMid:            "mid-cap",
	SizeSmall:          "small-cap",

	LevelHigh: "near highs",
	LevelLow:  "near lows",
	LevelMid:  "mid-range",

	PriceChangeHeading:   "Change vs previous close",
	PERatioHeading:       "P/E",
	DividendYieldHeading: "Dividend yield",
	MarketCapHeading:     "Market cap",
	PositionHeading:      "52-week range position",

	AnalysisHeader:  "=== Investment Analysis ===",
	NewsHeader:      "=== Latest News and Analysis ===",
	NarrativeHeader: "=== Overall Investment Opinion ===",
	DateLabel:       "Date",
	SummaryLabel:    "Summary and analysis",
	NoNews:          "No news available.",
	NotAvailable:    "N/A",

	SummaryFallback:   "Summary could not be generated.",
	NarrativeFallback: "Overall opinion could not be generated.",

	ArticlePrompt: `Summarize the following news article and extract the information that matters for an investment decision:

%s

Provide the summary and the investment-relevant information in English.
`,
	ArticleBlock: `Title: %s
Date: %s
Content: %s
URL: %s
`,
	NarrativePrompt: `Based on the stock analysis and the news below, give an overall investment opinion in English:

Stock analysis:
%s

Latest news:
%s

Cover the following points:
1. Assessment of the current price level
2. Impact of the news
3. Short-term investment call
4. Medium- to long-term investment call
5. Risk factors
6. A concrete investment strategy

Answer in concise bullet points.
`,
	AnalysisBlock: `Stock analysis:
- Change vs previous close: %s (%s)
- P/E: %s (%s)
- Dividend yield: %s (%s)
- Market cap: %s (%s)
- 52-week range position: %s (%s)
`,
	NewsSummaryBlock: `Title: %s
Date: %s
Summary: %s
`,
}

// For returns the labels for a locale code, Japanese when the code is unknown.
func For(code string) Labels {
	if code == common.LocaleEN {
		return english
	}
	return japanese
}
