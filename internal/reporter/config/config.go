package config

import (
	"errors"
	"fmt"
	"time"

	"golang-stock-insight/pkg/common"
	"golang-stock-insight/pkg/config"
)

// AlphaVantage holds the configuration for the Alpha Vantage daily series API.
type AlphaVantage struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	OutputSize string        `mapstructure:"output_size"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// YahooFinance holds the configuration for the Yahoo Finance quote summary API.
type YahooFinance struct {
	BaseURL   string `mapstructure:"base_url"`
	CookieURL string `mapstructure:"cookie_url"`
	UserAgent string `mapstructure:"user_agent"`
}

// GoogleNews holds the configuration for the Google News RSS search.
type GoogleNews struct {
	BaseURL  string `mapstructure:"base_url"`
	Language string `mapstructure:"language"`
	Country  string `mapstructure:"country"`
	Limit    int    `mapstructure:"limit"`
}

// AI selects the LLM provider and the shared request budget.
type AI struct {
	Provider            string  `mapstructure:"provider"`
	Temperature         float64 `mapstructure:"temperature"`
	MaxRequestPerMinute int     `mapstructure:"max_request_per_minute"`
}

// OpenAI holds the configuration for the OpenAI chat completions API.
type OpenAI struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Anthropic holds the configuration for the Anthropic messages API.
type Anthropic struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// Telegram holds configuration for the optional Telegram delivery.
type Telegram struct {
	Enabled     bool   `mapstructure:"enabled"`
	BotToken    string `mapstructure:"bot_token"`
	ChatID      int64  `mapstructure:"chat_id"`
	APIEndpoint string `mapstructure:"api_endpoint"`
}

// Report holds what to report on.
type Report struct {
	Symbol      string `mapstructure:"symbol"`
	CompanyName string `mapstructure:"company_name"`
	Market      string `mapstructure:"market"`
	Locale      string `mapstructure:"locale"`
	NewsLimit   int    `mapstructure:"news_limit"`
	ChartOut    string `mapstructure:"chart_out"`
}

// Config holds the full configuration for the report command.
type Config struct {
	App          config.App    `mapstructure:"app"`
	Logger       config.Logger `mapstructure:"logger"`
	AlphaVantage AlphaVantage  `mapstructure:"alpha_vantage"`
	YahooFinance YahooFinance  `mapstructure:"yahoo_finance"`
	GoogleNews   GoogleNews    `mapstructure:"google_news"`
	AI           AI            `mapstructure:"ai"`
	OpenAI       OpenAI        `mapstructure:"openai"`
	Gemini       Gemini        `mapstructure:"gemini"`
	Anthropic    Anthropic     `mapstructure:"anthropic"`
	Telegram     Telegram      `mapstructure:"telegram"`
	Report       Report        `mapstructure:"report"`

	// HTTPTimeout applies to every outbound HTTP client. Zero means no timeout,
	// so a hung upstream blocks the run until it is interrupted.
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Defaults returns the value of every configuration key before file and environment overrides.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":    "stock-insight",
		"app.env":     "local",
		"app.version": "dev",

		"logger.level":    "info",
		"logger.encoding": "console",

		"alpha_vantage.api_key":     "",
		"alpha_vantage.base_url":    "https://www.alphavantage.co/query",
		"alpha_vantage.output_size": common.OutputSizeCompact,
		"alpha_vantage.max_retries": 3,
		"alpha_vantage.retry_delay": 10 * time.Second,

		"yahoo_finance.base_url":   "https://query2.finance.yahoo.com",
		"yahoo_finance.cookie_url": "https://fc.yahoo.com",
		"yahoo_finance.user_agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",

		"google_news.base_url": "https://news.google.com/rss/search",
		"google_news.language": "en",
		"google_news.country":  "US",
		"google_news.limit":    5,

		"ai.provider":               common.ProviderOpenAI,
		"ai.temperature":            0.0,
		"ai.max_request_per_minute": 0,

		"openai.api_key":  "",
		"openai.base_url": "",
		"openai.model":    "gpt-3.5-turbo",

		"gemini.api_key": "",
		"gemini.model":   "gemini-2.0-flash",

		"anthropic.api_key":    "",
		"anthropic.model":      "claude-3-5-haiku-latest",
		"anthropic.max_tokens": 2048,

		"telegram.enabled":      false,
		"telegram.bot_token":    "",
		"telegram.chat_id":      0,
		"telegram.api_endpoint": "",

		"report.symbol":       "TSLA",
		"report.company_name": "Tesla",
		"report.market":       common.MarketUS,
		"report.locale":       common.LocaleJA,
		"report.news_limit":   3,
		"report.chart_out":    "",

		"http_timeout": time.Duration(0),
	}
}

// Load loads the report configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, Defaults()); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ErrMissingCredential is returned when a required API key is empty.
var ErrMissingCredential = errors.New("missing credential")

// Credential describes a required secret and where to get it.
type Credential struct {
	EnvName  string
	Provider string
	Value    string
}

// MissingCredentials returns the required credentials that are empty, in check order:
// market data first, then the key for the selected LLM provider.
func (c *Config) MissingCredentials() []Credential {
	required := []Credential{
		{EnvName: "ALPHA_VANTAGE_API_KEY", Provider: "Alpha Vantage", Value: c.AlphaVantage.APIKey},
		c.llmCredential(),
	}
	var missing []Credential
	for _, cred := range required {
		if cred.Value == "" {
			missing = append(missing, cred)
		}
	}
	return missing
}

// CheckCredentials returns the first missing credential wrapped in ErrMissingCredential.
func (c *Config) CheckCredentials() (Credential, error) {
	missing := c.MissingCredentials()
	if len(missing) == 0 {
		return Credential{}, nil
	}
	return missing[0], fmt.Errorf("%w: %s is not set", ErrMissingCredential, missing[0].EnvName)
}

func (c *Config) llmCredential() Credential {
	switch c.AI.Provider {
	case common.ProviderGemini:
		return Credential{EnvName: "GEMINI_API_KEY", Provider: "Google AI Studio", Value: c.Gemini.APIKey}
	case common.ProviderAnthropic:
		return Credential{EnvName: "ANTHROPIC_API_KEY", Provider: "Anthropic", Value: c.Anthropic.APIKey}
	default:
		return Credential{EnvName: "OPENAI_API_KEY", Provider: "OpenAI", Value: c.OpenAI.APIKey}
	}
}

// Validate checks values that would otherwise fail deep inside a request.
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case common.ProviderOpenAI, common.ProviderGemini, common.ProviderAnthropic:
	default:
		return fmt.Errorf("invalid ai.provider %q", c.AI.Provider)
	}
	switch c.AlphaVantage.OutputSize {
	case common.OutputSizeCompact, common.OutputSizeFull:
	default:
		return fmt.Errorf("invalid alpha_vantage.output_size %q", c.AlphaVantage.OutputSize)
	}
	switch c.Report.Locale {
	case common.LocaleJA, common.LocaleEN:
	default:
		return fmt.Errorf("invalid report.locale %q", c.Report.Locale)
	}
	if c.Report.Symbol == "" {
		return fmt.Errorf("report.symbol is required")
	}
	if c.AlphaVantage.MaxRetries < 1 {
		return fmt.Errorf("alpha_vantage.max_retries must be at least 1")
	}
	if c.GoogleNews.Limit < 1 {
		return fmt.Errorf("google_news.limit must be at least 1")
	}
	if c.Report.NewsLimit < 0 {
		return fmt.Errorf("report.news_limit must not be negative")
	}
	if c.Telegram.Enabled && (c.Telegram.BotToken == "" || c.Telegram.ChatID == 0) {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id are required when telegram is enabled")
	}
	return nil
}
