package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang-stock-insight/internal/reporter/config"
	"golang-stock-insight/internal/reporter/locale"
	"golang-stock-insight/internal/reporter/presenter"
	"golang-stock-insight/internal/reporter/repository"
	"golang-stock-insight/internal/reporter/service"
	"golang-stock-insight/pkg/logger"
	"golang-stock-insight/pkg/telegram"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath  string
	symbol      string
	companyName string
	market      string
	newsLimit   int
	outputSize  string
	localeCode  string
	chartOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetches prices, fundamentals and news for one ticker and prints an investment report",
	Run:   runReport,
}

func runReport(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	applyFlags(cmd, cfg)

	labels := locale.For(cfg.Report.Locale)
	console := presenter.NewConsole(os.Stdout, labels)

	if cred, err := cfg.CheckCredentials(); err != nil {
		console.PrintMissingCredential(cred)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Debug("Starting report", zap.String("name", cfg.App.Name), zap.String("symbol", cfg.Report.Symbol))

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Initialize repositories
	priceRepo := repository.NewAlphaVantageRepository(cfg, appLogger, httpClient)
	fundamentalsRepo, err := repository.NewYahooFinanceRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Yahoo Finance repository", zap.Error(err))
	}
	newsRepo := repository.NewGoogleNewsRepository(cfg, appLogger, httpClient)

	completionClient, err := repository.NewCompletionClient(ctx, cfg, httpClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize AI provider", zap.Error(err), zap.String("provider", cfg.AI.Provider))
	}
	aiRepo := repository.NewAIRepository(cfg, appLogger, completionClient, labels)

	var notifier telegram.Notifier
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.APIEndpoint)
		if err != nil {
			appLogger.Error("Failed to initialize Telegram notifier, delivery disabled", zap.Error(err))
			notifier = nil
		}
	}

	// Initialize services
	reportSvc := service.NewReportService(
		cfg,
		service.NewPriceService(cfg, priceRepo, appLogger),
		fundamentalsRepo,
		service.NewNewsService(newsRepo, aiRepo, labels, appLogger),
		service.NewNarrativeService(aiRepo, labels, appLogger),
		notifier,
		labels,
		appLogger,
	)

	console.PrintBanner(cfg.Report.Symbol)
	report, err := reportSvc.Generate(ctx)
	if err != nil {
		if errors.Is(err, service.ErrPriceUnavailable) {
			console.PrintFetchFailure()
			return
		}
		appLogger.Fatal("Failed to generate report", zap.Error(err))
	}

	console.PrintReport(report)

	// The chart is always rendered; it is only persisted when a path is given.
	if cfg.Report.ChartOut == "" {
		if _, err := presenter.RenderChart(report); err != nil {
			appLogger.Error("Failed to render chart", zap.Error(err))
		}
		return
	}
	if err := presenter.SaveChart(report, cfg.Report.ChartOut); err != nil {
		appLogger.Error("Failed to save chart", zap.Error(err))
	}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("symbol") {
		cfg.Report.Symbol = symbol
	}
	if flags.Changed("company") {
		cfg.Report.CompanyName = companyName
	}
	if flags.Changed("market") {
		cfg.Report.Market = market
	}
	if flags.Changed("news-limit") {
		cfg.Report.NewsLimit = newsLimit
	}
	if flags.Changed("output-size") {
		cfg.AlphaVantage.OutputSize = outputSize
	}
	if flags.Changed("locale") {
		cfg.Report.Locale = localeCode
	}
	if flags.Changed("chart-out") {
		cfg.Report.ChartOut = chartOut
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "stock-insight",
		Short: "A CLI that turns market data and news into a single stock report",
	}

	reportCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")
	reportCmd.Flags().StringVar(&symbol, "symbol", "", "Ticker symbol, e.g. TSLA or 7203.T")
	reportCmd.Flags().StringVar(&companyName, "company", "", "Company name used in the news query")
	reportCmd.Flags().StringVar(&market, "market", "", "Market flag, US or JP")
	reportCmd.Flags().IntVar(&newsLimit, "news-limit", 0, "Number of news articles to summarize")
	reportCmd.Flags().StringVar(&outputSize, "output-size", "", "Alpha Vantage output size, compact or full")
	reportCmd.Flags().StringVar(&localeCode, "locale", "", "Report language, ja or en")
	reportCmd.Flags().StringVar(&chartOut, "chart-out", "", "Write the closing-price chart PDF to this path")

	rootCmd.AddCommand(reportCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing stock-insight CLI: %s\n", err)
		os.Exit(1)
	}
}
