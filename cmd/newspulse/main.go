package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/newspulse/internal/adapters/config"
	"github.com/selivandex/newspulse/internal/adapters/news"
	"github.com/selivandex/newspulse/internal/adapters/telegram"
	"github.com/selivandex/newspulse/internal/aggregator"
	"github.com/selivandex/newspulse/internal/enrich"
	"github.com/selivandex/newspulse/internal/pipeline"
	"github.com/selivandex/newspulse/internal/report"
	"github.com/selivandex/newspulse/internal/sentiment"
	"github.com/selivandex/newspulse/pkg/fetch"
	"github.com/selivandex/newspulse/pkg/logger"
	"github.com/selivandex/newspulse/pkg/models"
	"github.com/selivandex/newspulse/pkg/worker"
)

type options struct {
	companies   string
	method      string
	strategy    string
	articlesCSV string
	summaryCSV  string
	watch       bool
	interval    time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.companies, "companies", "", "comma-separated company names or tickers (required)")
	flag.StringVar(&opts.method, "method", "", "sentiment method: lexicon or model (default from env)")
	flag.StringVar(&opts.strategy, "strategy", "", "source strategy: first-success or aggregate-all (default from env)")
	flag.StringVar(&opts.articlesCSV, "articles-csv", "", "write per-article results to this CSV file")
	flag.StringVar(&opts.summaryCSV, "summary-csv", "", "write per-company summary to this CSV file")
	flag.BoolVar(&opts.watch, "watch", false, "keep running, re-fetching on an interval")
	flag.DurationVar(&opts.interval, "interval", 30*time.Minute, "re-fetch interval in watch mode")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nreceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override env config for the per-run choices.
	if opts.method != "" {
		cfg.Sentiment.Method = opts.method
	}
	if opts.strategy != "" {
		cfg.Sources.Strategy = opts.strategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	companies := splitCompanies(opts.companies)
	if len(companies) == 0 {
		return fmt.Errorf("no companies given, use -companies \"ACME, Initech\"")
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("newspulse starting",
		zap.Int("companies", len(companies)),
		zap.String("method", cfg.Sentiment.Method),
		zap.String("strategy", cfg.Sources.Strategy),
	)

	runner, err := buildRunner(cfg)
	if err != nil {
		return err
	}

	notifier := initNotifier(cfg)

	job := &batchJob{
		runner:    runner,
		companies: companies,
		opts:      opts,
		notifier:  notifier,
	}

	if !opts.watch {
		return job.Run(ctx)
	}

	periodic := worker.NewPeriodic(job, opts.interval)
	periodic.Start(ctx)

	<-ctx.Done()
	periodic.Wait(10 * time.Second)
	return nil
}

// buildRunner wires the pipeline from configuration
func buildRunner(cfg *config.Config) (*pipeline.Runner, error) {
	client := fetch.NewClient(fetch.Config{
		MaxAttempts:    cfg.HTTP.MaxAttempts,
		BaseBackoff:    cfg.HTTP.BaseBackoff,
		MaxBackoff:     cfg.HTTP.MaxBackoff,
		AttemptTimeout: cfg.HTTP.AttemptTimeout,
		RateLimitRPS:   cfg.HTTP.RateLimitRPS,
	})

	// Priority order is fixed configuration: the scraped tag pages first
	// (most company-specific), then the search feeds.
	sources := []news.Source{
		news.NewMoneycontrolSource(cfg.Sources.MoneycontrolEnabled, cfg.Sources.MaxArticles, client),
		news.NewGoogleNewsSource(cfg.Sources.GoogleEnabled, cfg.Sources.MaxArticles, client),
		news.NewYahooFinanceSource(cfg.Sources.YahooEnabled, cfg.Sources.MaxArticles, client),
	}

	collector := aggregator.New(sources, aggregator.Options{
		Strategy:       aggregator.Strategy(cfg.Sources.Strategy),
		AttemptPause:   cfg.Sources.AttemptPause,
		AdapterTimeout: cfg.Sources.AdapterTimeout,
	})

	var summarizer enrich.Summarizer = enrich.NewLeadSummarizer(cfg.Enrich.MinWords, cfg.Enrich.MaxWords)
	if !cfg.Enrich.Enabled {
		summarizer = enrich.NoopSummarizer{}
	}
	enricher := enrich.New(client, summarizer, cfg.Enrich.MinBodyChars)

	var classifier sentiment.Classifier
	switch cfg.Sentiment.Method {
	case "model":
		classifier = sentiment.NewModelClassifier(cfg.Sentiment.OpenAIAPIKey, cfg.Sentiment.OpenAIModel)
	default:
		classifier = sentiment.NewLexiconClassifier()
	}

	return pipeline.NewRunner(collector, enricher, classifier, pipeline.Options{
		CompanyDelayMin: cfg.Pipeline.CompanyDelayMin,
		CompanyDelayMax: cfg.Pipeline.CompanyDelayMax,
		CompanyTimeout:  cfg.Pipeline.CompanyTimeout,
	}), nil
}

// initNotifier sets up the optional telegram digest sink
func initNotifier(cfg *config.Config) *telegram.Notifier {
	if cfg.Telegram.BotToken == "" {
		return nil
	}

	notifier, err := telegram.NewNotifier(&cfg.Telegram)
	if err != nil {
		logger.Error("failed to create telegram notifier", zap.Error(err))
		return nil
	}
	return notifier
}

// batchJob runs one batch and delivers the results. Implements worker.Worker
// so watch mode can re-run it periodically.
type batchJob struct {
	runner    *pipeline.Runner
	companies []string
	opts      options
	notifier  *telegram.Notifier
}

func (j *batchJob) Name() string { return "news-sentiment-batch" }

func (j *batchJob) Run(ctx context.Context) error {
	reports, err := j.runner.RunBatch(ctx, j.companies)
	if err != nil {
		return err
	}

	report.RenderTables(os.Stdout, reports)

	if err := writeCSVs(j.opts, reports); err != nil {
		return err
	}

	if j.notifier != nil {
		if err := j.notifier.SendDigest(report.Digest(reports)); err != nil {
			logger.Warn("failed to deliver telegram digest", zap.Error(err))
		}
	}

	return nil
}

func writeCSVs(opts options, reports []models.CompanyReport) error {
	if opts.articlesCSV != "" {
		if err := writeCSVFile(opts.articlesCSV, reports, report.WriteArticlesCSV); err != nil {
			return err
		}
		logger.Info("articles CSV written", zap.String("path", opts.articlesCSV))
	}

	if opts.summaryCSV != "" {
		if err := writeCSVFile(opts.summaryCSV, reports, report.WriteSummaryCSV); err != nil {
			return err
		}
		logger.Info("summary CSV written", zap.String("path", opts.summaryCSV))
	}

	return nil
}

func writeCSVFile(path string, reports []models.CompanyReport, write func(w io.Writer, reports []models.CompanyReport) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := write(file, reports); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func splitCompanies(input string) []string {
	var companies []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			companies = append(companies, trimmed)
		}
	}
	return companies
}
