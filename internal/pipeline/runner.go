package pipeline

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selivandex/newspulse/internal/sentiment"
	"github.com/selivandex/newspulse/pkg/logger"
	"github.com/selivandex/newspulse/pkg/models"
)

// ErrNoCompanies is returned when the batch contains no usable company names.
// The only fatal condition in a run; everything downstream degrades instead.
var ErrNoCompanies = errors.New("pipeline: no companies provided")

// Collector produces the merged headline list for a company
type Collector interface {
	Collect(ctx context.Context, company string) ([]models.RawArticle, []models.SourceResult)
}

// Enricher guarantees a summary on every article
type Enricher interface {
	Enrich(ctx context.Context, article models.RawArticle) models.EnrichedArticle
}

// SleepFunc pauses between companies; tests inject a no-op
type SleepFunc func(ctx context.Context, d time.Duration)

func contextSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// Options configures batch pacing
type Options struct {
	CompanyDelayMin time.Duration // randomized inter-company delay lower bound
	CompanyDelayMax time.Duration // upper bound
	CompanyTimeout  time.Duration // overall deadline per company, 0 disables
	Sleep           SleepFunc
}

// Runner sequences collection, enrichment, classification, and the verdict
// per company. The classification method and source strategy are fixed at
// construction; the CLI maps user choices onto them.
type Runner struct {
	collector  Collector
	enricher   Enricher
	classifier sentiment.Classifier
	opts       Options
}

// NewRunner wires the pipeline stages together
func NewRunner(collector Collector, enricher Enricher, classifier sentiment.Classifier, opts Options) *Runner {
	if opts.Sleep == nil {
		opts.Sleep = contextSleep
	}
	return &Runner{
		collector:  collector,
		enricher:   enricher,
		classifier: classifier,
		opts:       opts,
	}
}

// RunBatch processes each company and returns one report per company, in
// input order. A company with zero retrievable articles yields an empty
// report with a neutral verdict, never an error. Cancelling the context stops
// the batch at the next company boundary and returns the completed reports
// alongside the context error.
func (r *Runner) RunBatch(ctx context.Context, companies []string) ([]models.CompanyReport, error) {
	cleaned := make([]string, 0, len(companies))
	for _, company := range companies {
		if trimmed := strings.TrimSpace(company); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrNoCompanies
	}

	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	log.Info("batch starting", zap.Int("companies", len(cleaned)))
	start := time.Now()

	reports := make([]models.CompanyReport, 0, len(cleaned))
	for i, company := range cleaned {
		if i > 0 {
			r.opts.Sleep(ctx, r.companyDelay())
		}
		if err := ctx.Err(); err != nil {
			log.Warn("batch abandoned", zap.Int("completed", len(reports)))
			return reports, err
		}

		reports = append(reports, r.processCompany(ctx, log, company))
	}

	log.Info("batch finished",
		zap.Int("companies", len(cleaned)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return reports, nil
}

// processCompany runs the full pipeline for one company. Failures inside any
// stage degrade to empty or neutral values, so the batch always continues.
func (r *Runner) processCompany(ctx context.Context, log *zap.Logger, company string) models.CompanyReport {
	companyCtx := ctx
	if r.opts.CompanyTimeout > 0 {
		var cancel context.CancelFunc
		companyCtx, cancel = context.WithTimeout(ctx, r.opts.CompanyTimeout)
		defer cancel()
	}

	articles, sourceResults := r.collector.Collect(companyCtx, company)
	for _, res := range sourceResults {
		if res.Outcome == models.OutcomeFailed {
			log.Warn("source failed for company",
				zap.String("company", company),
				zap.String("source", res.Source),
				zap.Error(res.Err),
			)
		}
	}

	report := models.CompanyReport{
		Company:   company,
		Articles:  make([]models.ClassifiedArticle, 0, len(articles)),
		FetchedAt: time.Now(),
	}

	for _, raw := range articles {
		enriched := r.enricher.Enrich(companyCtx, raw)
		label := r.classifier.Classify(companyCtx, sentiment.ClassificationText(enriched))

		report.Articles = append(report.Articles, models.ClassifiedArticle{
			EnrichedArticle: enriched,
			Sentiment:       label,
		})
		report.Counts.Add(label)
	}

	report.Verdict = sentiment.Verdict(report.Counts)

	log.Info("company processed",
		zap.String("company", company),
		zap.Int("articles", len(report.Articles)),
		zap.String("verdict", string(report.Verdict)),
	)

	return report
}

// companyDelay picks a uniform random duration in the configured range
func (r *Runner) companyDelay() time.Duration {
	min, max := r.opts.CompanyDelayMin, r.opts.CompanyDelayMax
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int64N(int64(max-min)))
}
