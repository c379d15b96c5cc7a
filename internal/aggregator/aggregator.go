package aggregator

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/newspulse/internal/adapters/news"
	"github.com/selivandex/newspulse/pkg/logger"
	"github.com/selivandex/newspulse/pkg/models"
)

// Strategy selects the fallback policy across sources
type Strategy string

const (
	// StrategyFirstSuccess tries sources in priority order and stops at the
	// first non-empty result
	StrategyFirstSuccess Strategy = "first-success"

	// StrategyAggregateAll queries every source and merges the results
	StrategyAggregateAll Strategy = "aggregate-all"
)

// SleepFunc pauses between source attempts; tests inject a no-op
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

// Options configures the aggregator
type Options struct {
	Strategy       Strategy
	AttemptPause   time.Duration // pause between sequential source attempts
	AdapterTimeout time.Duration // per-source deadline, bounds slow sources
	Sleep          SleepFunc     // defaults to a context-aware time.After
}

// Aggregator merges headlines from multiple sources under a fallback policy.
// Source priority is the configured slice order, never discovered at runtime.
type Aggregator struct {
	sources []news.Source
	opts    Options
}

// New creates an aggregator over the given sources
func New(sources []news.Source, opts Options) *Aggregator {
	if opts.Strategy == "" {
		opts.Strategy = StrategyFirstSuccess
	}
	if opts.AdapterTimeout <= 0 {
		opts.AdapterTimeout = 20 * time.Second
	}
	if opts.Sleep == nil {
		opts.Sleep = contextSleep
	}
	return &Aggregator{sources: sources, opts: opts}
}

// Collect returns the merged headline list for a company plus the per-source
// outcomes. An empty list is a valid result, not an error: it means every
// source failed or had nothing.
func (a *Aggregator) Collect(ctx context.Context, company string) ([]models.RawArticle, []models.SourceResult) {
	switch a.opts.Strategy {
	case StrategyAggregateAll:
		return a.aggregateAll(ctx, company)
	default:
		return a.firstSuccess(ctx, company)
	}
}

// firstSuccess walks sources in priority order, pausing between attempts, and
// stops at the first one that yields articles.
func (a *Aggregator) firstSuccess(ctx context.Context, company string) ([]models.RawArticle, []models.SourceResult) {
	results := make([]models.SourceResult, 0, len(a.sources))

	attempted := false
	for _, source := range a.sources {
		if !source.Enabled() {
			continue
		}
		if attempted {
			a.opts.Sleep(ctx, a.opts.AttemptPause)
		}
		attempted = true

		res := a.fetchOne(ctx, source, company)
		results = append(results, res)

		if res.Outcome == models.OutcomeSuccess {
			return res.Articles, results
		}
	}

	return nil, results
}

// aggregateAll queries every enabled source concurrently and concatenates the
// non-empty results in configuration order, deduplicating by (title, source).
func (a *Aggregator) aggregateAll(ctx context.Context, company string) ([]models.RawArticle, []models.SourceResult) {
	enabled := make([]news.Source, 0, len(a.sources))
	for _, source := range a.sources {
		if source.Enabled() {
			enabled = append(enabled, source)
		}
	}

	// Fan out one goroutine per source, join by index so the merge keeps
	// configuration order regardless of completion order.
	collected := make([]models.SourceResult, len(enabled))
	done := make(chan int, len(enabled))

	for i, source := range enabled {
		go func(idx int, s news.Source) {
			collected[idx] = a.fetchOne(ctx, s, company)
			done <- idx
		}(i, source)
	}
	for range enabled {
		<-done
	}

	seen := make(map[string]bool)
	var merged []models.RawArticle
	for _, res := range collected {
		for _, article := range res.Articles {
			key := dedupeKey(article)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, article)
		}
	}

	return merged, collected
}

// fetchOne runs a single source with its own deadline and converts the result
// into a SourceResult, so "no news" and "source broken" stay distinguishable.
func (a *Aggregator) fetchOne(ctx context.Context, source news.Source, company string) models.SourceResult {
	fetchCtx, cancel := context.WithTimeout(ctx, a.opts.AdapterTimeout)
	defer cancel()

	articles, err := source.Fetch(fetchCtx, company)
	switch {
	case err != nil:
		logger.Warn("source failed",
			zap.String("source", source.Name()),
			zap.String("company", company),
			zap.Error(err),
		)
		return models.SourceResult{Source: source.Name(), Outcome: models.OutcomeFailed, Err: err}
	case len(articles) == 0:
		logger.Debug("source returned no headlines",
			zap.String("source", source.Name()),
			zap.String("company", company),
		)
		return models.SourceResult{Source: source.Name(), Outcome: models.OutcomeEmpty}
	default:
		return models.SourceResult{Source: source.Name(), Articles: articles, Outcome: models.OutcomeSuccess}
	}
}

// dedupeKey normalizes (title, source) for duplicate detection. Cross-source
// duplicates with different wording are intentionally left alone.
func dedupeKey(article models.RawArticle) string {
	title := strings.Join(strings.Fields(strings.ToLower(article.Title)), " ")
	return title + "|" + article.Source
}
