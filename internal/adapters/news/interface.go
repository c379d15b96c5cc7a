package news

import (
	"context"

	"github.com/selivandex/newspulse/pkg/models"
)

// maxArticlesDefault caps how many headlines one source contributes per query.
const maxArticlesDefault = 5

// Source represents a single news provider behind a uniform contract.
// Implementations own their request shaping and response decoding; none of
// that leaks to the aggregator.
type Source interface {
	// Name returns the source identifier recorded on every article
	Name() string

	// Fetch returns up to the configured maximum of headlines for a company,
	// in upstream relevance order. An error means the source is broken for
	// this query, not that there is no news.
	Fetch(ctx context.Context, company string) ([]models.RawArticle, error)

	// Enabled returns whether the source is configured to run
	Enabled() bool
}

// capArticles trims a result to the per-source maximum, preserving order
func capArticles(articles []models.RawArticle, max int) []models.RawArticle {
	if max <= 0 {
		max = maxArticlesDefault
	}
	if len(articles) > max {
		return articles[:max]
	}
	return articles
}
