package enrich

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/selivandex/newspulse/pkg/fetch"
	"github.com/selivandex/newspulse/pkg/logger"
	"github.com/selivandex/newspulse/pkg/models"
)

// Enricher fills in missing article summaries from the linked page.
// Every failure path degrades to the NoSummary sentinel; enrichment never
// propagates an error into the pipeline.
type Enricher struct {
	client       *fetch.Client
	summarizer   Summarizer
	minBodyChars int
}

// New creates an enricher. minBodyChars is the extracted-text threshold below
// which no summary is attempted.
func New(client *fetch.Client, summarizer Summarizer, minBodyChars int) *Enricher {
	if minBodyChars <= 0 {
		minBodyChars = 100
	}
	return &Enricher{
		client:       client,
		summarizer:   summarizer,
		minBodyChars: minBodyChars,
	}
}

// Enrich guarantees the returned article has a summary: the original one,
// a derived one, or the sentinel. Articles that already carry a summary pass
// through unchanged, which makes Enrich idempotent.
func (e *Enricher) Enrich(ctx context.Context, article models.RawArticle) models.EnrichedArticle {
	if article.HasSummary() {
		return models.EnrichedArticle{RawArticle: article}
	}

	enriched := article
	enriched.Summary = e.deriveSummary(ctx, article)
	return models.EnrichedArticle{RawArticle: enriched}
}

func (e *Enricher) deriveSummary(ctx context.Context, article models.RawArticle) string {
	body, err := e.client.Get(ctx, article.Link)
	if err != nil {
		logger.Debug("enrichment fetch failed",
			zap.String("link", article.Link),
			zap.Error(err),
		)
		return models.NoSummary
	}

	text := extractBody(body)
	if len(text) <= e.minBodyChars {
		return models.NoSummary
	}

	summary := e.summarizer.Summarize(text)
	if summary == "" {
		return models.NoSummary
	}
	return summary
}

// extractBody concatenates paragraph text from an HTML page. Deliberately
// generic: no site-specific selectors at this layer.
func extractBody(page []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	var paragraphs []string
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, " ")
}
