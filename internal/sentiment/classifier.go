package sentiment

import (
	"context"
	"strings"

	"github.com/selivandex/newspulse/pkg/models"
)

// maxInputWords bounds classification cost; longer input is truncated first.
const maxInputWords = 512

// Classifier assigns a sentiment label to a piece of text. Implementations
// never abort the pipeline: any internal failure coerces to neutral.
type Classifier interface {
	Classify(ctx context.Context, text string) models.Sentiment
}

// ClassificationText builds the classifier input for an enriched article:
// title and summary jointly, with the sentinel summary omitted.
func ClassificationText(article models.EnrichedArticle) string {
	if article.Summary == models.NoSummary {
		return article.Title
	}
	return article.Title + ". " + article.Summary
}

// truncateWords caps text at max words, preserving the original spacing only
// approximately (fields are re-joined with single spaces).
func truncateWords(text string, max int) string {
	words := strings.Fields(text)
	if len(words) <= max {
		return text
	}
	return strings.Join(words[:max], " ")
}
