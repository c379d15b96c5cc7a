package sentiment

import "github.com/selivandex/newspulse/pkg/models"

// verdictThreshold is the share of articles a sentiment must exceed to carry
// the company verdict. A plurality over 40% is required rather than a simple
// majority, so mixed results settle on neutral.
const verdictThreshold = 0.4

// Verdict reduces per-article counts to a company-level conclusion. Pure
// function of the counts; positive is checked first, so an exact tie above
// the threshold resolves positive.
func Verdict(counts models.SentimentCounts) models.Sentiment {
	total := counts.Total()
	if total == 0 {
		return models.SentimentNeutral
	}

	if float64(counts.Positive)/float64(total) > verdictThreshold {
		return models.SentimentPositive
	}
	if float64(counts.Negative)/float64(total) > verdictThreshold {
		return models.SentimentNegative
	}
	return models.SentimentNeutral
}
