package sentiment

import (
	"testing"

	"github.com/selivandex/newspulse/pkg/models"
)

func TestVerdict(t *testing.T) {
	tests := []struct {
		name     string
		counts   models.SentimentCounts
		expected models.Sentiment
	}{
		{
			name:     "no articles",
			counts:   models.SentimentCounts{},
			expected: models.SentimentNeutral,
		},
		{
			name:     "clear positive majority",
			counts:   models.SentimentCounts{Positive: 2, Negative: 1},
			expected: models.SentimentPositive,
		},
		{
			name:     "clear negative majority",
			counts:   models.SentimentCounts{Positive: 1, Negative: 3, Neutral: 1},
			expected: models.SentimentNegative,
		},
		{
			name:     "plurality below threshold stays neutral",
			counts:   models.SentimentCounts{Positive: 2, Negative: 1, Neutral: 2},
			expected: models.SentimentNeutral,
		},
		{
			name:     "exactly 40 percent is not enough",
			counts:   models.SentimentCounts{Positive: 2, Negative: 0, Neutral: 3},
			expected: models.SentimentNeutral,
		},
		{
			name:     "tie above threshold resolves positive",
			counts:   models.SentimentCounts{Positive: 2, Negative: 2},
			expected: models.SentimentPositive,
		},
		{
			name:     "all neutral",
			counts:   models.SentimentCounts{Neutral: 5},
			expected: models.SentimentNeutral,
		},
		{
			name:     "single positive article",
			counts:   models.SentimentCounts{Positive: 1},
			expected: models.SentimentPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verdict(tt.counts); got != tt.expected {
				t.Errorf("Verdict(%+v) = %s, expected %s", tt.counts, got, tt.expected)
			}
		})
	}
}

func TestVerdict_PureFunctionOfCounts(t *testing.T) {
	counts := models.SentimentCounts{Positive: 3, Negative: 2, Neutral: 1}
	first := Verdict(counts)
	for i := 0; i < 10; i++ {
		if got := Verdict(counts); got != first {
			t.Fatalf("verdict changed between calls: %s vs %s", got, first)
		}
	}
}
