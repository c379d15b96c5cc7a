package sentiment

import (
	"context"
	"strings"

	"github.com/selivandex/newspulse/pkg/models"
)

// Score thresholds for the three-way mapping. The dead zone around zero keeps
// weakly-worded headlines neutral instead of over-classifying them.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// LexiconClassifier performs keyword-based polarity scoring. Fast, fully
// deterministic, no network. Word weights are tuned for company and market
// news.
type LexiconClassifier struct {
	positiveWords map[string]float64
	negativeWords map[string]float64
}

// NewLexiconClassifier creates a lexicon classifier with the built-in finance
// word lists
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{
		positiveWords: buildPositiveWords(),
		negativeWords: buildNegativeWords(),
	}
}

// Classify maps polarity score to a label: >= 0.05 positive, <= -0.05
// negative, else neutral.
func (l *LexiconClassifier) Classify(_ context.Context, text string) models.Sentiment {
	score := l.Score(text)
	switch {
	case score >= positiveThreshold:
		return models.SentimentPositive
	case score <= negativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Score computes a normalized polarity in [-1, 1]
func (l *LexiconClassifier) Score(text string) float64 {
	text = truncateWords(text, maxInputWords)

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0.0
	}

	var score float64
	matchCount := 0

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:'\"()")

		if weight, ok := l.positiveWords[word]; ok {
			score += weight
			matchCount++
		}

		if weight, ok := l.negativeWords[word]; ok {
			score -= weight
			matchCount++
		}
	}

	if matchCount == 0 {
		return 0.0
	}

	normalized := score / float64(len(words))

	if normalized > 1.0 {
		normalized = 1.0
	} else if normalized < -1.0 {
		normalized = -1.0
	}

	return normalized
}

// buildPositiveWords returns positive keywords for company news
func buildPositiveWords() map[string]float64 {
	return map[string]float64{
		// Results and growth
		"surge":      0.8,
		"soar":       0.8,
		"soars":      0.8,
		"surges":     0.8,
		"rally":      0.9,
		"record":     0.6,
		"beat":       0.7,
		"beats":      0.7,
		"profit":     0.6,
		"profits":    0.6,
		"gain":       0.6,
		"gains":      0.6,
		"growth":     0.5,
		"grow":       0.5,
		"grows":      0.5,
		"rise":       0.5,
		"rises":      0.5,
		"jump":       0.6,
		"jumps":      0.6,
		"up":         0.4,
		"strong":     0.5,
		"robust":     0.5,
		"positive":   0.5,
		"optimistic": 0.5,
		"bullish":    0.9,
		"outperform": 0.7,
		"upbeat":     0.6,

		// Corporate events
		"acquisition": 0.4,
		"partnership": 0.5,
		"expansion":   0.5,
		"expands":     0.5,
		"launch":      0.4,
		"launches":    0.4,
		"dividend":    0.5,
		"buyback":     0.6,
		"upgrade":     0.6,
		"upgraded":    0.6,
		"approval":    0.5,
		"approved":    0.5,
		"wins":        0.7,
		"win":         0.6,
		"milestone":   0.5,
		"innovation":  0.4,
	}
}

// buildNegativeWords returns negative keywords for company news
func buildNegativeWords() map[string]float64 {
	return map[string]float64{
		// Results and declines
		"crash":     1.0,
		"plunge":    0.8,
		"plunges":   0.8,
		"slump":     0.7,
		"slumps":    0.7,
		"fall":      0.6,
		"falls":     0.6,
		"drop":      0.6,
		"drops":     0.6,
		"decline":   0.6,
		"declines":  0.6,
		"loss":      0.7,
		"losses":    0.7,
		"miss":      0.6,
		"misses":    0.6,
		"down":      0.4,
		"weak":      0.5,
		"bearish":   0.9,
		"selloff":   0.7,
		"tumble":    0.7,
		"tumbles":   0.7,
		"negative":  0.5,
		"downturn":  0.6,
		"cut":       0.4,
		"cuts":      0.4,
		"layoff":    0.7,
		"layoffs":   0.7,
		"downgrade": 0.6,

		// Corporate trouble
		"fraud":         1.0,
		"scandal":       0.9,
		"lawsuit":       0.7,
		"probe":         0.6,
		"investigation": 0.6,
		"fine":          0.5,
		"fined":         0.6,
		"penalty":       0.6,
		"recall":        0.6,
		"default":       0.8,
		"bankruptcy":    1.0,
		"insolvency":    0.9,
		"debt":          0.4,
		"warning":       0.5,
		"ban":           0.7,
		"crackdown":     0.7,
		"breach":        0.7,
		"resign":        0.5,
		"resigns":       0.5,
	}
}
