package models

// Sentiment is a three-way headline sentiment label
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Display returns the capitalized form used in tables and exports
func (s Sentiment) Display() string {
	switch s {
	case SentimentPositive:
		return "Positive"
	case SentimentNegative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// SentimentCounts aggregates per-article labels for one company
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Total returns the number of classified articles behind the counts
func (c SentimentCounts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}

// Add increments the counter matching the given label
func (c *SentimentCounts) Add(s Sentiment) {
	switch s {
	case SentimentPositive:
		c.Positive++
	case SentimentNegative:
		c.Negative++
	default:
		c.Neutral++
	}
}
