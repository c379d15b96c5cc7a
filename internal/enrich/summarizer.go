package enrich

import "strings"

// Summarizer derives a short summary from extracted article body text.
// Implementations must be deterministic and respect the word bounds they are
// configured with; the exact wording is not part of the pipeline contract.
type Summarizer interface {
	Summarize(body string) string
}

// LeadSummarizer takes leading sentences until the minimum word count is
// reached, hard-capped at the maximum. News articles front-load the story, so
// the lead is a reasonable extractive summary.
type LeadSummarizer struct {
	minWords int
	maxWords int
}

// NewLeadSummarizer creates a summarizer bounded to [minWords, maxWords]
func NewLeadSummarizer(minWords, maxWords int) *LeadSummarizer {
	if minWords <= 0 {
		minWords = 30
	}
	if maxWords < minWords {
		maxWords = minWords
	}
	return &LeadSummarizer{minWords: minWords, maxWords: maxWords}
}

func (s *LeadSummarizer) Summarize(body string) string {
	words := strings.Fields(body)
	if len(words) == 0 {
		return ""
	}

	if len(words) > s.maxWords {
		words = words[:s.maxWords]
	}

	summary := strings.Join(words, " ")

	// Prefer ending on a sentence boundary once past the minimum length.
	if idx := lastSentenceEnd(summary, s.minWords); idx > 0 {
		summary = summary[:idx+1]
	} else if len(words) == s.maxWords {
		summary += "..."
	}

	return summary
}

// lastSentenceEnd returns the index of the last sentence terminator that
// leaves at least minWords words before it, or -1.
func lastSentenceEnd(text string, minWords int) int {
	for i := len(text) - 1; i >= 0; i-- {
		switch text[i] {
		case '.', '!', '?':
			if len(strings.Fields(text[:i+1])) >= minWords {
				return i
			}
		}
	}
	return -1
}

// NoopSummarizer always declines, leaving the sentinel in place. Used when
// enrichment is configured off but the pipeline shape stays the same.
type NoopSummarizer struct{}

func (NoopSummarizer) Summarize(string) string { return "" }
