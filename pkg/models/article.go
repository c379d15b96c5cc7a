package models

import "time"

// NoSummary is the sentinel stored when a summary could not be derived.
// Downstream consumers can rely on Summary never being empty after enrichment.
const NoSummary = "No summary available"

// RawArticle represents a single headline as returned by a source adapter
type RawArticle struct {
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"` // empty means absent
	Link    string `json:"link"`
	Source  string `json:"source"`
}

// HasSummary reports whether the provider supplied a summary
func (a RawArticle) HasSummary() bool {
	return a.Summary != ""
}

// EnrichedArticle is a RawArticle whose summary is guaranteed to be set,
// either as provided, derived from the article body, or the NoSummary sentinel
type EnrichedArticle struct {
	RawArticle
}

// ClassifiedArticle carries the sentiment label assigned to an enriched article
type ClassifiedArticle struct {
	EnrichedArticle
	Sentiment Sentiment `json:"sentiment"`
}

// SourceOutcome describes how a single source attempt ended
type SourceOutcome string

const (
	OutcomeSuccess SourceOutcome = "success"
	OutcomeEmpty   SourceOutcome = "empty"
	OutcomeFailed  SourceOutcome = "failed"
)

// SourceResult captures one adapter's contribution to a query, used by the
// aggregator for fallback decisions and logging. Not exposed past the pipeline.
type SourceResult struct {
	Source   string
	Articles []RawArticle
	Outcome  SourceOutcome
	Err      error
}

// CompanyReport is the per-company output of a pipeline run
type CompanyReport struct {
	Company   string              `json:"company"`
	Articles  []ClassifiedArticle `json:"articles"`
	Counts    SentimentCounts     `json:"counts"`
	Verdict   Sentiment           `json:"verdict"`
	FetchedAt time.Time           `json:"fetched_at"`
}
