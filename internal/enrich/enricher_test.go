package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/selivandex/newspulse/pkg/fetch"
	"github.com/selivandex/newspulse/pkg/models"
)

func testFetchClient() *fetch.Client {
	return fetch.NewClient(fetch.Config{
		MaxAttempts:    1,
		BaseBackoff:    time.Millisecond,
		AttemptTimeout: time.Second,
	})
}

type fixedSummarizer struct{ out string }

func (f fixedSummarizer) Summarize(string) string { return f.out }

func TestEnrich_PassThroughWhenSummaryPresent(t *testing.T) {
	enricher := New(testFetchClient(), fixedSummarizer{out: "should not be used"}, 100)

	article := models.RawArticle{
		Title:   "Profits surge",
		Summary: "Original summary.",
		Link:    "http://unreachable.invalid/article",
		Source:  "test",
	}

	got := enricher.Enrich(context.Background(), article)
	if got.Summary != "Original summary." {
		t.Fatalf("existing summary must pass through unchanged, got %q", got.Summary)
	}

	// Idempotence: enriching the already-enriched article changes nothing.
	again := enricher.Enrich(context.Background(), got.RawArticle)
	if again != got {
		t.Errorf("second enrichment must be a no-op: %+v vs %+v", again, got)
	}
}

func TestEnrich_DerivesSummaryFromBody(t *testing.T) {
	body := strings.Repeat("The company reported strong results this quarter. ", 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + body + "</p></body></html>"))
	}))
	defer server.Close()

	enricher := New(testFetchClient(), fixedSummarizer{out: "ok-summary"}, 100)

	got := enricher.Enrich(context.Background(), models.RawArticle{
		Title:  "Profits surge",
		Link:   server.URL,
		Source: "test",
	})
	if got.Summary != "ok-summary" {
		t.Fatalf("expected derived summary, got %q", got.Summary)
	}
}

func TestEnrich_ShortBodyYieldsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Too short.</p></body></html>"))
	}))
	defer server.Close()

	enricher := New(testFetchClient(), fixedSummarizer{out: "unused"}, 100)

	got := enricher.Enrich(context.Background(), models.RawArticle{
		Title:  "Brief note",
		Link:   server.URL,
		Source: "test",
	})
	if got.Summary != models.NoSummary {
		t.Fatalf("expected sentinel for short body, got %q", got.Summary)
	}
}

func TestEnrich_FetchFailureYieldsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	enricher := New(testFetchClient(), fixedSummarizer{out: "unused"}, 100)

	got := enricher.Enrich(context.Background(), models.RawArticle{
		Title:  "Gone",
		Link:   server.URL,
		Source: "test",
	})
	if got.Summary != models.NoSummary {
		t.Fatalf("expected sentinel on fetch failure, got %q", got.Summary)
	}
}

func TestLeadSummarizer_Deterministic(t *testing.T) {
	s := NewLeadSummarizer(5, 20)
	body := "First sentence of the story sets the scene. Second sentence adds detail. Third sentence rambles on about unrelated things for quite a while longer than needed."

	first := s.Summarize(body)
	second := s.Summarize(body)
	if first != second {
		t.Fatalf("summarizer must be deterministic: %q vs %q", first, second)
	}
	if words := len(strings.Fields(first)); words > 20 {
		t.Errorf("summary exceeds word bound: %d words", words)
	}
	if !strings.HasPrefix(first, "First sentence") {
		t.Errorf("lead summary should start at the beginning: %q", first)
	}
}

func TestLeadSummarizer_EmptyBody(t *testing.T) {
	s := NewLeadSummarizer(30, 100)
	if got := s.Summarize("   "); got != "" {
		t.Errorf("expected empty summary for blank body, got %q", got)
	}
}

func TestNoopSummarizer(t *testing.T) {
	if got := (NoopSummarizer{}).Summarize("anything at all"); got != "" {
		t.Errorf("noop summarizer must return empty, got %q", got)
	}
}
