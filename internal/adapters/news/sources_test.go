package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/selivandex/newspulse/pkg/fetch"
)

func testFetchClient() *fetch.Client {
	return fetch.NewClient(fetch.Config{
		MaxAttempts:    1,
		BaseBackoff:    time.Millisecond,
		AttemptTimeout: time.Second,
	})
}

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>test feed</title>
<item><title>Acme profits surge on record sales</title><link>http://example.com/1</link><description>Quarterly results beat estimates.</description></item>
<item><title>Acme expands into new markets</title><link>http://example.com/2</link><description></description></item>
<item><title>Acme shares steady</title><link>http://example.com/3</link><description>Analysts unmoved.</description></item>
<item><title>Acme CEO interview</title><link>http://example.com/4</link></item>
<item><title>Acme supplier update</title><link>http://example.com/5</link></item>
<item><title>Sixth headline beyond the cap</title><link>http://example.com/6</link></item>
</channel>
</rss>`

const sampleMoneycontrolHTML = `<html><body><ul>
<li class="clearfix"><h2>Acme Bank posts record quarter</h2><a href="https://example.com/a1">read</a></li>
<li class="clearfix"><h2>Acme Bank faces probe</h2><a href="https://example.com/a2">read</a></li>
<li class="clearfix"><h2></h2><a href="https://example.com/skip">no title</a></li>
<li class="clearfix"><h2>Acme Bank launches app</h2><a href="https://example.com/a3">read</a></li>
</ul></body></html>`

func TestGoogleNewsSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	source := NewGoogleNewsSource(true, 5, testFetchClient())
	source.baseURL = server.URL + "?q=%s"

	articles, err := source.Fetch(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(articles) != 5 {
		t.Fatalf("expected cap of 5 articles, got %d", len(articles))
	}
	if articles[0].Title != "Acme profits surge on record sales" {
		t.Errorf("upstream order not preserved: %q", articles[0].Title)
	}
	for _, a := range articles {
		if a.Source != "google-news" {
			t.Errorf("wrong source id: %q", a.Source)
		}
		if a.HasSummary() {
			t.Errorf("google news articles should leave summaries for enrichment, got %q", a.Summary)
		}
	}
}

func TestYahooFinanceSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	source := NewYahooFinanceSource(true, 5, testFetchClient())
	source.baseURL = server.URL + "?s=%s"

	articles, err := source.Fetch(context.Background(), "acme corp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(articles) != 5 {
		t.Fatalf("expected cap of 5 articles, got %d", len(articles))
	}
	if articles[0].Summary != "Quarterly results beat estimates." {
		t.Errorf("expected feed description as summary, got %q", articles[0].Summary)
	}
	if articles[1].HasSummary() {
		t.Errorf("empty description should stay absent, got %q", articles[1].Summary)
	}
}

func TestMoneycontrolSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleMoneycontrolHTML))
	}))
	defer server.Close()

	source := NewMoneycontrolSource(true, 5, testFetchClient())
	source.baseURL = server.URL + "/news/tags/%s.html"

	articles, err := source.Fetch(context.Background(), "Acme Bank")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(articles) != 3 {
		t.Fatalf("expected 3 articles (one entry lacks a title), got %d", len(articles))
	}
	if articles[0].Title != "Acme Bank posts record quarter" {
		t.Errorf("unexpected first title: %q", articles[0].Title)
	}
	if articles[0].Link != "https://example.com/a1" {
		t.Errorf("unexpected link: %q", articles[0].Link)
	}
}

func TestMoneycontrolSource_BrokenSourceReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	source := NewMoneycontrolSource(true, 5, testFetchClient())
	source.baseURL = server.URL + "/news/tags/%s.html"

	if _, err := source.Fetch(context.Background(), "Acme"); err == nil {
		t.Fatal("expected error for blocked source")
	}
}
