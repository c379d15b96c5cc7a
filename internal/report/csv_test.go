package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/selivandex/newspulse/pkg/models"
)

func sampleReports() []models.CompanyReport {
	return []models.CompanyReport{
		{
			Company: "Acme",
			Articles: []models.ClassifiedArticle{
				{
					EnrichedArticle: models.EnrichedArticle{RawArticle: models.RawArticle{
						Title:   "Profits surge",
						Summary: "ok-summary",
						Link:    "http://x/1",
						Source:  "google-news",
					}},
					Sentiment: models.SentimentPositive,
				},
				{
					EnrichedArticle: models.EnrichedArticle{RawArticle: models.RawArticle{
						Title:   "Probe, with \"quotes\"",
						Summary: models.NoSummary,
						Link:    "http://x/2",
						Source:  "moneycontrol",
					}},
					Sentiment: models.SentimentNegative,
				},
			},
			Counts:    models.SentimentCounts{Positive: 1, Negative: 1},
			Verdict:   models.SentimentPositive,
			FetchedAt: time.Now(),
		},
		{
			Company: "Ghost Corp",
			Verdict: models.SentimentNeutral,
		},
	}
}

func TestWriteArticlesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArticlesCSV(&buf, sampleReports()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(rows) != 3 { // header + 2 articles
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "Headline" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Acme" || rows[1][3] != "Positive" {
		t.Errorf("unexpected article row: %v", rows[1])
	}
	if rows[2][1] != "Probe, with \"quotes\"" {
		t.Errorf("quoting not preserved through CSV round trip: %q", rows[2][1])
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummaryCSV(&buf, sampleReports()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(rows) != 3 { // header + 2 companies
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][0] != "Acme" || rows[1][1] != "1" || rows[1][4] != "Positive" {
		t.Errorf("unexpected summary row: %v", rows[1])
	}
	if rows[2][0] != "Ghost Corp" || rows[2][4] != "Neutral" {
		t.Errorf("company without articles must still get a row: %v", rows[2])
	}
}

func TestRenderTables(t *testing.T) {
	var buf bytes.Buffer
	RenderTables(&buf, sampleReports())

	out := buf.String()
	for _, want := range []string{"COMPANY", "Profits surge", "(no articles found)", "VERDICT", "Ghost Corp"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestDigest(t *testing.T) {
	digest := Digest(sampleReports())
	for _, want := range []string{"Acme: Positive", "(+1 / -1 / =0)", "[Negative]"} {
		if !strings.Contains(digest, want) {
			t.Errorf("digest missing %q:\n%s", want, digest)
		}
	}
}
