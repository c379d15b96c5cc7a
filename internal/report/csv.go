package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/selivandex/newspulse/pkg/models"
)

// WriteArticlesCSV writes one row per classified article:
// Company, Headline, Summary, Sentiment, Source, Link
func WriteArticlesCSV(w io.Writer, reports []models.CompanyReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Company", "Headline", "Summary", "Sentiment", "Source", "Link"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, report := range reports {
		for _, article := range report.Articles {
			row := []string{
				report.Company,
				article.Title,
				article.Summary,
				article.Sentiment.Display(),
				article.Source,
				article.Link,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write article row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSummaryCSV writes one row per company:
// Company, Positive, Negative, Neutral, Verdict
func WriteSummaryCSV(w io.Writer, reports []models.CompanyReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Company", "Positive", "Negative", "Neutral", "Verdict"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, report := range reports {
		row := []string{
			report.Company,
			strconv.Itoa(report.Counts.Positive),
			strconv.Itoa(report.Counts.Negative),
			strconv.Itoa(report.Counts.Neutral),
			report.Verdict.Display(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
