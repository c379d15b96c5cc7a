package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/selivandex/newspulse/pkg/models"
)

const maxHeadlineWidth = 70

// RenderTables writes the per-article table and the per-company summary in a
// terminal-friendly layout.
func RenderTables(w io.Writer, reports []models.CompanyReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "COMPANY\tHEADLINE\tSENTIMENT\tSOURCE")
	for _, report := range reports {
		if len(report.Articles) == 0 {
			fmt.Fprintf(tw, "%s\t(no articles found)\t-\t-\n", report.Company)
			continue
		}
		for _, article := range report.Articles {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				report.Company,
				clip(article.Title, maxHeadlineWidth),
				article.Sentiment.Display(),
				article.Source,
			)
		}
	}
	tw.Flush()

	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPANY\tPOSITIVE\tNEGATIVE\tNEUTRAL\tVERDICT")
	for _, report := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
			report.Company,
			report.Counts.Positive,
			report.Counts.Negative,
			report.Counts.Neutral,
			report.Verdict.Display(),
		)
	}
	tw.Flush()
}

// Digest formats a compact plain-text summary of a batch, used by the
// telegram notifier.
func Digest(reports []models.CompanyReport) string {
	var b strings.Builder
	b.WriteString("News sentiment digest\n")
	for _, report := range reports {
		fmt.Fprintf(&b, "\n%s: %s (+%d / -%d / =%d)\n",
			report.Company,
			report.Verdict.Display(),
			report.Counts.Positive,
			report.Counts.Negative,
			report.Counts.Neutral,
		)
		for _, article := range report.Articles {
			fmt.Fprintf(&b, "  [%s] %s\n", article.Sentiment.Display(), clip(article.Title, maxHeadlineWidth))
		}
	}
	return b.String()
}

func clip(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
