package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/selivandex/newspulse/pkg/fetch"
	"github.com/selivandex/newspulse/pkg/logger"
	"github.com/selivandex/newspulse/pkg/models"
)

const yahooFinanceRSSURL = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"

// YahooFinanceSource fetches per-ticker headlines from the Yahoo Finance feed
type YahooFinanceSource struct {
	enabled     bool
	maxArticles int
	client      *fetch.Client
	parser      *gofeed.Parser
	baseURL     string // overridable in tests
}

// NewYahooFinanceSource creates a Yahoo Finance source adapter
func NewYahooFinanceSource(enabled bool, maxArticles int, client *fetch.Client) *YahooFinanceSource {
	return &YahooFinanceSource{
		enabled:     enabled,
		maxArticles: maxArticles,
		client:      client,
		parser:      gofeed.NewParser(),
		baseURL:     yahooFinanceRSSURL,
	}
}

func (y *YahooFinanceSource) Name() string {
	return "yahoo-finance"
}

func (y *YahooFinanceSource) Enabled() bool {
	return y.enabled
}

func (y *YahooFinanceSource) Fetch(ctx context.Context, company string) ([]models.RawArticle, error) {
	// The feed keys on ticker symbols; free-text names still return results
	// for most large companies.
	ticker := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(company), " ", ""))
	feedURL := fmt.Sprintf(y.baseURL, url.QueryEscape(ticker))

	body, err := y.client.Get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("yahoo finance request failed: %w", err)
	}

	feed, err := y.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse yahoo finance feed: %w", err)
	}

	articles := make([]models.RawArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" || item.Link == "" {
			continue
		}

		articles = append(articles, models.RawArticle{
			Title:   title,
			Summary: strings.TrimSpace(item.Description),
			Link:    item.Link,
			Source:  y.Name(),
		})
	}

	articles = capArticles(articles, y.maxArticles)

	logger.Debug("fetched yahoo finance headlines",
		zap.String("company", company),
		zap.String("ticker", ticker),
		zap.Int("count", len(articles)),
	)

	return articles, nil
}
