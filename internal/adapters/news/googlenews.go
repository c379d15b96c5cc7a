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

const googleNewsRSSURL = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// GoogleNewsSource fetches headlines from the Google News search feed
type GoogleNewsSource struct {
	enabled     bool
	maxArticles int
	client      *fetch.Client
	parser      *gofeed.Parser
	baseURL     string // overridable in tests
}

// NewGoogleNewsSource creates a Google News source adapter
func NewGoogleNewsSource(enabled bool, maxArticles int, client *fetch.Client) *GoogleNewsSource {
	return &GoogleNewsSource{
		enabled:     enabled,
		maxArticles: maxArticles,
		client:      client,
		parser:      gofeed.NewParser(),
		baseURL:     googleNewsRSSURL,
	}
}

func (g *GoogleNewsSource) Name() string {
	return "google-news"
}

func (g *GoogleNewsSource) Enabled() bool {
	return g.enabled
}

func (g *GoogleNewsSource) Fetch(ctx context.Context, company string) ([]models.RawArticle, error) {
	feedURL := fmt.Sprintf(g.baseURL, url.QueryEscape(company+" stock"))

	body, err := g.client.Get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("google news request failed: %w", err)
	}

	feed, err := g.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse google news feed: %w", err)
	}

	articles := make([]models.RawArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" || item.Link == "" {
			continue
		}

		// Google News item descriptions carry link markup rather than prose,
		// so the summary is left for the enrichment stage.
		articles = append(articles, models.RawArticle{
			Title:  title,
			Link:   item.Link,
			Source: g.Name(),
		})
	}

	articles = capArticles(articles, g.maxArticles)

	logger.Debug("fetched google news headlines",
		zap.String("company", company),
		zap.Int("count", len(articles)),
	)

	return articles, nil
}
