package news

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/selivandex/newspulse/pkg/fetch"
	"github.com/selivandex/newspulse/pkg/logger"
	"github.com/selivandex/newspulse/pkg/models"
)

const moneycontrolTagURL = "https://www.moneycontrol.com/news/tags/%s.html"

// MoneycontrolSource scrapes company tag pages on Moneycontrol.
// Tag pages list headlines as li.clearfix entries with an h2 title and a link.
type MoneycontrolSource struct {
	enabled     bool
	maxArticles int
	client      *fetch.Client
	baseURL     string // overridable in tests
}

// NewMoneycontrolSource creates a Moneycontrol source adapter
func NewMoneycontrolSource(enabled bool, maxArticles int, client *fetch.Client) *MoneycontrolSource {
	return &MoneycontrolSource{
		enabled:     enabled,
		maxArticles: maxArticles,
		client:      client,
		baseURL:     moneycontrolTagURL,
	}
}

func (m *MoneycontrolSource) Name() string {
	return "moneycontrol"
}

func (m *MoneycontrolSource) Enabled() bool {
	return m.enabled
}

func (m *MoneycontrolSource) Fetch(ctx context.Context, company string) ([]models.RawArticle, error) {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(company), " ", "-"))
	pageURL := fmt.Sprintf(m.baseURL, slug)

	body, err := m.client.Get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("moneycontrol request failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse moneycontrol page: %w", err)
	}

	max := m.maxArticles
	if max <= 0 {
		max = maxArticlesDefault
	}

	articles := make([]models.RawArticle, 0, max)
	doc.Find("li.clearfix").EachWithBreak(func(i int, s *goquery.Selection) bool {
		title := strings.TrimSpace(s.Find("h2").Text())
		link, ok := s.Find("a[href]").Attr("href")
		if title == "" || !ok {
			return true
		}

		articles = append(articles, models.RawArticle{
			Title:  title,
			Link:   link,
			Source: m.Name(),
		})
		return len(articles) < max
	})

	logger.Debug("fetched moneycontrol headlines",
		zap.String("company", company),
		zap.String("url", pageURL),
		zap.Int("count", len(articles)),
	)

	return articles, nil
}
