package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"NewsRanker/internal/domain"
	"NewsRanker/internal/source"
)

// RSSSource reads articles from RSS/Atom feeds. Item bodies arrive as HTML
// fragments and are flattened to plain text before entering the engine.
type RSSSource struct {
	parser *gofeed.Parser
}

var _ source.Fetcher = (*RSSSource)(nil)

// NewRSSSource builds the strategy; a nil parser gets a default one.
func NewRSSSource(parser *gofeed.Parser) *RSSSource {
	if parser == nil {
		parser = gofeed.NewParser()
		parser.UserAgent = "NewsRanker/1.0"
	}
	return &RSSSource{parser: parser}
}

// Name identifies the strategy inside the registry.
func (s *RSSSource) Name() string {
	return "rss"
}

// Fetch parses the feed and maps items to domain articles. Items with no
// usable fields still map: absent text degrades to empty strings.
func (s *RSSSource) Fetch(ctx context.Context, req source.Request) ([]domain.Article, error) {
	feed, err := s.parser.ParseURLWithContext(req.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", req.FeedName, err)
	}

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, itemToArticle(item, req))
	}
	return articles, nil
}

func itemToArticle(item *gofeed.Item, req source.Request) domain.Article {
	id := item.GUID
	if id == "" {
		id = item.Link
	}

	var publishedAt time.Time
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		publishedAt = *item.UpdatedParsed
	}

	body := htmlToText(item.Content)
	if body == "" {
		body = htmlToText(item.Description)
	}

	author := ""
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		author = item.Authors[0].Name
	}

	imageURL := ""
	if item.Image != nil {
		imageURL = item.Image.URL
	}
	for _, enclosure := range item.Enclosures {
		if enclosure != nil && strings.HasPrefix(enclosure.Type, "image/") {
			imageURL = enclosure.URL
			break
		}
	}

	return domain.Article{
		ID:          id,
		Title:       item.Title,
		Body:        body,
		Summary:     htmlToText(item.Description),
		Author:      author,
		Source:      domain.Source{Name: req.FeedName, Credibility: req.Credibility, Verified: req.Verified},
		PublishedAt: publishedAt,
		Category:    req.Category,
		ImageURL:    imageURL,
		Tags:        item.Categories,
	}
}

// htmlToText strips markup from an HTML fragment. On parse failure the raw
// fragment is returned so no text is ever lost.
func htmlToText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}
