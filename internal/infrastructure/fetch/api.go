package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"NewsRanker/internal/domain"
	"NewsRanker/internal/source"
)

// APISource pulls articles from a JSON-over-HTTP news-fetch service.
type APISource struct {
	client *http.Client
}

var _ source.Fetcher = (*APISource)(nil)

// NewAPISource wires an HTTP client with a default timeout.
func NewAPISource(client *http.Client) *APISource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &APISource{client: client}
}

// Name identifies the strategy inside the registry.
func (s *APISource) Name() string {
	return "api"
}

// articleDTO mirrors the upstream wire format. Missing fields decode to zero
// values: malformed records degrade, they are never rejected.
type articleDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Summary     string   `json:"summary"`
	Author      string   `json:"author"`
	SourceName  string   `json:"source"`
	Credibility float64  `json:"credibility"`
	Verified    bool     `json:"verified"`
	PublishedAt string   `json:"published_at"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Breaking    bool     `json:"breaking"`
	Tags        []string `json:"tags"`
	LikeCount   int      `json:"like_count"`
	ShareCount  int      `json:"share_count"`
}

// Fetch requests the feed URL and maps the payload to domain articles.
func (s *APISource) Fetch(ctx context.Context, req source.Request) ([]domain.Article, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "NewsRanker/1.0")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned %s", req.FeedName, resp.Status)
	}

	var payload []articleDTO
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode feed %s: %w", req.FeedName, err)
	}

	articles := make([]domain.Article, 0, len(payload))
	for _, dto := range payload {
		articles = append(articles, dto.toDomain(req))
	}
	return articles, nil
}

func (d articleDTO) toDomain(req source.Request) domain.Article {
	var publishedAt time.Time
	if parsed, err := time.Parse(time.RFC3339, d.PublishedAt); err == nil {
		publishedAt = parsed
	}

	name := d.SourceName
	if name == "" {
		name = req.FeedName
	}

	credibility := d.Credibility
	if credibility == 0 {
		credibility = req.Credibility
	}

	category := domain.Category(d.Category)
	if category == "" {
		category = req.Category
	}

	return domain.Article{
		ID:          d.ID,
		Title:       d.Title,
		Body:        d.Body,
		Summary:     d.Summary,
		Author:      d.Author,
		Source:      domain.Source{Name: name, Credibility: credibility, Verified: d.Verified || req.Verified},
		PublishedAt: publishedAt,
		Category:    category,
		ImageURL:    d.ImageURL,
		Breaking:    d.Breaking,
		Tags:        d.Tags,
		LikeCount:   d.LikeCount,
		ShareCount:  d.ShareCount,
	}
}
