package source

import (
	"context"
	"fmt"
	"log/slog"

	"NewsRanker/internal/config"
	"NewsRanker/internal/domain"
	"NewsRanker/internal/ports"
)

// Request carries the per-feed parameters a fetch strategy needs.
type Request struct {
	FeedName    string
	URL         string
	Category    domain.Category
	Credibility float64
	Verified    bool
}

// Fetcher is a single fetch strategy (JSON API, RSS, etc.).
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, req Request) ([]domain.Article, error)
}

// Registry keeps a mapping from strategy names to their implementations.
type Registry struct {
	fetchers map[string]Fetcher
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{fetchers: map[string]Fetcher{}}
}

// Register adds or replaces a fetch strategy.
func (r *Registry) Register(fetcher Fetcher) {
	if r.fetchers == nil {
		r.fetchers = map[string]Fetcher{}
	}
	r.fetchers[fetcher.Name()] = fetcher
}

// Resolve returns a strategy by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Fetcher, error) {
	if fetcher, ok := r.fetchers[name]; ok {
		return fetcher, nil
	}
	return nil, fmt.Errorf("fetcher %s is not registered", name)
}

// MultiSource implements ArticleSource by fanning out over config-defined
// feeds and deduplicating the combined pool by article ID.
type MultiSource struct {
	registry *Registry
	feeds    []config.FeedConfig
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*MultiSource)(nil)

// NewMultiSource wires the fetcher registry with configured feeds.
func NewMultiSource(registry *Registry, feeds []config.FeedConfig, logger *slog.Logger) *MultiSource {
	return &MultiSource{registry: registry, feeds: feeds, logger: logger}
}

// FetchLatest pulls every configured feed in order and merges the results.
// The first occurrence of an ID wins, so feed order in config is meaningful.
func (s *MultiSource) FetchLatest(ctx context.Context) ([]domain.Article, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("fetcher registry is not configured")
	}

	s.debug("fetch latest", "feeds", len(s.feeds))

	var pool []domain.Article
	seen := map[string]struct{}{}
	for _, feed := range s.feeds {
		fetcher, err := s.registry.Resolve(feed.Kind)
		if err != nil {
			return nil, fmt.Errorf("feed %s: %w", feed.Name, err)
		}

		req := Request{
			FeedName:    feed.Name,
			URL:         feed.URL,
			Category:    domain.Category(feed.Category),
			Credibility: feed.Credibility,
			Verified:    feed.Verified,
		}

		articles, err := fetcher.Fetch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetch feed %s: %w", feed.Name, err)
		}

		for _, article := range articles {
			if _, ok := seen[article.ID]; ok {
				continue
			}
			seen[article.ID] = struct{}{}
			if article.Source.Name == "" {
				article.Source.Name = feed.Name
			}
			pool = append(pool, article)
		}
		s.debug("feed produced articles", "feed", feed.Name, "count", len(articles))
	}

	s.debug("multi source done", "total_articles", len(pool))
	return pool, nil
}

func (s *MultiSource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
