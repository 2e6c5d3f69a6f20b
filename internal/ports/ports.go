package ports

import (
	"context"
	"time"

	"NewsRanker/internal/domain"
)

// ArticleSource is the news-fetch collaborator: it supplies the candidate
// pool, already deduplicated by identifier.
type ArticleSource interface {
	FetchLatest(ctx context.Context) ([]domain.Article, error)
}

// InteractionRepository exposes persisted user interactions (likes) and
// records assembled homepage snapshots for audit.
type InteractionRepository interface {
	LikeCounts(ctx context.Context, ids []string) (map[string]int, error)
	SaveSnapshot(ctx context.Context, homepage domain.Homepage) error
}

// HomepageCache stores assembled homepages between refreshes.
type HomepageCache interface {
	Get(ctx context.Context, key string) (*domain.Homepage, bool, error)
	Set(ctx context.Context, key string, homepage domain.Homepage, ttl time.Duration) error
}

// RefreshDriver controls when background homepage refreshes execute.
type RefreshDriver interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
