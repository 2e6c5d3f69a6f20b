package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"NewsRanker/internal/classify"
	"NewsRanker/internal/domain"
	"NewsRanker/internal/ports"
	"NewsRanker/internal/rank"
)

const (
	cacheKey        = "homepage:current"
	classifyWorkers = 8
)

// AssemblerDeps wires all collaborators into the homepage-assembly use case.
// Repository and Cache are optional; the assembler degrades without them.
type AssemblerDeps struct {
	Source     ports.ArticleSource
	Repository ports.InteractionRepository
	Cache      ports.HomepageCache
	Classifier *classify.Classifier
	Ranker     *rank.Engine
	Hero       *rank.HeroValidator
	Logger     *slog.Logger
	Clock      func() time.Time
	CacheTTL   time.Duration
}

// Assembler builds complete homepage snapshots from the article pool.
type Assembler struct {
	source     ports.ArticleSource
	repository ports.InteractionRepository
	cache      ports.HomepageCache
	classifier *classify.Classifier
	ranker     *rank.Engine
	hero       *rank.HeroValidator
	logger     *slog.Logger
	clock      func() time.Time
	cacheTTL   time.Duration
}

// NewAssembler constructs the orchestration component.
func NewAssembler(deps AssemblerDeps) *Assembler {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Assembler{
		source:     deps.Source,
		repository: deps.Repository,
		cache:      deps.Cache,
		classifier: deps.Classifier,
		ranker:     deps.Ranker,
		hero:       deps.Hero,
		logger:     deps.Logger,
		clock:      clock,
		cacheTTL:   deps.CacheTTL,
	}
}

// Assemble returns the current homepage, from cache when fresh, otherwise
// rebuilt from the live pool.
func (a *Assembler) Assemble(ctx context.Context) (*domain.Homepage, error) {
	if a.cache != nil {
		cached, hit, err := a.cache.Get(ctx, cacheKey)
		if err != nil {
			a.warn("cache read failed", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	return a.Rebuild(ctx)
}

// Rebuild assembles a fresh homepage, persists the snapshot, and refills the
// cache. An empty pool yields an empty homepage, not an error.
func (a *Assembler) Rebuild(ctx context.Context) (*domain.Homepage, error) {
	now := a.clock()

	pool, err := a.fetchPool(ctx)
	if err != nil {
		return nil, err
	}

	classifications, err := a.classifyPool(ctx, pool)
	if err != nil {
		return nil, err
	}

	homepage := &domain.Homepage{
		ID:              uuid.NewString(),
		GeneratedAt:     now,
		Classifications: classifications,
	}

	for _, placement := range domain.Placements() {
		selected, err := a.ranker.SelectForPlacement(pool, placement, 0, now)
		if err != nil {
			return nil, fmt.Errorf("select %s: %w", placement, err)
		}

		switch placement {
		case domain.PlacementHero:
			if len(selected) > 0 {
				homepage.Hero = &domain.HeroSelection{
					Article:    selected[0],
					Validation: a.hero.Validate(selected[0], now),
				}
			}
		case domain.PlacementBreaking:
			homepage.Breaking = selected
		case domain.PlacementTrending:
			homepage.Trending = selected
		case domain.PlacementCategory:
			homepage.Category = selected
		case domain.PlacementFeed:
			homepage.Feed = selected
		}
	}

	if a.repository != nil {
		if err := a.repository.SaveSnapshot(ctx, *homepage); err != nil {
			a.warn("snapshot persist failed", "homepage", homepage.ID, "error", err)
		}
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, cacheKey, *homepage, a.cacheTTL); err != nil {
			a.warn("cache write failed", "error", err)
		}
	}

	return homepage, nil
}

// Placement selects articles for a single named placement against the live
// pool, bypassing the homepage cache.
func (a *Assembler) Placement(ctx context.Context, placement domain.Placement, limit int) ([]domain.Article, error) {
	pool, err := a.fetchPool(ctx)
	if err != nil {
		return nil, err
	}
	return a.ranker.SelectForPlacement(pool, placement, limit, a.clock())
}

// Classify exposes single-article classification to the HTTP surface.
func (a *Assembler) Classify(article domain.Article) domain.ClassificationResult {
	return a.classifier.Classify(article)
}

// fetchPool pulls the candidate pool and overlays persisted like counts.
func (a *Assembler) fetchPool(ctx context.Context) ([]domain.Article, error) {
	if a.source == nil {
		return nil, nil
	}

	pool, err := a.source.FetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pool: %w", err)
	}

	if a.repository == nil || len(pool) == 0 {
		return pool, nil
	}

	ids := make([]string, len(pool))
	for i, article := range pool {
		ids[i] = article.ID
	}

	counts, err := a.repository.LikeCounts(ctx, ids)
	if err != nil {
		a.warn("like counts unavailable", "error", err)
		return pool, nil
	}

	for i := range pool {
		if likes, ok := counts[pool[i].ID]; ok && likes > pool[i].LikeCount {
			pool[i].LikeCount = likes
		}
	}

	return pool, nil
}

// classifyPool classifies every article concurrently. Articles are
// independent, so worker order does not matter; results land by index.
func (a *Assembler) classifyPool(ctx context.Context, pool []domain.Article) (map[string]domain.ClassificationResult, error) {
	results := make([]domain.ClassificationResult, len(pool))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(classifyWorkers)
	for i := range pool {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.classifier.Classify(pool[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify pool: %w", err)
	}

	byID := make(map[string]domain.ClassificationResult, len(pool))
	for i, article := range pool {
		byID[article.ID] = results[i]
	}
	return byID, nil
}

func (a *Assembler) warn(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}
