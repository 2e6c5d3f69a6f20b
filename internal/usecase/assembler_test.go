package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"NewsRanker/internal/classify"
	"NewsRanker/internal/domain"
	"NewsRanker/internal/lexicon"
	"NewsRanker/internal/rank"
)

type stubSource struct {
	pool  []domain.Article
	err   error
	calls int
}

func (s *stubSource) FetchLatest(context.Context) ([]domain.Article, error) {
	s.calls++
	return s.pool, s.err
}

type stubRepository struct {
	likes     map[string]int
	likesErr  error
	snapshots []domain.Homepage
}

func (r *stubRepository) LikeCounts(context.Context, []string) (map[string]int, error) {
	return r.likes, r.likesErr
}

func (r *stubRepository) SaveSnapshot(_ context.Context, homepage domain.Homepage) error {
	r.snapshots = append(r.snapshots, homepage)
	return nil
}

type stubCache struct {
	stored *domain.Homepage
	setTTL time.Duration
	sets   int
}

func (c *stubCache) Get(context.Context, string) (*domain.Homepage, bool, error) {
	if c.stored == nil {
		return nil, false, nil
	}
	return c.stored, true, nil
}

func (c *stubCache) Set(_ context.Context, _ string, homepage domain.Homepage, ttl time.Duration) error {
	c.stored = &homepage
	c.setTTL = ttl
	c.sets++
	return nil
}

func testClock() (func() time.Time, time.Time) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }, now
}

func testPool(now time.Time) []domain.Article {
	return []domain.Article{
		{
			ID:          "a1",
			Title:       "Historic Trade Agreement Signed at Global Summit",
			Body:        strings.Repeat("word ", 1000),
			Source:      domain.Source{Name: "Wire", Credibility: 0.9, Verified: true},
			PublishedAt: now.Add(-2 * time.Hour),
			Category:    domain.CategoryPolitics,
			ImageURL:    "https://img.example.com/a1.jpg?w=1200&q=80",
			LikeCount:   40,
			ShareCount:  10,
		},
		{
			ID:          "a2",
			Title:       "Quiet local story",
			Body:        strings.Repeat("word ", 400),
			Source:      domain.Source{Name: "Blog", Credibility: 0.6},
			PublishedAt: now.Add(-6 * time.Hour),
			Category:    domain.CategoryLocal,
			LikeCount:   30,
		},
	}
}

func testAssembler(deps AssemblerDeps) *Assembler {
	lex := lexicon.Default()
	deps.Classifier = classify.New(lex)
	deps.Ranker = rank.NewEngine()
	deps.Hero = rank.NewHeroValidator(lex)
	return NewAssembler(deps)
}

func TestRebuildAssemblesHomepage(t *testing.T) {
	t.Parallel()

	clock, now := testClock()
	src := &stubSource{pool: testPool(now)}
	repo := &stubRepository{}
	cache := &stubCache{}
	asm := testAssembler(AssemblerDeps{
		Source:     src,
		Repository: repo,
		Cache:      cache,
		Clock:      clock,
		CacheTTL:   5 * time.Minute,
	})

	homepage, err := asm.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	if homepage.ID == "" {
		t.Fatal("homepage must get an identifier")
	}
	if !homepage.GeneratedAt.Equal(now) {
		t.Fatalf("generated at must come from the clock, got %v", homepage.GeneratedAt)
	}
	if homepage.Hero == nil || homepage.Hero.Article.ID != "a1" {
		t.Fatalf("expected a1 as hero, got %+v", homepage.Hero)
	}
	if !homepage.Hero.Validation.Valid {
		t.Fatalf("hero candidate should validate: %+v", homepage.Hero.Validation)
	}
	if len(homepage.Feed) != 2 {
		t.Fatalf("expected both articles in the feed, got %d", len(homepage.Feed))
	}
	if len(homepage.Classifications) != 2 {
		t.Fatalf("expected classifications for every article, got %d", len(homepage.Classifications))
	}

	if len(repo.snapshots) != 1 || repo.snapshots[0].ID != homepage.ID {
		t.Fatalf("snapshot not persisted: %+v", repo.snapshots)
	}
	if cache.sets != 1 || cache.setTTL != 5*time.Minute {
		t.Fatalf("cache not refilled, sets=%d ttl=%v", cache.sets, cache.setTTL)
	}
}

func TestAssembleReturnsCachedHomepage(t *testing.T) {
	t.Parallel()

	clock, now := testClock()
	src := &stubSource{pool: testPool(now)}
	cache := &stubCache{stored: &domain.Homepage{ID: "cached"}}
	asm := testAssembler(AssemblerDeps{Source: src, Cache: cache, Clock: clock})

	homepage, err := asm.Assemble(context.Background())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if homepage.ID != "cached" {
		t.Fatalf("expected cached homepage, got %s", homepage.ID)
	}
	if src.calls != 0 {
		t.Fatalf("cache hit must not touch the source, got %d calls", src.calls)
	}
}

func TestAssembleRebuildsOnCacheMiss(t *testing.T) {
	t.Parallel()

	clock, now := testClock()
	src := &stubSource{pool: testPool(now)}
	asm := testAssembler(AssemblerDeps{Source: src, Cache: &stubCache{}, Clock: clock})

	homepage, err := asm.Assemble(context.Background())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("cache miss must rebuild from the source, got %d calls", src.calls)
	}
	if homepage.Hero == nil {
		t.Fatal("rebuilt homepage lost its hero")
	}
}

func TestRebuildOverlaysPersistedLikes(t *testing.T) {
	t.Parallel()

	clock, now := testClock()
	src := &stubSource{pool: testPool(now)}
	repo := &stubRepository{likes: map[string]int{"a1": 90, "a2": 20}}
	asm := testAssembler(AssemblerDeps{Source: src, Repository: repo, Clock: clock})

	homepage, err := asm.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	for _, article := range homepage.Feed {
		switch article.ID {
		case "a1":
			if article.LikeCount != 90 {
				t.Fatalf("persisted likes must win when higher, got %d", article.LikeCount)
			}
		case "a2":
			if article.LikeCount != 30 {
				t.Fatalf("lower persisted likes must not downgrade, got %d", article.LikeCount)
			}
		}
	}
}

func TestRebuildToleratesLikeCountFailure(t *testing.T) {
	t.Parallel()

	clock, now := testClock()
	src := &stubSource{pool: testPool(now)}
	repo := &stubRepository{likesErr: errors.New("db down")}
	asm := testAssembler(AssemblerDeps{Source: src, Repository: repo, Clock: clock})

	homepage, err := asm.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("rebuild must survive like-count failures: %v", err)
	}
	if len(homepage.Feed) != 2 {
		t.Fatalf("pool lost on repository failure, feed=%d", len(homepage.Feed))
	}
}

func TestRebuildEmptyPool(t *testing.T) {
	t.Parallel()

	clock, _ := testClock()
	asm := testAssembler(AssemblerDeps{Source: &stubSource{}, Clock: clock})

	homepage, err := asm.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if homepage.Hero != nil || len(homepage.Feed) != 0 {
		t.Fatalf("empty pool must yield an empty homepage: %+v", homepage)
	}
}

func TestPlacementUnknownName(t *testing.T) {
	t.Parallel()

	clock, now := testClock()
	asm := testAssembler(AssemblerDeps{Source: &stubSource{pool: testPool(now)}, Clock: clock})

	if _, err := asm.Placement(context.Background(), domain.Placement("sidebar"), 0); err == nil {
		t.Fatal("expected error for unknown placement")
	}
}
