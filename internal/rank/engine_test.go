package rank

import (
	"math"
	"strings"
	"testing"
	"time"

	"NewsRanker/internal/domain"
)

// bodyOfMinutes builds a body whose estimated read time is the given number
// of minutes at 200 words per minute.
func bodyOfMinutes(minutes int) string {
	return strings.TrimSpace(strings.Repeat("word ", minutes*200))
}

func TestSelectForPlacementFeedVersusHero(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	old := domain.Article{
		ID:          "old-1",
		Title:       "A long archive read",
		Body:        bodyOfMinutes(4),
		PublishedAt: now.Add(-29 * 24 * time.Hour),
		Category:    domain.CategoryWorld,
	}
	pool := []domain.Article{old}

	engine := NewEngine()

	feed, err := engine.SelectForPlacement(pool, domain.PlacementFeed, 0, now)
	if err != nil {
		t.Fatalf("feed selection error: %v", err)
	}
	if len(feed) != 1 || feed[0].ID != "old-1" {
		t.Fatalf("expected the old article in feed, got %d results", len(feed))
	}

	hero, err := engine.SelectForPlacement(pool, domain.PlacementHero, 0, now)
	if err != nil {
		t.Fatalf("hero selection error: %v", err)
	}
	if len(hero) != 0 {
		t.Fatalf("expected empty hero result, got %d", len(hero))
	}
}

func TestSelectForPlacementRespectsEligibility(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	pool := []domain.Article{
		{
			ID:          "ok",
			Body:        bodyOfMinutes(3),
			PublishedAt: now.Add(-2 * time.Hour),
			LikeCount:   20,
			Category:    domain.CategoryTechnology,
		},
		{
			ID:          "too-few-likes",
			Body:        bodyOfMinutes(3),
			PublishedAt: now.Add(-2 * time.Hour),
			LikeCount:   4,
		},
		{
			ID:          "too-old",
			Body:        bodyOfMinutes(3),
			PublishedAt: now.Add(-10 * 24 * time.Hour),
			LikeCount:   50,
		},
		{
			ID:          "too-long-read",
			Body:        bodyOfMinutes(12),
			PublishedAt: now.Add(-2 * time.Hour),
			LikeCount:   50,
		},
	}

	engine := NewEngine()
	selected, err := engine.SelectForPlacement(pool, domain.PlacementTrending, 0, now)
	if err != nil {
		t.Fatalf("selection error: %v", err)
	}

	if len(selected) != 1 || selected[0].ID != "ok" {
		ids := make([]string, 0, len(selected))
		for _, a := range selected {
			ids = append(ids, a.ID)
		}
		t.Fatalf("expected only the eligible article, got %v", ids)
	}
}

func TestSelectForPlacementCapsResults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	pool := make([]domain.Article, 0, 25)
	for i := 0; i < 25; i++ {
		pool = append(pool, domain.Article{
			ID:          string(rune('a' + i)),
			Body:        bodyOfMinutes(2),
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	engine := NewEngine()

	feed, err := engine.SelectForPlacement(pool, domain.PlacementFeed, 0, now)
	if err != nil {
		t.Fatalf("selection error: %v", err)
	}
	if len(feed) != 20 {
		t.Fatalf("expected the feed cap of 20, got %d", len(feed))
	}

	limited, err := engine.SelectForPlacement(pool, domain.PlacementFeed, 5, now)
	if err != nil {
		t.Fatalf("selection error: %v", err)
	}
	if len(limited) != 5 {
		t.Fatalf("expected explicit limit of 5, got %d", len(limited))
	}
}

func TestSelectForPlacementTieKeepsPoolOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	template := domain.Article{
		Body:        bodyOfMinutes(2),
		PublishedAt: now.Add(-3 * time.Hour),
		LikeCount:   30,
		ShareCount:  10,
		Category:    domain.CategoryScience,
	}

	first := template
	first.ID = "first"
	second := template
	second.ID = "second"

	engine := NewEngine()

	for run := 0; run < 3; run++ {
		selected, err := engine.SelectForPlacement([]domain.Article{first, second}, domain.PlacementFeed, 0, now)
		if err != nil {
			t.Fatalf("selection error: %v", err)
		}
		if len(selected) != 2 {
			t.Fatalf("expected both articles, got %d", len(selected))
		}
		if selected[0].ID != "first" || selected[1].ID != "second" {
			t.Fatalf("tie order not stable: %s before %s", selected[0].ID, selected[1].ID)
		}
	}
}

func TestBreakingPlacementHardExcludesCategories(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	entertainment := domain.Article{
		ID:          "gala",
		Body:        bodyOfMinutes(2),
		PublishedAt: now.Add(-30 * time.Minute),
		ImageURL:    "https://img.example.com/gala.jpg",
		Breaking:    true,
		Category:    domain.CategoryEntertainment,
	}
	world := entertainment
	world.ID = "summit"
	world.Category = domain.CategoryWorld

	engine := NewEngine()
	selected, err := engine.SelectForPlacement([]domain.Article{entertainment, world}, domain.PlacementBreaking, 0, now)
	if err != nil {
		t.Fatalf("selection error: %v", err)
	}

	if len(selected) != 1 || selected[0].ID != "summit" {
		t.Fatalf("expected only the world article, got %d results", len(selected))
	}
}

func TestSelectForPlacementUnknownName(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	if _, err := engine.SelectForPlacement(nil, domain.Placement("sidebar"), 0, time.Now()); err == nil {
		t.Fatal("expected error for unknown placement")
	}
}

func TestScoreComposition(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	engine := NewEngine()
	criteria, err := engine.CriteriaFor(domain.PlacementBreaking)
	if err != nil {
		t.Fatalf("criteria error: %v", err)
	}

	article := domain.Article{
		ID:          "scored",
		Body:        bodyOfMinutes(2),
		PublishedAt: now.Add(-time.Hour), // half the 2h ceiling
		Category:    domain.CategoryWorld,
		ImageURL:    "https://img.example.com/x.jpg",
		Breaking:    true,
		LikeCount:   50,
		ShareCount:  25,
		Source:      domain.Source{Verified: true},
	}

	score := engine.Score(article, criteria, now)

	if math.Abs(score.Relevance-0.8) > 1e-9 {
		t.Fatalf("expected relevance 0.8, got %f", score.Relevance)
	}
	if math.Abs(score.Recency-0.5) > 1e-9 {
		t.Fatalf("expected recency 0.5, got %f", score.Recency)
	}
	if math.Abs(score.Engagement-0.5) > 1e-9 {
		t.Fatalf("expected engagement 0.5, got %f", score.Engagement)
	}
	if math.Abs(score.Quality-1.0) > 1e-9 {
		t.Fatalf("expected quality 1.0, got %f", score.Quality)
	}
	if score.Breaking != 1.0 {
		t.Fatalf("expected breaking 1.0, got %f", score.Breaking)
	}

	want := 0.30*0.8 + 0.25*0.5 + 0.20*0.5 + 0.15*1.0 + 0.10*1.0
	if math.Abs(score.Total-want) > 1e-9 {
		t.Fatalf("expected total %f, got %f", want, score.Total)
	}

	for _, sub := range []float64{score.Relevance, score.Recency, score.Engagement, score.Quality, score.Breaking} {
		if sub < 0 || sub > 1 {
			t.Fatalf("sub-score out of range: %f", sub)
		}
	}
}
