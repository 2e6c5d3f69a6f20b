package rank

import (
	"sort"
	"time"

	"NewsRanker/internal/domain"
)

// Composite score weights.
const (
	weightRelevance  = 0.30
	weightRecency    = 0.25
	weightEngagement = 0.20
	weightQuality    = 0.15
	weightBreaking   = 0.10
)

// Engagement saturation points: likes and shares above these caps stop
// contributing.
const (
	likeSaturation  = 100
	shareSaturation = 50
)

// Engine selects and orders articles for homepage placements. It carries only
// the immutable criteria table and is safe for concurrent use.
type Engine struct {
	criteria map[domain.Placement]Criteria
}

// NewEngine builds an engine over the fixed placement criteria.
func NewEngine() *Engine {
	return &Engine{criteria: DefaultCriteria()}
}

// NewEngineWithCriteria builds an engine over a caller-supplied criteria
// table, letting tests substitute alternate configurations.
func NewEngineWithCriteria(criteria map[domain.Placement]Criteria) *Engine {
	return &Engine{criteria: criteria}
}

// SelectForPlacement filters the pool by the placement's eligibility rules,
// scores the survivors, and returns the top results ordered by composite
// score. A positive limit overrides the placement's own result cap. Ties keep
// pool order. An empty eligible set yields an empty result, not an error.
func (e *Engine) SelectForPlacement(pool []domain.Article, placement domain.Placement, limit int, now time.Time) ([]domain.Article, error) {
	criteria, err := e.CriteriaFor(placement)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		article domain.Article
		total   float64
	}

	eligible := make([]candidate, 0, len(pool))
	for _, article := range pool {
		if !e.eligible(article, placement, criteria, now) {
			continue
		}
		score := e.Score(article, criteria, now)
		eligible = append(eligible, candidate{article: article, total: score.Total})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].total > eligible[j].total
	})

	max := criteria.MaxResults
	if limit > 0 {
		max = limit
	}
	if len(eligible) > max {
		eligible = eligible[:max]
	}

	selected := make([]domain.Article, 0, len(eligible))
	for _, c := range eligible {
		selected = append(selected, c.article)
	}
	return selected, nil
}

// eligible applies the hard pass/fail filter. Category preferences feed
// scoring instead, except the breaking placement which hard-excludes its
// excluded categories.
func (e *Engine) eligible(article domain.Article, placement domain.Placement, criteria Criteria, now time.Time) bool {
	readMinutes := article.ReadingMinutes()
	if readMinutes < criteria.MinReadMinutes || readMinutes > criteria.MaxReadMinutes {
		return false
	}
	if criteria.RequireImage && !article.HasImage() {
		return false
	}
	if article.LikeCount < criteria.MinLikeCount {
		return false
	}
	if article.Age(now) > criteria.MaxAge {
		return false
	}
	if placement == domain.PlacementBreaking && containsCategory(criteria.ExcludedCategories, article.Category) {
		return false
	}
	return true
}

// Score computes the composite placement score for one article. Sub-scores
// are clamped to [0,1] so malformed inputs cannot push the total out of range.
func (e *Engine) Score(article domain.Article, criteria Criteria, now time.Time) domain.ArticleScore {
	score := domain.ArticleScore{
		Relevance:  e.relevance(article, criteria),
		Recency:    e.recency(article, criteria, now),
		Engagement: e.engagement(article),
		Quality:    e.quality(article, criteria),
	}
	if article.Breaking {
		score.Breaking = 1
	}

	score.Total = weightRelevance*score.Relevance +
		weightRecency*score.Recency +
		weightEngagement*score.Engagement +
		weightQuality*score.Quality +
		weightBreaking*score.Breaking
	return score
}

func (e *Engine) relevance(article domain.Article, criteria Criteria) float64 {
	relevance := 0.5
	if containsCategory(criteria.PriorityCategories, article.Category) {
		relevance += 0.3
	}
	if containsCategory(criteria.ExcludedCategories, article.Category) {
		relevance -= 0.5
	}
	return clamp01(relevance)
}

// recency decays linearly from 1 at publication to 0 at the placement's own
// age ceiling.
func (e *Engine) recency(article domain.Article, criteria Criteria, now time.Time) float64 {
	age := article.Age(now)
	if age > criteria.MaxAge || criteria.MaxAge <= 0 {
		return 0
	}
	return clamp01(1 - age.Seconds()/criteria.MaxAge.Seconds())
}

func (e *Engine) engagement(article domain.Article) float64 {
	likes := clamp01(float64(article.LikeCount) / likeSaturation)
	shares := clamp01(float64(article.ShareCount) / shareSaturation)
	return (likes + shares) / 2
}

func (e *Engine) quality(article domain.Article, criteria Criteria) float64 {
	quality := 0.5
	if article.HasImage() {
		quality += 0.2
	}
	readMinutes := article.ReadingMinutes()
	if readMinutes >= criteria.MinReadMinutes && readMinutes <= criteria.MaxReadMinutes {
		quality += 0.2
	}
	if article.Source.Verified {
		quality += 0.1
	}
	return clamp01(quality)
}

func containsCategory(set []domain.Category, category domain.Category) bool {
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
