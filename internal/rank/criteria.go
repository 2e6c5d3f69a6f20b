package rank

import (
	"fmt"
	"time"

	"NewsRanker/internal/domain"
)

// Criteria is the per-placement eligibility and scoring configuration.
type Criteria struct {
	MinReadMinutes     int
	MaxReadMinutes     int
	RequireImage       bool
	MinLikeCount       int
	MaxAge             time.Duration
	PriorityCategories []domain.Category
	ExcludedCategories []domain.Category
	MaxResults         int
}

// DefaultCriteria returns the fixed configuration for the five placements.
func DefaultCriteria() map[domain.Placement]Criteria {
	return map[domain.Placement]Criteria{
		domain.PlacementHero: {
			MinReadMinutes: 3,
			MaxReadMinutes: 15,
			RequireImage:   true,
			MinLikeCount:   10,
			MaxAge:         24 * time.Hour,
			PriorityCategories: []domain.Category{
				domain.CategoryPolitics, domain.CategoryWorld,
				domain.CategoryBusiness, domain.CategoryTechnology,
			},
			MaxResults: 1,
		},
		domain.PlacementBreaking: {
			MinReadMinutes: 1,
			MaxReadMinutes: 8,
			RequireImage:   true,
			MinLikeCount:   0,
			MaxAge:         2 * time.Hour,
			PriorityCategories: []domain.Category{
				domain.CategoryPolitics, domain.CategoryWorld,
			},
			ExcludedCategories: []domain.Category{domain.CategoryEntertainment},
			MaxResults:         3,
		},
		domain.PlacementTrending: {
			MinReadMinutes: 1,
			MaxReadMinutes: 10,
			RequireImage:   false,
			MinLikeCount:   5,
			MaxAge:         7 * 24 * time.Hour,
			PriorityCategories: []domain.Category{
				domain.CategoryTechnology, domain.CategoryEntertainment,
				domain.CategorySports,
			},
			MaxResults: 5,
		},
		domain.PlacementCategory: {
			MinReadMinutes: 2,
			MaxReadMinutes: 12,
			RequireImage:   true,
			MinLikeCount:   3,
			MaxAge:         3 * 24 * time.Hour,
			MaxResults:     4,
		},
		domain.PlacementFeed: {
			MinReadMinutes: 1,
			MaxReadMinutes: 20,
			RequireImage:   false,
			MinLikeCount:   0,
			MaxAge:         30 * 24 * time.Hour,
			MaxResults:     20,
		},
	}
}

// CriteriaFor resolves a placement's criteria. An unknown placement name is a
// caller defect and is reported immediately.
func (e *Engine) CriteriaFor(placement domain.Placement) (Criteria, error) {
	if c, ok := e.criteria[placement]; ok {
		return c, nil
	}
	return Criteria{}, fmt.Errorf("placement %s is not configured", placement)
}
