package domain

// Placement names one of the five fixed homepage slots.
type Placement string

const (
	PlacementHero     Placement = "hero"
	PlacementBreaking Placement = "breaking"
	PlacementTrending Placement = "trending"
	PlacementCategory Placement = "category"
	PlacementFeed     Placement = "feed"
)

// Placements returns all placement names in display order.
func Placements() []Placement {
	return []Placement{
		PlacementHero,
		PlacementBreaking,
		PlacementTrending,
		PlacementCategory,
		PlacementFeed,
	}
}

// ArticleScore breaks down the composite ranking score for one (article, placement) pair.
// All sub-scores are in [0,1]; Total is their weighted sum.
type ArticleScore struct {
	Relevance  float64
	Recency    float64
	Engagement float64
	Quality    float64
	Breaking   float64
	Total      float64
}
