package domain

// CategoryScore pairs a category with its classification score.
type CategoryScore struct {
	Category Category
	Score    float64
}

// ClassificationResult is the full outcome of classifying a single article.
// It is produced fresh on every call and never persisted by the engine.
type ClassificationResult struct {
	Primary      Category
	Subcategory  string
	Confidence   float64
	Alternatives []CategoryScore
	Breaking     bool
	Priority     Priority
}
