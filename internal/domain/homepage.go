package domain

import "time"

// HeroSelection pairs the hero-slot winner with its quality verdict.
type HeroSelection struct {
	Article    Article
	Validation ValidationResult
}

// Homepage is a fully assembled landing page snapshot handed to consumers.
type Homepage struct {
	ID              string
	GeneratedAt     time.Time
	Hero            *HeroSelection
	Breaking        []Article
	Trending        []Article
	Category        []Article
	Feed            []Article
	Classifications map[string]ClassificationResult
}
