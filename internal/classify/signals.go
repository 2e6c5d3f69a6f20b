package classify

import (
	"strings"

	"NewsRanker/internal/domain"
)

// DetectBreaking reports breaking-news status: either the article arrived
// pre-flagged, or its title/summary contains a breaking keyword.
func (c *Classifier) DetectBreaking(article domain.Article) bool {
	if article.Breaking {
		return true
	}

	text := strings.ToLower(article.Title + " " + article.Summary)
	for _, kw := range c.lex.BreakingKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// DeterminePriority assigns the urgency tier for an article in the given
// category. Critical is never produced here: it is reserved for externally
// flagged alerts outside this engine.
func (c *Classifier) DeterminePriority(article domain.Article, category domain.Category) domain.Priority {
	text := strings.ToLower(article.Title + " " + article.Summary)

	for _, kw := range c.lex.HighPriorityKeywords {
		if strings.Contains(text, kw) {
			return domain.PriorityHigh
		}
	}

	if category == domain.CategoryTechnology {
		for _, kw := range c.lex.InnovationKeywords {
			if strings.Contains(text, kw) {
				return domain.PriorityHigh
			}
		}
	}

	return c.lex.DefaultPriority(category)
}
