package classify

import (
	"sort"
	"strings"

	"NewsRanker/internal/domain"
	"NewsRanker/internal/lexicon"
)

const (
	// Field weights of the blended keyword-match ratio.
	weightTitle   = 0.40
	weightBody    = 0.30
	weightSummary = 0.20
	weightTags    = 0.10

	// Categories scoring at or below the floor are discarded as noise.
	noiseFloor = 0.1

	// At most this many runner-up categories are reported.
	maxAlternatives = 3
)

// Classifier assigns categories, subcategories, and urgency signals to
// articles using the injected lexicon. It holds no mutable state and is safe
// for concurrent use.
type Classifier struct {
	lex *lexicon.Lexicon
}

// New builds a classifier over the given lexicon.
func New(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify scores the article against every category and returns the full
// classification. It is total: an article matching nothing resolves to the
// general category at zero confidence.
func (c *Classifier) Classify(article domain.Article) domain.ClassificationResult {
	title := strings.ToLower(article.Title)
	body := strings.ToLower(article.Body)
	summary := strings.ToLower(article.Summary)
	tags := strings.ToLower(strings.Join(article.Tags, " "))

	scored := make([]domain.CategoryScore, 0, len(c.lex.Categories))
	for _, info := range c.lex.Categories {
		score := weightTitle*matchRatio(title, info.Keywords) +
			weightBody*matchRatio(body, info.Keywords) +
			weightSummary*matchRatio(summary, info.Keywords) +
			weightTags*matchRatio(tags, info.Keywords)
		if score > noiseFloor {
			scored = append(scored, domain.CategoryScore{Category: info.ID, Score: score})
		}
	}

	// Stable sort keeps enumeration order for equal scores, so results are
	// deterministic for identical input.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) == 0 {
		return domain.ClassificationResult{
			Primary:    domain.CategoryGeneral,
			Confidence: 0,
			Breaking:   c.DetectBreaking(article),
			Priority:   c.DeterminePriority(article, domain.CategoryGeneral),
		}
	}

	primary := scored[0]
	alternatives := scored[1:]
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}

	return domain.ClassificationResult{
		Primary:      primary.Category,
		Subcategory:  c.ResolveSubcategory(article, primary.Category),
		Confidence:   primary.Score,
		Alternatives: alternatives,
		Breaking:     c.DetectBreaking(article),
		Priority:     c.DeterminePriority(article, primary.Category),
	}
}

// ResolveSubcategory picks the best-matching subcategory under the primary
// category, or empty when the category defines none or nothing matched.
// Scoring is occurrence-weighted, not ratio-weighted like the primary pass:
// every keyword hit counts, so longer articles accumulate more weight.
func (c *Classifier) ResolveSubcategory(article domain.Article, primary domain.Category) string {
	subs, ok := c.lex.Subcategories[primary]
	if !ok {
		return ""
	}

	text := strings.ToLower(article.Title + " " + article.Summary + " " + article.Body)

	best := ""
	bestCount := 0
	for _, sub := range subs {
		count := 0
		for _, kw := range sub.Keywords {
			count += strings.Count(text, kw)
		}
		// Strict greater-than keeps the first subcategory on ties.
		if count > bestCount {
			bestCount = count
			best = sub.DisplayName
		}
	}

	return best
}

// matchRatio returns the share of keywords found as substrings of the field,
// capped at 1.0.
func matchRatio(field string, keywords []string) float64 {
	if len(keywords) == 0 || field == "" {
		return 0
	}

	found := 0
	for _, kw := range keywords {
		if strings.Contains(field, kw) {
			found++
		}
	}

	ratio := float64(found) / float64(len(keywords))
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}
