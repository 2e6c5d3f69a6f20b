package rank

import (
	"strings"
	"time"

	"NewsRanker/internal/domain"
	"NewsRanker/internal/lexicon"
)

const (
	heroValidThreshold = 75
	weakTitleThreshold = 70
	imageQualityFloor  = 60

	heroMinTitleChars  = 20
	heroMaxTitleChars  = 120
	heroMaxAge         = 24 * time.Hour
	heroMinCredibility = 0.7
)

// heroCategories is the set of categories allowed in the hero slot.
var heroCategories = map[domain.Category]bool{
	domain.CategoryPolitics:      true,
	domain.CategoryBusiness:      true,
	domain.CategoryTechnology:    true,
	domain.CategoryHealth:        true,
	domain.CategoryWorld:         true,
	domain.CategorySports:        true,
	domain.CategoryEntertainment: true,
}

// HeroValidator runs the stricter single-article quality rubric used for the
// hero slot. It consults the lexicon's engagement words for the title check.
type HeroValidator struct {
	lex *lexicon.Lexicon
}

// NewHeroValidator builds a validator over the given lexicon.
func NewHeroValidator(lex *lexicon.Lexicon) *HeroValidator {
	return &HeroValidator{lex: lex}
}

// Validate scores a hero candidate out of 100, subtracting an itemized
// penalty per defect. Deductions accumulate independently; the result is
// valid only at 75+ with no critical issue.
func (v *HeroValidator) Validate(article domain.Article, now time.Time) domain.ValidationResult {
	score := 100
	var issues []domain.Issue
	var recommendations []string

	deduct := func(penalty int, code string, severity domain.Severity, message, recommendation string) {
		score -= penalty
		issues = append(issues, domain.Issue{Code: code, Severity: severity, Message: message})
		recommendations = append(recommendations, recommendation)
	}

	if !article.HasImage() {
		deduct(30, "missing_image", domain.SeverityCritical,
			"hero articles must carry an image",
			"Attach a landscape image at least 800px wide.")
	} else if estimateImageQuality(article.ImageURL) < imageQualityFloor {
		deduct(20, "low_image_quality", domain.SeverityHigh,
			"image appears to be low resolution",
			"Replace the image with a high-resolution variant (1080px or wider).")
	}

	titleChars := len([]rune(article.Title))
	switch {
	case titleChars < heroMinTitleChars:
		deduct(10, "title_too_short", domain.SeverityCritical,
			"title is too short for the hero slot",
			"Expand the title to at least 20 characters.")
	case titleChars > heroMaxTitleChars:
		deduct(5, "title_too_long", domain.SeverityLow,
			"title will truncate in the hero layout",
			"Shorten the title to 120 characters or fewer.")
	default:
		// Only titles inside the length band get the style heuristic; a
		// too-short or too-long title already carries its own issue.
		if v.titleQuality(article.Title) < weakTitleThreshold {
			deduct(15, "weak_title", domain.SeverityHigh,
				"title is unlikely to drive engagement",
				"Rework the title: 5-15 words, an engagement hook, no question or exclamation marks.")
		}
	}

	if article.Age(now) > heroMaxAge {
		deduct(10, "stale_article", domain.SeverityMedium,
			"article is older than 24 hours",
			"Pick a fresher article for the hero slot.")
	}

	if article.Source.Credibility < heroMinCredibility {
		deduct(15, "low_source_credibility", domain.SeverityMedium,
			"source credibility is below the hero bar",
			"Prefer a source with credibility of 0.7 or higher.")
	}

	if !heroCategories[article.Category] {
		deduct(5, "unsupported_category", domain.SeverityLow,
			"category is outside the supported hero set",
			"Choose an article from a hero-eligible category.")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	result := domain.ValidationResult{
		Score:           score,
		Issues:          issues,
		Recommendations: recommendations,
	}
	result.Valid = score >= heroValidThreshold && !result.HasCritical()
	return result
}

// titleQuality scores a title 0-100 from four equal-weight checks: length
// band, engagement hook, absence of "?"/"!", and a 5-15 word count.
func (v *HeroValidator) titleQuality(title string) int {
	score := 0

	chars := len([]rune(title))
	switch {
	case chars >= 20 && chars <= 80:
		score += 25
	case chars <= 120:
		score += 10
	}

	lower := strings.ToLower(title)
	for _, word := range v.lex.EngagementWords {
		if strings.Contains(lower, word) {
			score += 25
			break
		}
	}

	if !strings.ContainsAny(title, "?!") {
		score += 25
	}

	words := len(strings.Fields(title))
	if words >= 5 && words <= 15 {
		score += 25
	}

	return score
}

// estimateImageQuality guesses quality from URL hints alone. This is a known
// weak placeholder; swapping in a real image-metadata check keeps the
// surrounding contract intact.
func estimateImageQuality(rawURL string) int {
	u := strings.ToLower(rawURL)
	quality := 40

	for _, hint := range []string{"w=800", "w=1080", "w=1200", "w=1600", "w=1920", "1080", "1920", "2560"} {
		if strings.Contains(u, hint) {
			quality += 30
			break
		}
	}

	for _, hint := range []string{"q=8", "q=9", "quality=high", "hd", "original"} {
		if strings.Contains(u, hint) {
			quality += 20
			break
		}
	}

	for _, hint := range []string{"thumb", "icon", "placeholder", ".svg"} {
		if strings.Contains(u, hint) {
			quality -= 30
			break
		}
	}

	if quality < 0 {
		return 0
	}
	if quality > 100 {
		return 100
	}
	return quality
}
