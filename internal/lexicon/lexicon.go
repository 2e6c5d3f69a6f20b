package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"NewsRanker/internal/domain"
)

// CategoryInfo carries display metadata and matching keywords for one category.
type CategoryInfo struct {
	ID          domain.Category `yaml:"id"`
	DisplayName string          `yaml:"displayName"`
	Icon        string          `yaml:"icon"`
	Color       string          `yaml:"color"`
	Keywords    []string        `yaml:"keywords"`
}

// SubcategoryInfo describes one subcategory under a parent category.
type SubcategoryInfo struct {
	ID          string   `yaml:"id"`
	DisplayName string   `yaml:"displayName"`
	Keywords    []string `yaml:"keywords"`
}

// Lexicon bundles every static keyword table the engine consults.
// It is built once at startup and treated as immutable afterwards.
type Lexicon struct {
	Categories           []CategoryInfo
	Subcategories        map[domain.Category][]SubcategoryInfo
	BreakingKeywords     []string
	HighPriorityKeywords []string
	InnovationKeywords   []string
	EngagementWords      []string
	PriorityDefaults     map[domain.Category]domain.Priority
}

// Category returns the info record for a category, or false when unknown.
func (l *Lexicon) Category(id domain.Category) (CategoryInfo, bool) {
	for _, info := range l.Categories {
		if info.ID == id {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// DefaultPriority resolves the static per-category priority tier.
func (l *Lexicon) DefaultPriority(id domain.Category) domain.Priority {
	if p, ok := l.PriorityDefaults[id]; ok {
		return p
	}
	return domain.PriorityLow
}

// fileLexicon is the YAML override shape; empty sections keep the defaults.
type fileLexicon struct {
	Categories           []CategoryInfo               `yaml:"categories"`
	Subcategories        map[string][]SubcategoryInfo `yaml:"subcategories"`
	BreakingKeywords     []string                     `yaml:"breakingKeywords"`
	HighPriorityKeywords []string                     `yaml:"highPriorityKeywords"`
	InnovationKeywords   []string                     `yaml:"innovationKeywords"`
	EngagementWords      []string                     `yaml:"engagementWords"`
}

// Load reads a YAML lexicon file and merges it over the built-in defaults.
func Load(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	var file fileLexicon
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	return mergeLexicon(Default(), file), nil
}

func mergeLexicon(base *Lexicon, override fileLexicon) *Lexicon {
	if len(override.Categories) > 0 {
		merged := make([]CategoryInfo, len(base.Categories))
		copy(merged, base.Categories)
		// Unknown category ids are ignored: the category set is closed.
		for _, info := range override.Categories {
			for i := range merged {
				if merged[i].ID != info.ID {
					continue
				}
				if info.DisplayName != "" {
					merged[i].DisplayName = info.DisplayName
				}
				if info.Icon != "" {
					merged[i].Icon = info.Icon
				}
				if info.Color != "" {
					merged[i].Color = info.Color
				}
				if len(info.Keywords) > 0 {
					merged[i].Keywords = info.Keywords
				}
				break
			}
		}
		base.Categories = merged
	}

	if len(override.Subcategories) > 0 {
		for parent, subs := range override.Subcategories {
			id := domain.Category(parent)
			if _, ok := base.Subcategories[id]; !ok {
				continue
			}
			if len(subs) > 0 {
				base.Subcategories[id] = subs
			}
		}
	}

	if len(override.BreakingKeywords) > 0 {
		base.BreakingKeywords = override.BreakingKeywords
	}
	if len(override.HighPriorityKeywords) > 0 {
		base.HighPriorityKeywords = override.HighPriorityKeywords
	}
	if len(override.InnovationKeywords) > 0 {
		base.InnovationKeywords = override.InnovationKeywords
	}
	if len(override.EngagementWords) > 0 {
		base.EngagementWords = override.EngagementWords
	}

	return base
}
