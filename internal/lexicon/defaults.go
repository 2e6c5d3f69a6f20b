package lexicon

import "NewsRanker/internal/domain"

// Default builds the built-in lexicon. Each call returns a fresh copy so a
// caller merging overrides never mutates tables shared with another consumer.
func Default() *Lexicon {
	return &Lexicon{
		Categories: []CategoryInfo{
			{
				ID:          domain.CategoryGeneral,
				DisplayName: "General",
				Icon:        "newspaper",
				Color:       "slate",
				Keywords: []string{
					"news", "report", "update", "announcement", "statement",
					"official", "public", "community",
				},
			},
			{
				ID:          domain.CategoryTechnology,
				DisplayName: "Technology",
				Icon:        "cpu",
				Color:       "indigo",
				Keywords: []string{
					"tech", "software", "hardware", "ai", "artificial intelligence",
					"startup", "gadget", "robot", "app", "digital", "internet", "cyber",
				},
			},
			{
				ID:          domain.CategoryBusiness,
				DisplayName: "Business",
				Icon:        "briefcase",
				Color:       "amber",
				Keywords: []string{
					"business", "economy", "market", "stocks", "finance", "trade",
					"investment", "earnings", "company", "merger", "inflation", "banking",
				},
			},
			{
				ID:          domain.CategoryScience,
				DisplayName: "Science",
				Icon:        "flask",
				Color:       "emerald",
				Keywords: []string{
					"science", "research", "study", "discovery", "experiment",
					"physics", "biology", "chemistry", "space", "climate", "genome",
				},
			},
			{
				ID:          domain.CategoryHealth,
				DisplayName: "Health",
				Icon:        "heart-pulse",
				Color:       "rose",
				Keywords: []string{
					"health", "medical", "hospital", "vaccine", "disease", "doctor",
					"treatment", "mental health", "fitness", "drug", "outbreak",
				},
			},
			{
				ID:          domain.CategorySports,
				DisplayName: "Sports",
				Icon:        "trophy",
				Color:       "orange",
				Keywords: []string{
					"sports", "game", "match", "tournament", "championship", "league",
					"player", "coach", "goal", "olympic", "season",
				},
			},
			{
				ID:          domain.CategoryEntertainment,
				DisplayName: "Entertainment",
				Icon:        "clapperboard",
				Color:       "fuchsia",
				Keywords: []string{
					"entertainment", "movie", "film", "music", "celebrity", "concert",
					"album", "festival", "tv show", "streaming", "box office",
				},
			},
			{
				ID:          domain.CategoryPolitics,
				DisplayName: "Politics",
				Icon:        "landmark",
				Color:       "red",
				Keywords: []string{
					"politics", "election", "government", "senate", "parliament",
					"policy", "president", "minister", "campaign", "legislation", "vote",
				},
			},
			{
				ID:          domain.CategoryWorld,
				DisplayName: "World",
				Icon:        "globe",
				Color:       "sky",
				Keywords: []string{
					"world", "international", "global", "diplomacy", "united nations",
					"foreign", "treaty", "border", "summit", "embassy",
				},
			},
			{
				ID:          domain.CategoryLocal,
				DisplayName: "Local",
				Icon:        "map-pin",
				Color:       "lime",
				Keywords: []string{
					"local", "city", "neighborhood", "mayor", "council",
					"community center", "downtown", "municipal", "resident",
				},
			},
		},

		Subcategories: map[domain.Category][]SubcategoryInfo{
			domain.CategoryTechnology: {
				{ID: "gadgets", DisplayName: "Gadgets", Keywords: []string{"gadget", "device", "wearable", "headphones"}},
				{ID: "software", DisplayName: "Software", Keywords: []string{"software", "programming", "developer", "open source"}},
				{ID: "artificial-intelligence", DisplayName: "Artificial Intelligence", Keywords: []string{"artificial intelligence", "machine learning", "neural", "chatbot", "llm"}},
				{ID: "cybersecurity", DisplayName: "Cybersecurity", Keywords: []string{"cybersecurity", "hack", "malware", "breach", "ransomware"}},
				{ID: "mobile", DisplayName: "Mobile", Keywords: []string{"smartphone", "android", "iphone", "mobile app"}},
				{ID: "gaming", DisplayName: "Gaming", Keywords: []string{"gaming", "video game", "console", "esports"}},
				{ID: "internet", DisplayName: "Internet", Keywords: []string{"internet", "broadband", "social media", "website"}},
				{ID: "robotics", DisplayName: "Robotics", Keywords: []string{"robot", "drone", "automation", "humanoid"}},
				{ID: "blockchain", DisplayName: "Blockchain", Keywords: []string{"blockchain", "crypto", "bitcoin", "ethereum"}},
				{ID: "cloud-computing", DisplayName: "Cloud Computing", Keywords: []string{"cloud", "data center", "server", "saas"}},
				{ID: "data-science", DisplayName: "Data Science", Keywords: []string{"data science", "big data", "analytics", "dataset"}},
				{ID: "innovation", DisplayName: "Innovation", Keywords: []string{"innovation", "patent", "prototype", "invention"}},
			},
			domain.CategoryBusiness: {
				{ID: "markets", DisplayName: "Markets", Keywords: []string{"stocks", "shares", "trading", "wall street"}},
				{ID: "economy", DisplayName: "Economy", Keywords: []string{"economy", "gdp", "inflation", "recession"}},
				{ID: "startups", DisplayName: "Startups", Keywords: []string{"startup", "venture", "funding", "ipo"}},
				{ID: "corporate", DisplayName: "Corporate", Keywords: []string{"merger", "acquisition", "ceo", "earnings"}},
				{ID: "real-estate", DisplayName: "Real Estate", Keywords: []string{"real estate", "housing", "property", "mortgage"}},
				{ID: "energy", DisplayName: "Energy", Keywords: []string{"oil", "gas", "renewable", "energy"}},
			},
			domain.CategoryScience: {
				{ID: "space", DisplayName: "Space", Keywords: []string{"space", "nasa", "rocket", "satellite", "mars"}},
				{ID: "environment", DisplayName: "Environment", Keywords: []string{"climate", "environment", "emissions", "wildlife"}},
				{ID: "physics", DisplayName: "Physics", Keywords: []string{"physics", "quantum", "particle", "collider"}},
				{ID: "biology", DisplayName: "Biology", Keywords: []string{"biology", "genome", "species", "cell"}},
				{ID: "chemistry", DisplayName: "Chemistry", Keywords: []string{"chemistry", "molecule", "compound", "material"}},
				{ID: "archaeology", DisplayName: "Archaeology", Keywords: []string{"archaeology", "fossil", "ancient", "excavation"}},
			},
		},

		BreakingKeywords: []string{
			"breaking", "urgent", "crisis", "emergency", "just in", "alert", "developing",
		},

		HighPriorityKeywords: []string{
			"election", "war", "disaster", "earthquake", "pandemic", "crash",
			"attack", "explosion", "evacuation",
		},

		InnovationKeywords: []string{
			"innovation", "breakthrough", "first ever", "revolutionary", "unveiled", "launch",
		},

		EngagementWords: []string{
			"breakthrough", "exclusive", "revealed", "unveiled", "major",
			"record", "historic", "surprising", "massive", "first",
		},

		PriorityDefaults: map[domain.Category]domain.Priority{
			domain.CategoryGeneral:       domain.PriorityLow,
			domain.CategoryTechnology:    domain.PriorityHigh,
			domain.CategoryBusiness:      domain.PriorityHigh,
			domain.CategoryScience:       domain.PriorityMedium,
			domain.CategoryHealth:        domain.PriorityHigh,
			domain.CategorySports:        domain.PriorityMedium,
			domain.CategoryEntertainment: domain.PriorityMedium,
			domain.CategoryPolitics:      domain.PriorityHigh,
			domain.CategoryWorld:         domain.PriorityHigh,
			domain.CategoryLocal:         domain.PriorityLow,
		},
	}
}
