package domain

// Category is one of the fixed homepage categories.
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryTechnology    Category = "technology"
	CategoryBusiness      Category = "business"
	CategoryScience       Category = "science"
	CategoryHealth        Category = "health"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
	CategoryPolitics      Category = "politics"
	CategoryWorld         Category = "world"
	CategoryLocal         Category = "local"
)

// Categories returns all categories in canonical enumeration order.
// The order is load-bearing: classification ties are broken by it.
func Categories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryTechnology,
		CategoryBusiness,
		CategoryScience,
		CategoryHealth,
		CategorySports,
		CategoryEntertainment,
		CategoryPolitics,
		CategoryWorld,
		CategoryLocal,
	}
}

// Priority is the editorial urgency tier assigned during classification.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)
