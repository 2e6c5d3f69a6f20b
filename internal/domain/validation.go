package domain

// Severity ranks how badly a hero-validation issue degrades the slot.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Issue is a single itemized defect found while validating a hero candidate.
type Issue struct {
	Code     string
	Severity Severity
	Message  string
}

// ValidationResult is the hero-slot quality verdict with its explanation.
type ValidationResult struct {
	Valid           bool
	Score           int
	Issues          []Issue
	Recommendations []string
}

// HasCritical reports whether any issue carries critical severity.
func (v ValidationResult) HasCritical() bool {
	for _, issue := range v.Issues {
		if issue.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
