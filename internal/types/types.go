// Package types provides shared types used across the assay codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Severity level constants for violations and validation findings.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Recommendation priority constants.
const (
	PriorityHigh   = "high"
	PriorityNormal = "normal"
)

// Insight kind constants for answer-level overrides.
const (
	InsightStrength       = "strength"
	InsightWeakness       = "weakness"
	InsightRecommendation = "recommendation"
)

// ValidSeverity reports whether s is a known severity level.
func ValidSeverity(s string) bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// ValidInsightKind reports whether k is a known insight kind.
func ValidInsightKind(k string) bool {
	return k == InsightStrength || k == InsightWeakness || k == InsightRecommendation
}
