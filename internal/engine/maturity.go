package engine

import (
	"sort"

	"github.com/dotcommander/assay/internal/bank"
)

// Maturity is the qualitative classification of an overall score.
type Maturity struct {
	Label       string `json:"label"`
	Class       string `json:"class"`
	Description string `json:"description,omitempty"`
}

// classifyMaturity maps an overall score to a tier: tiers are scanned from
// the highest threshold down and the first tier whose threshold does not
// exceed the score wins. Scores below every threshold (possible with heavy
// violations driving the overall negative) clamp to the floor tier, so the
// classifier is total as long as the bank carries a threshold-0 tier,
// which validation guarantees.
func classifyMaturity(tiers []bank.Tier, overall float64) Maturity {
	sorted := make([]bank.Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Threshold > sorted[j].Threshold
	})

	for _, t := range sorted {
		if t.Threshold <= overall {
			return Maturity{Label: t.Label, Class: t.Class, Description: t.Description}
		}
	}

	floor := sorted[len(sorted)-1]
	return Maturity{Label: floor.Label, Class: floor.Class, Description: floor.Description}
}
