package engine

// Options tune the insight generation pass. Zero values are replaced by
// the defaults below, which match the historical behavior of the domain
// assessments; changing the thresholds changes every assessment's
// classification, so overrides should be deliberate.
type Options struct {
	// MaxStrengths, MaxWeaknesses and MaxRecommendations cap the
	// respective report lists.
	MaxStrengths       int
	MaxWeaknesses      int
	MaxRecommendations int

	// StrengthPercent and StrengthMultiplier gate the strengths list:
	// a category qualifies at >= StrengthPercent only when its multiplier
	// is >= StrengthMultiplier, so low-relevance categories are not
	// praised into misleading the respondent about priorities.
	StrengthPercent    float64
	StrengthMultiplier float64

	// WeaknessPercent flags any category scoring below it. The secondary
	// rule additionally flags moderately-scored categories that are
	// highly relevant.
	WeaknessPercent             float64
	SecondaryWeaknessPercent    float64
	SecondaryWeaknessMultiplier float64

	// PriorityCutoff is the multiplier at or above which a
	// recommendation is labeled high priority.
	PriorityCutoff float64
}

// DefaultOptions returns the standard insight thresholds.
func DefaultOptions() Options {
	return Options{
		MaxStrengths:                4,
		MaxWeaknesses:               4,
		MaxRecommendations:          5,
		StrengthPercent:             75,
		StrengthMultiplier:          0.8,
		WeaknessPercent:             50,
		SecondaryWeaknessPercent:    55,
		SecondaryWeaknessMultiplier: 1.1,
		PriorityCutoff:              1.1,
	}
}

// normalized fills zero-valued fields with defaults.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.MaxStrengths <= 0 {
		o.MaxStrengths = d.MaxStrengths
	}
	if o.MaxWeaknesses <= 0 {
		o.MaxWeaknesses = d.MaxWeaknesses
	}
	if o.MaxRecommendations <= 0 {
		o.MaxRecommendations = d.MaxRecommendations
	}
	if o.StrengthPercent == 0 {
		o.StrengthPercent = d.StrengthPercent
	}
	if o.StrengthMultiplier == 0 {
		o.StrengthMultiplier = d.StrengthMultiplier
	}
	if o.WeaknessPercent == 0 {
		o.WeaknessPercent = d.WeaknessPercent
	}
	if o.SecondaryWeaknessPercent == 0 {
		o.SecondaryWeaknessPercent = d.SecondaryWeaknessPercent
	}
	if o.SecondaryWeaknessMultiplier == 0 {
		o.SecondaryWeaknessMultiplier = d.SecondaryWeaknessMultiplier
	}
	if o.PriorityCutoff == 0 {
		o.PriorityCutoff = d.PriorityCutoff
	}
	return o
}
