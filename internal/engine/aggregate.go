package engine

import "github.com/dotcommander/assay/internal/bank"

// CategoryScore is the aggregated result for one category. RawScore is
// the signed sum of answer scores; MinScore and MaxScore bound the range
// it could have landed in. Percentage normalizes RawScore within that
// range, so a category of binary questions answered half right sits at 50
// while an all-violations category bottoms out at 0.
type CategoryScore struct {
	RawScore   float64 `json:"rawScore"`
	MinScore   float64 `json:"minScore"`
	MaxScore   float64 `json:"maxScore"`
	Percentage float64 `json:"percentage"`
}

// Active reports whether any answered question contributed to this
// category's scoring range. Inactive categories are excluded from
// weighting entirely: partial assessments are not punished for
// unanswered sections.
func (c CategoryScore) Active() bool {
	return c.MaxScore > c.MinScore
}

// aggregateCategories folds per-question evaluations into per-category
// scores. Invalid answers contribute nothing; NA answers contribute to
// neither numerator nor denominator.
func aggregateCategories(b *bank.Bank, evals []Evaluation) map[string]CategoryScore {
	scores := make(map[string]CategoryScore, len(b.Categories))
	for _, c := range b.Categories {
		scores[c.ID] = CategoryScore{}
	}

	for _, ev := range evals {
		if ev.Outcome == OutcomeInvalid {
			continue
		}
		s := scores[ev.Category]
		s.RawScore += ev.Score
		s.MinScore += ev.MinScore
		s.MaxScore += ev.MaxScore
		scores[ev.Category] = s
	}

	for id, s := range scores {
		if s.Active() {
			s.Percentage = 100 * (s.RawScore - s.MinScore) / (s.MaxScore - s.MinScore)
		}
		scores[id] = s
	}
	return scores
}

// combineWeighted blends active category percentages into one overall
// score using the multiplier-weighted mean:
//
//	overall = Σ(percentage[c] * multiplier[c]) / Σ(multiplier[c])
//
// over categories with answered questions. Returns false when no category
// is active.
func combineWeighted(b *bank.Bank, scores map[string]CategoryScore, context string) (float64, bool) {
	var weightedSum, multiplierSum float64
	for _, c := range b.Categories {
		s := scores[c.ID]
		if !s.Active() {
			continue
		}
		mult := b.Weights.Multiplier(c.ID, context)
		weightedSum += s.Percentage * mult
		multiplierSum += mult
	}
	if multiplierSum == 0 {
		return 0, false
	}
	return weightedSum / multiplierSum, true
}
