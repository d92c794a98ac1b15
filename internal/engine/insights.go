package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/types"
)

// Recommendation is one prioritized remediation suggestion.
type Recommendation struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// Insights holds the derived strengths, weaknesses and recommendations.
type Insights struct {
	Strengths       []string
	Weaknesses      []string
	Recommendations []Recommendation
}

// categoryStanding is the per-category view the insight rules operate on.
type categoryStanding struct {
	category   bank.Category
	percentage float64
	multiplier float64
	active     bool
}

type scoredRecommendation struct {
	rec      Recommendation
	priority float64
}

// generateInsights derives strengths, weaknesses and recommendations from
// category results, then applies answer-level overrides: a single critical
// answer can inject findings past the category aggregates. Overrides are
// appended, never replacing, and the lists are re-truncated afterwards.
func generateInsights(b *bank.Bank, scores map[string]CategoryScore, evals []Evaluation, context string, answers Answers, opts Options) Insights {
	standings := make([]categoryStanding, 0, len(b.Categories))
	for _, c := range b.Categories {
		s := scores[c.ID]
		standings = append(standings, categoryStanding{
			category:   c,
			percentage: s.Percentage,
			multiplier: b.Weights.Multiplier(c.ID, context),
			active:     s.Active(),
		})
	}

	out := Insights{
		Strengths:       categoryStrengths(standings, opts),
		Weaknesses:      categoryWeaknesses(standings, opts),
		Recommendations: categoryRecommendations(b, standings, evals, opts),
	}
	out = applyOverrides(b, out, answers, opts)

	out.Strengths = truncate(out.Strengths, opts.MaxStrengths)
	out.Weaknesses = truncate(out.Weaknesses, opts.MaxWeaknesses)
	if len(out.Recommendations) > opts.MaxRecommendations {
		out.Recommendations = out.Recommendations[:opts.MaxRecommendations]
	}
	return out
}

// categoryStrengths praises categories that both scored well and matter
// for the assessed context. Results are ordered by percentage descending.
func categoryStrengths(standings []categoryStanding, opts Options) []string {
	var qualified []categoryStanding
	for _, s := range standings {
		if s.active && s.percentage >= opts.StrengthPercent && s.multiplier >= opts.StrengthMultiplier {
			qualified = append(qualified, s)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].percentage > qualified[j].percentage
	})

	var out []string
	for _, s := range qualified {
		out = append(out, fmt.Sprintf("%s: strong performance (%.0f%%)", s.category.Name, s.percentage))
	}
	return out
}

// categoryWeaknesses flags low-scoring categories, plus moderately-scored
// categories whose multiplier marks them as highly relevant. The most
// relevant gaps surface first.
func categoryWeaknesses(standings []categoryStanding, opts Options) []string {
	var qualified []categoryStanding
	for _, s := range standings {
		if !s.active {
			continue
		}
		if s.percentage < opts.WeaknessPercent ||
			(s.percentage < opts.SecondaryWeaknessPercent && s.multiplier >= opts.SecondaryWeaknessMultiplier) {
			qualified = append(qualified, s)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].multiplier > qualified[j].multiplier
	})

	var out []string
	for _, s := range qualified {
		out = append(out, fmt.Sprintf("%s: below expected level (%.0f%%)", s.category.Name, s.percentage))
	}
	return out
}

// categoryRecommendations produces prioritized suggestions for every
// category below the strength threshold. Priority is gap times relevance:
// (100 - percentage) * multiplier. Question-level recommendation templates
// from non-compliant answers join the same ranking at their category's
// priority.
func categoryRecommendations(b *bank.Bank, standings []categoryStanding, evals []Evaluation, opts Options) []Recommendation {
	priorities := make(map[string]float64, len(standings))

	var scored []scoredRecommendation
	for _, s := range standings {
		if !s.active || s.percentage >= opts.StrengthPercent {
			continue
		}
		priority := (100 - s.percentage) * s.multiplier
		priorities[s.category.ID] = priority

		suggestion := s.category.Recommendation
		if suggestion == "" {
			suggestion = fmt.Sprintf("review and strengthen %s practices", strings.ToLower(s.category.Name))
		}
		scored = append(scored, scoredRecommendation{
			rec: Recommendation{
				Area:       s.category.Name,
				Suggestion: suggestion,
				Priority:   priorityLabel(s.multiplier, opts),
			},
			priority: priority,
		})
	}

	for _, ev := range evals {
		if ev.Outcome != OutcomeScored || ev.Compliant {
			continue
		}
		q, ok := b.Question(ev.QuestionID)
		if !ok || q.Recommendation == "" {
			continue
		}
		priority, active := priorities[q.Category]
		if !active {
			continue
		}
		area := q.Category
		if c, ok := b.Category(q.Category); ok {
			area = c.Name
		}
		mult := 1.0
		for _, s := range standings {
			if s.category.ID == q.Category {
				mult = s.multiplier
				break
			}
		}
		scored = append(scored, scoredRecommendation{
			rec: Recommendation{
				Area:       area,
				Suggestion: q.Recommendation,
				Priority:   priorityLabel(mult, opts),
			},
			priority: priority,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].priority > scored[j].priority
	})

	out := make([]Recommendation, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.rec)
	}
	return out
}

// applyOverrides runs the answer-level override table after the category
// pass. Matches are appended to the corresponding list.
func applyOverrides(b *bank.Bank, in Insights, answers Answers, opts Options) Insights {
	for _, o := range b.Overrides {
		raw, answered := answers[o.Question]
		if !answered {
			continue
		}
		token, ok := answerToken(raw)
		if !ok || !strings.EqualFold(token, o.Answer) {
			continue
		}

		switch o.Kind {
		case types.InsightStrength:
			in.Strengths = append(in.Strengths, o.Text)
		case types.InsightWeakness:
			in.Weaknesses = append(in.Weaknesses, o.Text)
		case types.InsightRecommendation:
			priority := o.Priority
			if priority == "" {
				priority = types.PriorityHigh
			}
			area := o.Question
			if q, ok := b.Question(o.Question); ok {
				if c, ok := b.Category(q.Category); ok {
					area = c.Name
				}
			}
			in.Recommendations = append(in.Recommendations, Recommendation{
				Area:       area,
				Suggestion: o.Text,
				Priority:   priority,
			})
		}
	}
	return in
}

func priorityLabel(multiplier float64, opts Options) string {
	if multiplier >= opts.PriorityCutoff {
		return types.PriorityHigh
	}
	return types.PriorityNormal
}

func truncate(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
