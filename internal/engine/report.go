// Package engine implements the weighted compliance assessment engine: it
// scores an answer set against a question bank, applies context-specific
// importance weighting, classifies the result into a maturity tier and
// derives ranked strengths, weaknesses and recommendations.
//
// The engine is a pure, synchronous computation. Every call is an
// independent function of (bank, context, answers) with no hidden clocks,
// randomness or mutable state, so identical inputs produce byte-identical
// reports and any number of callers may evaluate concurrently against the
// same bank.
package engine

import (
	"math"
	"sort"

	"github.com/dotcommander/assay/internal/bank"
)

// Answers maps question ids to raw answer values. Values are type-tagged
// per question type: a string token for CHOICE and the YES_NO family, an
// integer 1-10 for SCALE, a list of sub-item ids for MULTI_CHECK.
type Answers map[string]any

// Violation records one non-compliant answered question.
type Violation struct {
	QuestionID string `json:"questionId"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Severity   string `json:"severity"`
}

// InvalidAnswer records an answer that did not match its question's
// expected shape. Invalid answers are excluded from scoring but surfaced
// here for caller visibility.
type InvalidAnswer struct {
	QuestionID string `json:"questionId"`
	Message    string `json:"message"`
}

// Report is the immutable output of one evaluation. Persistence,
// versioning and audit stamping are the caller's responsibility; the
// report itself carries no timestamps.
type Report struct {
	BankID          string                   `json:"bankId"`
	Context         string                   `json:"context,omitempty"`
	CategoryScores  map[string]CategoryScore `json:"categoryScores"`
	OverallScore    float64                  `json:"overallScore"`
	Maturity        Maturity                 `json:"maturity"`
	Strengths       []string                 `json:"strengths"`
	Weaknesses      []string                 `json:"weaknesses"`
	Recommendations []Recommendation         `json:"recommendations"`
	Violations      []Violation              `json:"violations,omitempty"`
	InvalidAnswers  []InvalidAnswer          `json:"invalidAnswers,omitempty"`
}

// Evaluate scores one answer set against a bank under the given context
// and assembles the full assessment report. The bank must have passed
// validation; context keys missing from the weight matrix fall back to a
// 1.0 multiplier for every category.
func Evaluate(b *bank.Bank, context string, answers Answers, opts Options) (*Report, error) {
	if len(answers) == 0 {
		return nil, ErrEmptyAnswerSet
	}
	opts = opts.normalized()

	evals := make([]Evaluation, 0, len(answers))
	var invalidAnswers []InvalidAnswer

	// Questions absent from the answer map are simply skipped: they count
	// against neither numerator nor denominator.
	for i := range b.Questions {
		q := &b.Questions[i]
		raw, answered := answers[q.ID]
		if !answered {
			continue
		}
		ev := EvaluateAnswer(b, q, raw)
		if ev.Outcome == OutcomeInvalid {
			invalidAnswers = append(invalidAnswers, InvalidAnswer{QuestionID: ev.QuestionID, Message: ev.Message})
			continue
		}
		evals = append(evals, ev)
	}

	// Answers that reference no bank question are reported, not scored.
	for _, id := range sortedKeys(answers) {
		if _, ok := b.Question(id); !ok {
			invalidAnswers = append(invalidAnswers, InvalidAnswer{QuestionID: id, Message: "unknown question id"})
		}
	}

	scores := aggregateCategories(b, evals)
	overall, ok := combineWeighted(b, scores, context)
	if !ok {
		return nil, ErrNoScorableAnswers
	}
	overall = round2(overall)

	for id, s := range scores {
		s.RawScore = round2(s.RawScore)
		s.Percentage = round2(s.Percentage)
		scores[id] = s
	}

	insights := generateInsights(b, scores, evals, context, answers, opts)

	return &Report{
		BankID:          b.ID,
		Context:         context,
		CategoryScores:  scores,
		OverallScore:    overall,
		Maturity:        classifyMaturity(b.Tiers, overall),
		Strengths:       insights.Strengths,
		Weaknesses:      insights.Weaknesses,
		Recommendations: insights.Recommendations,
		Violations:      collectViolations(b, evals),
		InvalidAnswers:  invalidAnswers,
	}, nil
}

// collectViolations lists every non-compliant answered question with its
// sanction severity and citation text, in bank question order.
func collectViolations(b *bank.Bank, evals []Evaluation) []Violation {
	var out []Violation
	for _, ev := range evals {
		if ev.Outcome != OutcomeScored || ev.Compliant {
			continue
		}
		severity := ""
		if q, ok := b.Question(ev.QuestionID); ok {
			severity = Severity(q)
		}
		out = append(out, Violation{
			QuestionID: ev.QuestionID,
			Category:   ev.Category,
			Message:    ev.Message,
			Severity:   severity,
		})
	}
	return out
}

func sortedKeys(answers Answers) []string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
