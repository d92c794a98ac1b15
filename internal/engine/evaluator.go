package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/types"
)

// Outcome classifies how a single answer participated in scoring.
type Outcome int

const (
	// OutcomeScored means the answer contributed to both the numerator
	// and the denominator of its category.
	OutcomeScored Outcome = iota
	// OutcomeExcluded means the answer is valid but excluded from the
	// category denominator (YES_NO_NA answered "na").
	OutcomeExcluded
	// OutcomeInvalid means the answer value did not match the question's
	// expected shape. It is excluded from scoring entirely and reported
	// separately.
	OutcomeInvalid
)

// Evaluation is the result of scoring one question against one answer.
type Evaluation struct {
	QuestionID string
	Category   string
	Outcome    Outcome
	Score      float64
	MinScore   float64 // lowest score the answer could have produced
	MaxScore   float64 // highest score the answer could have produced
	Compliant  bool
	Message    string
}

// invalid builds an invalid-answer result. The evaluator never fails on
// malformed input; it records the defect and moves on.
func invalid(q *bank.Question, format string, args ...any) Evaluation {
	return Evaluation{
		QuestionID: q.ID,
		Category:   q.Category,
		Outcome:    OutcomeInvalid,
		Message:    fmt.Sprintf(format, args...),
	}
}

// EvaluateAnswer scores one question against one raw answer value. It is a
// pure, total function: a well-formed question never causes an error, and
// malformed answers produce an invalid result instead of aborting the
// assessment.
func EvaluateAnswer(b *bank.Bank, q *bank.Question, raw any) Evaluation {
	switch q.Type {
	case bank.TypeChoice:
		return evaluateChoice(q, raw)
	case bank.TypeScale:
		return evaluateScale(q, raw)
	case bank.TypeYesNo:
		return evaluateBinary(b, q, raw, false)
	case bank.TypeYesNoNA:
		return evaluateBinary(b, q, raw, true)
	case bank.TypeYesPartialNo:
		return evaluatePartial(b, q, raw)
	case bank.TypeMultiCheck:
		return evaluateMultiCheck(q, raw)
	default:
		// Unknown type slipped past validation. Score zero but keep the
		// question in the scoring range so the category percentage is not
		// silently inflated.
		return Evaluation{
			QuestionID: q.ID,
			Category:   q.Category,
			Outcome:    OutcomeScored,
			Score:      0,
			MinScore:   0,
			MaxScore:   q.EffectiveWeight(),
			Compliant:  false,
			Message:    fmt.Sprintf("invalid question: unknown type %q", q.Type),
		}
	}
}

func evaluateChoice(q *bank.Question, raw any) Evaluation {
	token, ok := answerToken(raw)
	if !ok {
		return invalid(q, "expected an option value, got %T", raw)
	}
	opt, found := q.FindOption(token)
	if !found {
		return invalid(q, "unknown option %q", token)
	}

	compliant := opt.Score >= q.ComplianceThreshold
	if opt.Compliant != nil {
		compliant = *opt.Compliant
	}
	msg := ""
	if !compliant {
		msg = fmt.Sprintf("selected %q", opt.Label)
	}
	return Evaluation{
		QuestionID: q.ID,
		Category:   q.Category,
		Outcome:    OutcomeScored,
		Score:      opt.Score,
		MinScore:   q.ChoiceMin(),
		MaxScore:   q.ChoiceMax(),
		Compliant:  compliant,
		Message:    msg,
	}
}

func evaluateScale(q *bank.Question, raw any) Evaluation {
	value, ok := answerInt(raw)
	if !ok {
		return invalid(q, "expected an integer in [1,10], got %v", raw)
	}
	if value < 1 || value > 10 {
		return invalid(q, "value %d out of range [1,10]", value)
	}

	score := float64(value-1) / 9.0 * q.MaxScore
	return Evaluation{
		QuestionID: q.ID,
		Category:   q.Category,
		Outcome:    OutcomeScored,
		Score:      score,
		MinScore:   0,
		MaxScore:   q.MaxScore,
		Compliant:  score >= q.ComplianceThreshold,
	}
}

func evaluateBinary(b *bank.Bank, q *bank.Question, raw any, allowNA bool) Evaluation {
	token, ok := answerToken(raw)
	if !ok {
		return invalid(q, "expected an answer token, got %T", raw)
	}
	weight := q.EffectiveWeight()

	if allowNA && strings.EqualFold(token, "na") {
		// Not applicable: neutral score, compliant, and excluded from the
		// category denominator so it does not dilute the percentage.
		return Evaluation{
			QuestionID: q.ID,
			Category:   q.Category,
			Outcome:    OutcomeExcluded,
			Score:      0,
			MaxScore:   0,
			Compliant:  true,
		}
	}

	if strings.EqualFold(token, q.CorrectAnswer) {
		return Evaluation{
			QuestionID: q.ID,
			Category:   q.Category,
			Outcome:    OutcomeScored,
			Score:      weight,
			MinScore:   -weight,
			MaxScore:   weight,
			Compliant:  true,
		}
	}
	return Evaluation{
		QuestionID: q.ID,
		Category:   q.Category,
		Outcome:    OutcomeScored,
		Score:      -weight,
		MinScore:   -weight,
		MaxScore:   weight,
		Compliant:  false,
		Message:    violationMessage(b, q),
	}
}

func evaluatePartial(b *bank.Bank, q *bank.Question, raw any) Evaluation {
	token, ok := answerToken(raw)
	if !ok {
		return invalid(q, "expected an answer token, got %T", raw)
	}
	weight := q.EffectiveWeight()

	ev := Evaluation{
		QuestionID: q.ID,
		Category:   q.Category,
		Outcome:    OutcomeScored,
		MinScore:   -weight,
		MaxScore:   weight,
	}
	switch {
	case strings.EqualFold(token, q.CorrectAnswer) || strings.EqualFold(token, "yes"):
		ev.Score = weight
		ev.Compliant = true
	case strings.EqualFold(token, "partial"):
		ev.Score = -weight * 0.5
		ev.Compliant = false
		ev.Message = "partial implementation; " + violationMessage(b, q)
	default:
		ev.Score = -weight
		ev.Compliant = false
		ev.Message = violationMessage(b, q)
	}
	return ev
}

func evaluateMultiCheck(q *bank.Question, raw any) Evaluation {
	checked, ok := answerSet(raw)
	if !ok {
		return invalid(q, "expected a list of checked item ids, got %T", raw)
	}
	for id := range checked {
		known := false
		for _, it := range q.Items {
			if it.ID == id {
				known = true
				break
			}
		}
		if !known {
			return invalid(q, "unknown sub-item %q", id)
		}
	}

	var score float64
	var missing []string
	for _, it := range q.Items {
		if checked[it.ID] {
			score += it.Weight
		} else {
			score -= it.Weight
			missing = append(missing, it.Label)
		}
	}

	msg := ""
	if len(missing) > 0 {
		msg = "missing: " + strings.Join(missing, ", ")
	}
	// A fully-unchecked question reaches the same negative magnitude a
	// fully-checked one reaches positive, making the effective denominator
	// twice the sub-weight total. Historical assessments depend on this
	// exact range; do not normalize it.
	total := q.SubItemTotal()
	return Evaluation{
		QuestionID: q.ID,
		Category:   q.Category,
		Outcome:    OutcomeScored,
		Score:      score,
		MinScore:   -total,
		MaxScore:   total,
		Compliant:  len(missing) == 0,
		Message:    msg,
	}
}

// violationMessage builds the explanatory text for a non-compliant binary
// answer: the cited article plus the sanction-level-conditioned suffix.
func violationMessage(b *bank.Bank, q *bank.Question) string {
	note := b.SanctionNote(q.SanctionLevel)
	if q.Article == "" {
		return note
	}
	if note == "" {
		return fmt.Sprintf("non-compliant with %s", q.Article)
	}
	return fmt.Sprintf("non-compliant with %s: %s", q.Article, note)
}

// Severity returns the violation severity for a question, defaulting to
// medium when no sanction level is configured.
func Severity(q *bank.Question) string {
	if types.ValidSeverity(q.SanctionLevel) {
		return q.SanctionLevel
	}
	return types.SeverityMedium
}

// answerToken coerces a raw answer into a string token.
func answerToken(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// answerInt coerces a raw answer into an integer. JSON numbers arrive as
// float64; only whole values are accepted.
func answerInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// answerSet coerces a raw answer into a set of checked sub-item ids.
func answerSet(raw any) (map[string]bool, bool) {
	set := make(map[string]bool)
	switch v := raw.(type) {
	case []string:
		for _, s := range v {
			set[s] = true
		}
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			set[s] = true
		}
	default:
		return nil, false
	}
	return set, true
}
