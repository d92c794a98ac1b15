// Package bank defines the static question bank configuration: questions,
// categories, the per-context weight matrix, and the maturity tier ladder.
// Banks are loaded once at startup and never mutated, so they are safe for
// unsynchronized concurrent reads.
package bank

import "strings"

// QuestionType identifies the scoring rule applied to a question.
type QuestionType string

const (
	TypeChoice       QuestionType = "CHOICE"
	TypeScale        QuestionType = "SCALE"
	TypeYesNo        QuestionType = "YES_NO"
	TypeYesNoNA      QuestionType = "YES_NO_NA"
	TypeYesPartialNo QuestionType = "YES_PARTIAL_NO"
	TypeMultiCheck   QuestionType = "MULTI_CHECK"
)

// questionTypes is the closed set of known types. Validation rejects
// anything outside it; the evaluator still degrades gracefully if a
// bank bypasses validation.
var questionTypes = map[QuestionType]bool{
	TypeChoice:       true,
	TypeScale:        true,
	TypeYesNo:        true,
	TypeYesNoNA:      true,
	TypeYesPartialNo: true,
	TypeMultiCheck:   true,
}

// KnownType reports whether t is one of the supported question types.
func KnownType(t QuestionType) bool {
	return questionTypes[t]
}

// Option is one selectable answer of a CHOICE question. Score is an
// absolute point value, not a delta. Compliant, when set, overrides the
// threshold-based compliance rule for this option.
type Option struct {
	Value     string  `yaml:"value" json:"value"`
	Label     string  `yaml:"label" json:"label"`
	Score     float64 `yaml:"score" json:"score"`
	Compliant *bool   `yaml:"compliant,omitempty" json:"compliant,omitempty"`
}

// SubItem is one checkable entry of a MULTI_CHECK question.
type SubItem struct {
	ID     string  `yaml:"id" json:"id"`
	Label  string  `yaml:"label" json:"label"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// Question is a single immutable assessment item. The Type tag selects
// which payload fields are meaningful; Validate enforces that the right
// ones are present.
type Question struct {
	ID       string       `yaml:"id" json:"id"`
	Category string       `yaml:"category" json:"category"`
	Type     QuestionType `yaml:"type" json:"type"`
	Text     string       `yaml:"text" json:"text"`
	Weight   float64      `yaml:"weight" json:"weight"`

	// CHOICE payload.
	Options  []Option `yaml:"options,omitempty" json:"options,omitempty"`
	MaxScore float64  `yaml:"maxScore,omitempty" json:"maxScore,omitempty"`

	// YES_NO / YES_NO_NA / YES_PARTIAL_NO payload.
	CorrectAnswer string `yaml:"correctAnswer,omitempty" json:"correctAnswer,omitempty"`
	SanctionLevel string `yaml:"sanctionLevel,omitempty" json:"sanctionLevel,omitempty"`
	Article       string `yaml:"article,omitempty" json:"article,omitempty"`

	// MULTI_CHECK payload.
	Items []SubItem `yaml:"items,omitempty" json:"items,omitempty"`

	// ComplianceThreshold is the minimum score considered compliant when
	// no explicit per-option flag applies. Defaults to 0.
	ComplianceThreshold float64 `yaml:"complianceThreshold,omitempty" json:"complianceThreshold,omitempty"`

	// Recommendation is emitted verbatim when the question scores below
	// its compliance threshold.
	Recommendation string `yaml:"recommendation,omitempty" json:"recommendation,omitempty"`
}

// EffectiveWeight returns the question weight with the 1.0 default applied.
func (q *Question) EffectiveWeight() float64 {
	if q.Weight == 0 {
		return 1.0
	}
	return q.Weight
}

// ChoiceMax returns the maximum attainable score of a CHOICE question:
// the declared maxScore if present, otherwise the highest option score.
func (q *Question) ChoiceMax() float64 {
	if q.MaxScore > 0 {
		return q.MaxScore
	}
	max := 0.0
	for i, opt := range q.Options {
		if i == 0 || opt.Score > max {
			max = opt.Score
		}
	}
	return max
}

// ChoiceMin returns the lowest option score of a CHOICE question. Option
// scores are absolute, so this is usually 0 but may be negative.
func (q *Question) ChoiceMin() float64 {
	min := 0.0
	for i, opt := range q.Options {
		if i == 0 || opt.Score < min {
			min = opt.Score
		}
	}
	return min
}

// SubItemTotal returns the sum of all sub-item weights of a MULTI_CHECK
// question.
func (q *Question) SubItemTotal() float64 {
	var total float64
	for _, it := range q.Items {
		total += it.Weight
	}
	return total
}

// FindOption returns the option whose value matches token, case-insensitively.
func (q *Question) FindOption(token string) (Option, bool) {
	for _, opt := range q.Options {
		if strings.EqualFold(opt.Value, token) {
			return opt, true
		}
	}
	return Option{}, false
}

// Category groups questions for aggregation. Question membership is derived
// from Question.Category; the bank preserves declaration order for
// deterministic output.
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Recommendation is the category-level suggestion template used when
	// the category scores below the strength threshold.
	Recommendation string `yaml:"recommendation,omitempty" json:"recommendation,omitempty"`
}

// Tier is one rung of the maturity ladder. Tiers are matched from highest
// threshold down; the floor tier must have Threshold == 0.
type Tier struct {
	Threshold   float64 `yaml:"threshold" json:"threshold"`
	Label       string  `yaml:"label" json:"label"`
	Class       string  `yaml:"class" json:"class"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
}

// Override injects an insight keyed on a single high-signal answer,
// independent of category aggregates.
type Override struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
	Kind     string `yaml:"kind" json:"kind"` // strength, weakness, recommendation
	Text     string `yaml:"text" json:"text"`
	Priority string `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// WeightMatrix maps category id -> context -> importance multiplier.
// Missing entries default to 1.0. Multipliers scale importance, never
// score sign.
type WeightMatrix map[string]map[string]float64

// Multiplier returns the weight for a category under the given context,
// falling back to 1.0 for unknown categories or contexts.
func (m WeightMatrix) Multiplier(category, context string) float64 {
	if byContext, ok := m[category]; ok {
		if mult, ok := byContext[context]; ok {
			return mult
		}
	}
	return 1.0
}

// Bank is a complete, immutable assessment definition for one business
// domain.
type Bank struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Categories  []Category   `yaml:"categories" json:"categories"`
	Questions   []Question   `yaml:"questions" json:"questions"`
	Weights     WeightMatrix `yaml:"weights,omitempty" json:"weights,omitempty"`
	Tiers       []Tier       `yaml:"tiers" json:"tiers"`
	Overrides   []Override   `yaml:"overrides,omitempty" json:"overrides,omitempty"`

	// SanctionNotes maps a sanction level to the message suffix attached
	// to violations at that level. Message templates are data, not logic;
	// banks may localize them.
	SanctionNotes map[string]string `yaml:"sanctionNotes,omitempty" json:"sanctionNotes,omitempty"`
}

// Question returns the question with the given id.
func (b *Bank) Question(id string) (*Question, bool) {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			return &b.Questions[i], true
		}
	}
	return nil, false
}

// Category returns the category with the given id.
func (b *Bank) Category(id string) (*Category, bool) {
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i], true
		}
	}
	return nil, false
}

// CategoryQuestions returns the questions belonging to a category, in
// declaration order.
func (b *Bank) CategoryQuestions(categoryID string) []*Question {
	var out []*Question
	for i := range b.Questions {
		if b.Questions[i].Category == categoryID {
			out = append(out, &b.Questions[i])
		}
	}
	return out
}

// SanctionNote returns the configured note for a sanction level, falling
// back to the built-in defaults.
func (b *Bank) SanctionNote(level string) string {
	if note, ok := b.SanctionNotes[level]; ok {
		return note
	}
	return defaultSanctionNotes[level]
}

// defaultSanctionNotes are used when a bank does not configure its own.
var defaultSanctionNotes = map[string]string{
	"low":    "minor finding; remediate during the next review cycle",
	"medium": "notable gap; remediation should be planned",
	"high":   "critical gap; immediate remediation required",
}
