package bank

import (
	"fmt"

	"github.com/dotcommander/assay/internal/types"
)

// ConfigError describes a structural defect in a bank definition. A bank
// that fails validation must never be evaluated; these errors indicate a
// deployment defect, not a user mistake.
type ConfigError struct {
	Bank    string
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bank %q: %s: %s", e.Bank, e.Field, e.Message)
	}
	return fmt.Sprintf("bank %q: %s", e.Bank, e.Message)
}

func configErr(bankID, field, format string, args ...any) *ConfigError {
	return &ConfigError{
		Bank:    bankID,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validate checks the structural invariants of a bank. It returns the
// first defect found; a nil return means the bank is safe to evaluate.
func (b *Bank) Validate() error {
	if b.ID == "" {
		return configErr(b.ID, "id", "bank id is required")
	}
	if len(b.Categories) == 0 {
		return configErr(b.ID, "categories", "at least one category is required")
	}
	if len(b.Questions) == 0 {
		return configErr(b.ID, "questions", "at least one question is required")
	}

	categories := make(map[string]bool, len(b.Categories))
	for _, c := range b.Categories {
		if c.ID == "" {
			return configErr(b.ID, "categories", "category id is required")
		}
		if c.Name == "" {
			return configErr(b.ID, "categories", "category %q: name is required", c.ID)
		}
		if categories[c.ID] {
			return configErr(b.ID, "categories", "duplicate category id %q", c.ID)
		}
		categories[c.ID] = true
	}

	questionIDs := make(map[string]bool, len(b.Questions))
	for i := range b.Questions {
		if err := b.validateQuestion(&b.Questions[i], categories, questionIDs); err != nil {
			return err
		}
	}

	if err := b.validateWeights(categories); err != nil {
		return err
	}
	if err := b.validateTiers(); err != nil {
		return err
	}
	return b.validateOverrides(questionIDs)
}

func (b *Bank) validateQuestion(q *Question, categories, seen map[string]bool) error {
	field := fmt.Sprintf("questions[%s]", q.ID)
	if q.ID == "" {
		return configErr(b.ID, "questions", "question id is required")
	}
	if seen[q.ID] {
		return configErr(b.ID, field, "duplicate question id")
	}
	seen[q.ID] = true

	if !categories[q.Category] {
		return configErr(b.ID, field, "unknown category %q", q.Category)
	}
	if q.Weight < 0 {
		return configErr(b.ID, field, "weight must not be negative, got %v", q.Weight)
	}
	if !KnownType(q.Type) {
		return configErr(b.ID, field, "unknown question type %q", q.Type)
	}

	switch q.Type {
	case TypeChoice:
		if len(q.Options) < 2 {
			return configErr(b.ID, field, "CHOICE requires at least two options")
		}
		// The maximum attainable score must actually be attainable.
		max := q.ChoiceMax()
		reachable := false
		for _, opt := range q.Options {
			if opt.Value == "" {
				return configErr(b.ID, field, "option value is required")
			}
			if opt.Score == max {
				reachable = true
			}
		}
		if !reachable {
			return configErr(b.ID, field, "no option reaches the declared maxScore %v", q.MaxScore)
		}
	case TypeScale:
		if q.MaxScore <= 0 {
			return configErr(b.ID, field, "SCALE requires a positive maxScore")
		}
	case TypeYesNo, TypeYesNoNA, TypeYesPartialNo:
		if q.CorrectAnswer == "" {
			return configErr(b.ID, field, "%s requires a correctAnswer", q.Type)
		}
		if q.SanctionLevel != "" && !types.ValidSeverity(q.SanctionLevel) {
			return configErr(b.ID, field, "unknown sanctionLevel %q", q.SanctionLevel)
		}
	case TypeMultiCheck:
		if len(q.Items) == 0 {
			return configErr(b.ID, field, "MULTI_CHECK requires at least one item")
		}
		itemIDs := make(map[string]bool, len(q.Items))
		for _, it := range q.Items {
			if it.ID == "" {
				return configErr(b.ID, field, "sub-item id is required")
			}
			if itemIDs[it.ID] {
				return configErr(b.ID, field, "duplicate sub-item id %q", it.ID)
			}
			itemIDs[it.ID] = true
			if it.Weight <= 0 {
				return configErr(b.ID, field, "sub-item %q weight must be positive", it.ID)
			}
		}
	}
	return nil
}

func (b *Bank) validateWeights(categories map[string]bool) error {
	for categoryID, byContext := range b.Weights {
		if !categories[categoryID] {
			return configErr(b.ID, "weights", "unknown category %q", categoryID)
		}
		for context, mult := range byContext {
			if mult <= 0 {
				return configErr(b.ID, "weights",
					"multiplier for %s/%s must be strictly positive, got %v", categoryID, context, mult)
			}
		}
	}
	return nil
}

func (b *Bank) validateTiers() error {
	if len(b.Tiers) == 0 {
		return configErr(b.ID, "tiers", "at least one tier is required")
	}
	hasFloor := false
	seen := make(map[float64]bool, len(b.Tiers))
	for _, t := range b.Tiers {
		if t.Label == "" {
			return configErr(b.ID, "tiers", "tier label is required")
		}
		if t.Threshold < 0 || t.Threshold > 100 {
			return configErr(b.ID, "tiers", "tier %q threshold %v out of range [0,100]", t.Label, t.Threshold)
		}
		if seen[t.Threshold] {
			return configErr(b.ID, "tiers", "duplicate tier threshold %v", t.Threshold)
		}
		seen[t.Threshold] = true
		if t.Threshold == 0 {
			hasFloor = true
		}
	}
	if !hasFloor {
		return configErr(b.ID, "tiers", "the lowest tier must have threshold 0")
	}
	return nil
}

func (b *Bank) validateOverrides(questionIDs map[string]bool) error {
	for _, o := range b.Overrides {
		if !questionIDs[o.Question] {
			return configErr(b.ID, "overrides", "unknown question %q", o.Question)
		}
		if !types.ValidInsightKind(o.Kind) {
			return configErr(b.ID, "overrides", "unknown insight kind %q", o.Kind)
		}
		if o.Text == "" {
			return configErr(b.ID, "overrides", "override text is required")
		}
	}
	return nil
}
