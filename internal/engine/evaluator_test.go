package engine

import (
	"strings"
	"testing"

	"github.com/dotcommander/assay/internal/bank"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestEvaluateAnswer_YesNo(t *testing.T) {
	b := &bank.Bank{ID: "test"}
	q := &bank.Question{
		ID:            "q1",
		Category:      "cat",
		Type:          bank.TypeYesNo,
		Weight:        10,
		CorrectAnswer: "yes",
		SanctionLevel: "high",
	}

	tests := []struct {
		name          string
		answer        any
		wantOutcome   Outcome
		wantScore     float64
		wantCompliant bool
	}{
		{"correct answer scores full weight", "yes", OutcomeScored, 10, true},
		{"correct answer is case-insensitive", "YES", OutcomeScored, 10, true},
		{"incorrect answer scores negative weight", "no", OutcomeScored, -10, false},
		{"na is not special for plain yes/no", "na", OutcomeScored, -10, false},
		{"non-string answer is invalid", 7, OutcomeInvalid, 0, false},
		{"empty string is invalid", "", OutcomeInvalid, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EvaluateAnswer(b, q, tt.answer)
			if ev.Outcome != tt.wantOutcome {
				t.Fatalf("Outcome = %v, want %v", ev.Outcome, tt.wantOutcome)
			}
			if ev.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", ev.Score, tt.wantScore)
			}
			if ev.Compliant != tt.wantCompliant {
				t.Errorf("Compliant = %v, want %v", ev.Compliant, tt.wantCompliant)
			}
			if tt.wantOutcome == OutcomeScored && (ev.MinScore != -10 || ev.MaxScore != 10) {
				t.Errorf("score range = [%v,%v], want [-10,10]", ev.MinScore, ev.MaxScore)
			}
		})
	}
}

func TestEvaluateAnswer_YesNoNA(t *testing.T) {
	b := &bank.Bank{ID: "test"}
	q := &bank.Question{
		ID:            "q1",
		Category:      "cat",
		Type:          bank.TypeYesNoNA,
		Weight:        6,
		CorrectAnswer: "yes",
	}

	t.Run("na is excluded from scoring", func(t *testing.T) {
		ev := EvaluateAnswer(b, q, "na")
		if ev.Outcome != OutcomeExcluded {
			t.Fatalf("Outcome = %v, want OutcomeExcluded", ev.Outcome)
		}
		if ev.Score != 0 || ev.MinScore != 0 || ev.MaxScore != 0 {
			t.Errorf("na must contribute nothing, got score=%v range=[%v,%v]", ev.Score, ev.MinScore, ev.MaxScore)
		}
		if !ev.Compliant {
			t.Error("na must not register as a violation")
		}
	})

	t.Run("yes and no score like a plain binary", func(t *testing.T) {
		if ev := EvaluateAnswer(b, q, "yes"); ev.Score != 6 {
			t.Errorf("yes: Score = %v, want 6", ev.Score)
		}
		if ev := EvaluateAnswer(b, q, "no"); ev.Score != -6 {
			t.Errorf("no: Score = %v, want -6", ev.Score)
		}
	})
}

func TestEvaluateAnswer_YesPartialNo(t *testing.T) {
	b := &bank.Bank{ID: "test"}
	q := &bank.Question{
		ID:            "q1",
		Category:      "cat",
		Type:          bank.TypeYesPartialNo,
		Weight:        10,
		CorrectAnswer: "yes",
		Article:       "Art. 32",
	}

	tests := []struct {
		name          string
		answer        string
		wantScore     float64
		wantCompliant bool
	}{
		{"yes scores full weight", "yes", 10, true},
		{"partial scores negative half weight", "partial", -5, false},
		{"no scores negative weight", "no", -10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EvaluateAnswer(b, q, tt.answer)
			if ev.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", ev.Score, tt.wantScore)
			}
			if ev.Compliant != tt.wantCompliant {
				t.Errorf("Compliant = %v, want %v", ev.Compliant, tt.wantCompliant)
			}
		})
	}

	t.Run("partial message cites the article", func(t *testing.T) {
		ev := EvaluateAnswer(b, q, "partial")
		if !strings.Contains(ev.Message, "partial implementation") {
			t.Errorf("Message = %q, want partial-implementation prefix", ev.Message)
		}
		if !strings.Contains(ev.Message, "Art. 32") {
			t.Errorf("Message = %q, want article citation", ev.Message)
		}
	})
}

func TestEvaluateAnswer_Scale(t *testing.T) {
	b := &bank.Bank{ID: "test"}
	q := &bank.Question{
		ID:       "q1",
		Category: "cat",
		Type:     bank.TypeScale,
		MaxScore: 9,
	}

	tests := []struct {
		name        string
		answer      any
		wantOutcome Outcome
		wantScore   float64
	}{
		{"lowest value scores zero", 1, OutcomeScored, 0},
		{"highest value scores maxScore", 10, OutcomeScored, 9},
		{"midpoint maps linearly", 4, OutcomeScored, 3},
		{"json numbers arrive as float64", float64(10), OutcomeScored, 9},
		{"zero is out of range", 0, OutcomeInvalid, 0},
		{"eleven is out of range", 11, OutcomeInvalid, 0},
		{"fractional values are rejected", 5.5, OutcomeInvalid, 0},
		{"strings are rejected", "7", OutcomeInvalid, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EvaluateAnswer(b, q, tt.answer)
			if ev.Outcome != tt.wantOutcome {
				t.Fatalf("Outcome = %v, want %v", ev.Outcome, tt.wantOutcome)
			}
			if ev.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", ev.Score, tt.wantScore)
			}
		})
	}
}

func TestEvaluateAnswer_Choice(t *testing.T) {
	b := &bank.Bank{ID: "test"}
	q := &bank.Question{
		ID:       "q1",
		Category: "cat",
		Type:     bank.TypeChoice,
		Options: []bank.Option{
			{Value: "none", Label: "No process", Score: 0},
			{Value: "adhoc", Label: "Ad hoc", Score: 4},
			{Value: "formal", Label: "Formal process", Score: 10},
		},
		ComplianceThreshold: 5,
	}

	tests := []struct {
		name          string
		answer        string
		wantScore     float64
		wantCompliant bool
	}{
		{"top option scores its absolute value", "formal", 10, true},
		{"mid option below threshold is non-compliant", "adhoc", 4, false},
		{"bottom option scores zero", "none", 0, false},
		{"option matching is case-insensitive", "FORMAL", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EvaluateAnswer(b, q, tt.answer)
			if ev.Outcome != OutcomeScored {
				t.Fatalf("Outcome = %v, want OutcomeScored", ev.Outcome)
			}
			if ev.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", ev.Score, tt.wantScore)
			}
			if ev.Compliant != tt.wantCompliant {
				t.Errorf("Compliant = %v, want %v", ev.Compliant, tt.wantCompliant)
			}
			if ev.MinScore != 0 || ev.MaxScore != 10 {
				t.Errorf("score range = [%v,%v], want [0,10]", ev.MinScore, ev.MaxScore)
			}
		})
	}

	t.Run("unknown option is invalid", func(t *testing.T) {
		ev := EvaluateAnswer(b, q, "nonexistent")
		if ev.Outcome != OutcomeInvalid {
			t.Fatalf("Outcome = %v, want OutcomeInvalid", ev.Outcome)
		}
		if !strings.Contains(ev.Message, "nonexistent") {
			t.Errorf("Message = %q, want the offending option named", ev.Message)
		}
	})

	t.Run("explicit compliant flag overrides the threshold", func(t *testing.T) {
		flagged := *q
		flagged.Options = []bank.Option{
			{Value: "waived", Label: "Formally waived", Score: 0, Compliant: boolPtr(true)},
		}
		ev := EvaluateAnswer(b, &flagged, "waived")
		if !ev.Compliant {
			t.Error("explicit compliant=true must win over the score threshold")
		}
	})
}

func TestEvaluateAnswer_MultiCheck(t *testing.T) {
	b := &bank.Bank{ID: "test"}
	q := &bank.Question{
		ID:       "q1",
		Category: "cat",
		Type:     bank.TypeMultiCheck,
		Items: []bank.SubItem{
			{ID: "logging", Label: "Central logging", Weight: 3},
			{ID: "oncall", Label: "On-call rotation", Weight: 2},
			{ID: "drills", Label: "Incident drills", Weight: 3},
		},
	}

	tests := []struct {
		name          string
		answer        any
		wantScore     float64
		wantCompliant bool
	}{
		{"all checked reaches positive total", []string{"logging", "oncall", "drills"}, 8, true},
		{"none checked reaches negative total", []string{}, -8, false},
		{"partial check nets checked minus unchecked", []string{"logging", "oncall"}, 3 + 2 - 3, false},
		{"json lists arrive as []any", []any{"logging", "oncall", "drills"}, 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EvaluateAnswer(b, q, tt.answer)
			if ev.Outcome != OutcomeScored {
				t.Fatalf("Outcome = %v, want OutcomeScored", ev.Outcome)
			}
			if ev.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", ev.Score, tt.wantScore)
			}
			if ev.Compliant != tt.wantCompliant {
				t.Errorf("Compliant = %v, want %v", ev.Compliant, tt.wantCompliant)
			}
			if ev.MinScore != -8 || ev.MaxScore != 8 {
				t.Errorf("score range = [%v,%v], want [-8,8]", ev.MinScore, ev.MaxScore)
			}
		})
	}

	t.Run("half-checked by weight scores zero", func(t *testing.T) {
		even := *q
		even.Items = []bank.SubItem{
			{ID: "a", Label: "A", Weight: 2},
			{ID: "b", Label: "B", Weight: 2},
		}
		ev := EvaluateAnswer(b, &even, []string{"a"})
		if ev.Score != 0 {
			t.Errorf("Score = %v, want 0", ev.Score)
		}
	})

	t.Run("symmetric extremes", func(t *testing.T) {
		full := EvaluateAnswer(b, q, []string{"logging", "oncall", "drills"})
		empty := EvaluateAnswer(b, q, []string{})
		if full.Score != -empty.Score {
			t.Errorf("fully checked %v and fully unchecked %v must be symmetric", full.Score, empty.Score)
		}
	})

	t.Run("missing items are listed in the message", func(t *testing.T) {
		ev := EvaluateAnswer(b, q, []string{"logging"})
		if !strings.Contains(ev.Message, "On-call rotation") || !strings.Contains(ev.Message, "Incident drills") {
			t.Errorf("Message = %q, want both missing labels", ev.Message)
		}
	})

	t.Run("unknown sub-item is invalid", func(t *testing.T) {
		ev := EvaluateAnswer(b, q, []string{"logging", "siem"})
		if ev.Outcome != OutcomeInvalid {
			t.Fatalf("Outcome = %v, want OutcomeInvalid", ev.Outcome)
		}
	})

	t.Run("non-list answer is invalid", func(t *testing.T) {
		ev := EvaluateAnswer(b, q, "logging")
		if ev.Outcome != OutcomeInvalid {
			t.Fatalf("Outcome = %v, want OutcomeInvalid", ev.Outcome)
		}
	})
}

func TestEvaluateAnswer_UnknownType(t *testing.T) {
	b := &bank.Bank{ID: "test"}
	q := &bank.Question{
		ID:       "q1",
		Category: "cat",
		Type:     "LIKERT",
		Weight:   5,
	}

	ev := EvaluateAnswer(b, q, "whatever")
	if ev.Outcome != OutcomeScored {
		t.Fatalf("Outcome = %v, want OutcomeScored", ev.Outcome)
	}
	if ev.Score != 0 {
		t.Errorf("Score = %v, want 0", ev.Score)
	}
	if ev.MaxScore != 5 {
		t.Errorf("MaxScore = %v, want 5: unknown types must not starve the denominator", ev.MaxScore)
	}
	if ev.Compliant {
		t.Error("unknown type must not pass as compliant")
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  string
	}{
		{"configured high", "high", "high"},
		{"configured low", "low", "low"},
		{"empty defaults to medium", "", "medium"},
		{"unknown defaults to medium", "catastrophic", "medium"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &bank.Question{SanctionLevel: tt.level}
			if got := Severity(q); got != tt.want {
				t.Errorf("Severity() = %q, want %q", got, tt.want)
			}
		})
	}
}
