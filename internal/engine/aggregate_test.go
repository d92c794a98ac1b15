package engine

import (
	"testing"

	"github.com/dotcommander/assay/internal/bank"
)

func TestAggregateCategories(t *testing.T) {
	b := &bank.Bank{
		ID: "test",
		Categories: []bank.Category{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
		},
	}
	evals := []Evaluation{
		{QuestionID: "q1", Category: "a", Outcome: OutcomeScored, Score: 10, MinScore: -10, MaxScore: 10},
		{QuestionID: "q2", Category: "a", Outcome: OutcomeScored, Score: -10, MinScore: -10, MaxScore: 10},
		{QuestionID: "q3", Category: "a", Outcome: OutcomeInvalid},
		{QuestionID: "q4", Category: "a", Outcome: OutcomeExcluded},
	}

	scores := aggregateCategories(b, evals)

	a := scores["a"]
	if a.RawScore != 0 {
		t.Errorf("a.RawScore = %v, want 0", a.RawScore)
	}
	if a.Percentage != 50 {
		t.Errorf("a.Percentage = %v, want 50: raw 0 in [-20,20]", a.Percentage)
	}
	if !a.Active() {
		t.Error("a must be active")
	}

	if scores["b"].Active() {
		t.Error("b had no evaluations and must be inactive")
	}
	if scores["b"].Percentage != 0 {
		t.Errorf("b.Percentage = %v, want 0", scores["b"].Percentage)
	}
}

func TestCombineWeighted(t *testing.T) {
	b := &bank.Bank{
		ID: "test",
		Categories: []bank.Category{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
			{ID: "c", Name: "C"},
		},
		Weights: bank.WeightMatrix{
			"a": {"finance": 2.0},
			"b": {"finance": 0.5},
		},
	}

	tests := []struct {
		name    string
		scores  map[string]CategoryScore
		context string
		want    float64
		wantOK  bool
	}{
		{
			name: "unweighted mean without a context",
			scores: map[string]CategoryScore{
				"a": {Percentage: 50, MaxScore: 20, MinScore: -20},
				"b": {Percentage: 100, MaxScore: 10, MinScore: -10},
			},
			want:   75,
			wantOK: true,
		},
		{
			name: "context multipliers bias the mean",
			scores: map[string]CategoryScore{
				"a": {Percentage: 50, MaxScore: 20, MinScore: -20},
				"b": {Percentage: 100, MaxScore: 10, MinScore: -10},
			},
			context: "finance",
			// (50*2 + 100*0.5) / 2.5
			want:   60,
			wantOK: true,
		},
		{
			name: "inactive categories drop from both sums",
			scores: map[string]CategoryScore{
				"a": {Percentage: 50, MaxScore: 20, MinScore: -20},
				"b": {},
				"c": {},
			},
			want:   50,
			wantOK: true,
		},
		{
			name:   "no active category at all",
			scores: map[string]CategoryScore{"a": {}, "b": {}, "c": {}},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := combineWeighted(b, tt.scores, tt.context)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("combineWeighted() = %v, want %v", got, tt.want)
			}
		})
	}
}
