package engine

import "errors"

var (
	// ErrEmptyAnswerSet rejects an evaluation with zero answers. A
	// zero-question assessment has no meaningful maturity classification,
	// so this is surfaced as an error rather than a degenerate report.
	ErrEmptyAnswerSet = errors.New("empty answer set")

	// ErrNoScorableAnswers rejects an evaluation where every supplied
	// answer was invalid or excluded, leaving no active category.
	ErrNoScorableAnswers = errors.New("no scorable answers")
)
