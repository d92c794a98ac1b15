package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/config"
	"github.com/dotcommander/assay/internal/engine"
	"github.com/dotcommander/assay/internal/outputters"
)

var (
	answersFile string
	contextKey  string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <bank-id>",
	Short: "Score an answer set against a question bank",
	Long: `Evaluate reads a JSON answer map (question id to raw answer), scores it
against the named bank, and renders the assessment report.

Answer values are type-tagged per question: a string token for CHOICE and
the YES_NO family, an integer 1-10 for SCALE, and a list of checked
sub-item ids for MULTI_CHECK. Use '-' to read answers from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvaluate(args[0])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringVarP(&answersFile, "answers", "a", "", "Path to the JSON answers file, or '-' for stdin (required)")
	evaluateCmd.Flags().StringVarP(&contextKey, "context", "c", "", "Weight matrix context key (e.g. an industry code)")
	evaluateCmd.MarkFlagRequired("answers")
}

func runEvaluate(bankID string) error {
	cfg, err := config.LoadConfig(banksDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	registry, err := bank.LoadDir(cfg.BanksDir)
	if err != nil {
		return fmt.Errorf("error loading banks: %w", err)
	}

	b, ok := registry.Get(bankID)
	if !ok {
		return fmt.Errorf("unknown bank %q (available: %s)", bankID, strings.Join(registry.IDs(), ", "))
	}

	answers, err := readAnswers(answersFile)
	if err != nil {
		return err
	}

	report, err := engine.Evaluate(b, contextKey, answers, engine.Options{
		MaxStrengths:       cfg.Insights.MaxStrengths,
		MaxWeaknesses:      cfg.Insights.MaxWeaknesses,
		MaxRecommendations: cfg.Insights.MaxRecommendations,
		PriorityCutoff:     cfg.Insights.PriorityCutoff,
	})
	if err != nil {
		if errors.Is(err, engine.ErrEmptyAnswerSet) {
			return fmt.Errorf("the answers file contains no answers; nothing to assess")
		}
		if errors.Is(err, engine.ErrNoScorableAnswers) {
			return fmt.Errorf("no answer could be scored; check the answer values against the bank")
		}
		return fmt.Errorf("error evaluating: %w", err)
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, b, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

// readAnswers loads the answer map from a JSON file or stdin.
func readAnswers(path string) (engine.Answers, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}

	var answers engine.Answers
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("error parsing answers JSON: %w", err)
	}
	return answers, nil
}
