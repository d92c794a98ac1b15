// Package output renders assessment reports for console, JSON and
// markdown consumers.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/engine"
	"github.com/dotcommander/assay/internal/types"
)

// ConsoleFormatter renders a report for terminal display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format renders the report to stdout.
func (f *ConsoleFormatter) Format(report *engine.Report, b *bank.Bank) error {
	if f.quiet {
		return nil
	}

	f.printHeader(report, b)
	f.printCategories(report, b)
	f.printInsights(report)
	f.printViolations(report)
	f.printInvalidAnswers(report)
	return nil
}

func (f *ConsoleFormatter) printHeader(report *engine.Report, b *bank.Bank) {
	title := b.Name
	if title == "" {
		title = report.BankID
	}
	fmt.Printf("%s\n", f.style(lipgloss.NewStyle().Bold(true)).Render(title))
	if report.Context != "" {
		fmt.Printf("context: %s\n", report.Context)
	}

	tierStyle := f.style(lipgloss.NewStyle().Bold(true).Foreground(scoreColor(report.OverallScore)))
	fmt.Printf("\n%s  %s\n\n", tierStyle.Render(fmt.Sprintf("%.1f", report.OverallScore)), tierStyle.Render(report.Maturity.Label))
	if report.Maturity.Description != "" {
		fmt.Printf("%s\n\n", report.Maturity.Description)
	}
}

func (f *ConsoleFormatter) printCategories(report *engine.Report, b *bank.Bank) {
	for _, c := range b.Categories {
		s, ok := report.CategoryScores[c.ID]
		if !ok {
			continue
		}
		if !s.Active() {
			if f.verbose {
				fmt.Printf("  %s: not answered\n", c.Name)
			}
			continue
		}
		style := f.style(lipgloss.NewStyle().Foreground(scoreColor(s.Percentage)))
		fmt.Printf("  %s %s (%.1f / %.1f)\n",
			style.Render(fmt.Sprintf("%6.1f%%", s.Percentage)), c.Name, s.RawScore, s.MaxScore)
	}
}

func (f *ConsoleFormatter) printInsights(report *engine.Report) {
	if len(report.Strengths) > 0 {
		fmt.Println("\nStrengths")
		for _, s := range report.Strengths {
			fmt.Printf("  ✓ %s\n", s)
		}
	}
	if len(report.Weaknesses) > 0 {
		fmt.Println("\nWeaknesses")
		for _, w := range report.Weaknesses {
			fmt.Printf("  ✗ %s\n", w)
		}
	}
	if len(report.Recommendations) > 0 {
		fmt.Println("\nRecommendations")
		for _, r := range report.Recommendations {
			label := r.Priority
			if f.colorize && r.Priority == types.PriorityHigh {
				label = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(r.Priority)
			}
			fmt.Printf("  [%s] %s: %s\n", label, r.Area, r.Suggestion)
		}
	}
}

func (f *ConsoleFormatter) printViolations(report *engine.Report) {
	if len(report.Violations) == 0 {
		return
	}
	fmt.Printf("\nViolations (%d)\n", len(report.Violations))
	for _, v := range report.Violations {
		style := f.style(lipgloss.NewStyle().Foreground(severityColor(v.Severity)))
		fmt.Printf("  %s %s: %s\n", style.Render(v.Severity), v.QuestionID, v.Message)
	}
}

func (f *ConsoleFormatter) printInvalidAnswers(report *engine.Report) {
	if len(report.InvalidAnswers) == 0 {
		return
	}
	fmt.Printf("\nInvalid answers (%d)\n", len(report.InvalidAnswers))
	for _, ia := range report.InvalidAnswers {
		fmt.Printf("  ⚠ %s: %s\n", ia.QuestionID, ia.Message)
	}
}

func (f *ConsoleFormatter) style(s lipgloss.Style) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return s
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 75:
		return lipgloss.Color("10") // green
	case score >= 50:
		return lipgloss.Color("3") // yellow
	default:
		return lipgloss.Color("9") // red
	}
}

func severityColor(severity string) lipgloss.Color {
	switch severity {
	case types.SeverityHigh:
		return lipgloss.Color("9") // red
	case types.SeverityMedium:
		return lipgloss.Color("3") // yellow
	default:
		return lipgloss.Color("7") // gray
	}
}
