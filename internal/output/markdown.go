package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/engine"
)

// MarkdownFormatter renders a report as Markdown.
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format renders the report as Markdown to the output file or stdout.
func (f *MarkdownFormatter) Format(report *engine.Report, b *bank.Bank) error {
	var builder strings.Builder

	title := b.Name
	if title == "" {
		title = report.BankID
	}
	builder.WriteString(fmt.Sprintf("# %s\n\n", title))
	if report.Context != "" {
		builder.WriteString(fmt.Sprintf("**Context:** %s\n\n", report.Context))
	}
	builder.WriteString(fmt.Sprintf("**Overall score:** %.1f\n\n", report.OverallScore))
	builder.WriteString(fmt.Sprintf("**Maturity:** %s", report.Maturity.Label))
	if report.Maturity.Description != "" {
		builder.WriteString(fmt.Sprintf(" - %s", report.Maturity.Description))
	}
	builder.WriteString("\n\n")

	// Category table
	builder.WriteString("## Categories\n\n")
	builder.WriteString("| Category | Score | Max | Percentage |\n")
	builder.WriteString("|----------|-------|-----|------------|\n")
	for _, c := range b.Categories {
		s, ok := report.CategoryScores[c.ID]
		if !ok {
			continue
		}
		if !s.Active() {
			if f.verbose {
				builder.WriteString(fmt.Sprintf("| %s | - | - | not answered |\n", c.Name))
			}
			continue
		}
		builder.WriteString(fmt.Sprintf("| %s | %.1f | %.1f | %.1f%% |\n", c.Name, s.RawScore, s.MaxScore, s.Percentage))
	}
	builder.WriteString("\n")

	if len(report.Strengths) > 0 {
		builder.WriteString("## Strengths\n\n")
		for _, s := range report.Strengths {
			builder.WriteString(fmt.Sprintf("- %s\n", s))
		}
		builder.WriteString("\n")
	}

	if len(report.Weaknesses) > 0 {
		builder.WriteString("## Weaknesses\n\n")
		for _, w := range report.Weaknesses {
			builder.WriteString(fmt.Sprintf("- %s\n", w))
		}
		builder.WriteString("\n")
	}

	if len(report.Recommendations) > 0 {
		builder.WriteString("## Recommendations\n\n")
		builder.WriteString("| Priority | Area | Suggestion |\n")
		builder.WriteString("|----------|------|------------|\n")
		for _, r := range report.Recommendations {
			builder.WriteString(fmt.Sprintf("| %s | %s | %s |\n", r.Priority, r.Area, r.Suggestion))
		}
		builder.WriteString("\n")
	}

	if len(report.Violations) > 0 {
		builder.WriteString("## Violations\n\n")
		builder.WriteString("| Severity | Question | Category | Finding |\n")
		builder.WriteString("|----------|----------|----------|--------|\n")
		for _, v := range report.Violations {
			builder.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", v.Severity, v.QuestionID, v.Category, v.Message))
		}
		builder.WriteString("\n")
	}

	if len(report.InvalidAnswers) > 0 {
		builder.WriteString("## Invalid answers\n\n")
		for _, ia := range report.InvalidAnswers {
			builder.WriteString(fmt.Sprintf("- **%s**: %s\n", ia.QuestionID, ia.Message))
		}
		builder.WriteString("\n")
	}

	content := builder.String()
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Print(content)
	return nil
}
