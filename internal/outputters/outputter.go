// Package outputters selects the report formatter matching the
// configured output format.
package outputters

import (
	"fmt"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/config"
	"github.com/dotcommander/assay/internal/engine"
	"github.com/dotcommander/assay/internal/output"
)

// Outputter handles report formatting.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(cfg *config.Config) *Outputter {
	return &Outputter{config: cfg}
}

// Format renders the report using the requested format.
func (o *Outputter) Format(report *engine.Report, b *bank.Bank, format string) error {
	switch format {
	case "console":
		return output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose).Format(report, b)
	case "json":
		return output.NewJSONFormatter(true, o.config.Output).Format(report)
	case "markdown":
		return output.NewMarkdownFormatter(o.config.Verbose, o.config.Output).Format(report, b)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
