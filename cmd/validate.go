package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/config"
	"github.com/dotcommander/assay/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [bank-id]",
	Short: "Validate bank definitions against the schema and invariants",
	Long: `Validate runs every discovered bank file through CUE schema validation
and the engine's structural checks (category references, weights, tier
coverage). With a bank id argument, only that bank is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) == 1 {
			target = args[0]
		}
		return runValidate(target)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(target string) error {
	cfg, err := config.LoadConfig(banksDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	files, err := bank.DiscoverFiles(cfg.BanksDir)
	if err != nil {
		return fmt.Errorf("error discovering banks: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no bank definitions found under %s", cfg.BanksDir)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("error loading schemas: %w", err)
	}

	checked := 0
	failed := 0
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("✗ %s\n    cannot read: %v\n", path, err)
			failed++
			continue
		}

		b, parseErr := bank.Parse(content)
		if target != "" && (parseErr != nil || b.ID != target) {
			continue
		}
		checked++

		findings := validator.ValidateFile(path, content)
		if parseErr == nil && len(findings) == 0 {
			if !cfg.Quiet {
				fmt.Printf("✓ %s\n", path)
			}
			continue
		}

		failed++
		fmt.Printf("✗ %s\n", path)
		for _, f := range findings {
			fmt.Printf("    [%s] %s\n", f.Severity, f.Message)
		}
		if parseErr != nil {
			fmt.Printf("    %v\n", parseErr)
		}
	}

	if target != "" && checked == 0 {
		return fmt.Errorf("no bank with id %q found under %s", target, cfg.BanksDir)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d bank files failed validation", failed, checked)
	}
	if !cfg.Quiet {
		fmt.Printf("\n%d bank files validated\n", checked)
	}
	return nil
}
