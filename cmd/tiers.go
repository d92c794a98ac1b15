package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/config"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers <bank-id>",
	Short: "Show the maturity tier ladder of a question bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTiers(args[0])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(tiersCmd)
}

func runTiers(bankID string) error {
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

	tiers := make([]bank.Tier, len(b.Tiers))
	copy(tiers, b.Tiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Threshold > tiers[j].Threshold
	})

	for _, t := range tiers {
		fmt.Printf("%6.1f+  %-16s %s\n", t.Threshold, t.Label, t.Description)
	}
	return nil
}
