package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/assay/internal/bank"
	"github.com/dotcommander/assay/internal/config"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the question banks discovered under the banks directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBanks()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(banksCmd)
}

func runBanks() error {
	cfg, err := config.LoadConfig(banksDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	registry, err := bank.LoadDir(cfg.BanksDir)
	if err != nil {
		return fmt.Errorf("error loading banks: %w", err)
	}

	for _, id := range registry.IDs() {
		b, _ := registry.Get(id)
		fmt.Printf("%-16s %s (%d categories, %d questions)\n", id, b.Name, len(b.Categories), len(b.Questions))
		if cfg.Verbose {
			fmt.Printf("%-16s source: %s\n", "", registry.Path(id))
		}
	}
	return nil
}
