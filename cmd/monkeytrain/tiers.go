package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monkeytrain/internal/config"
)

var flagTierCount int

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the difficulty progression",
	Long: `Prints the grid size and memorize time of each level for the active
config and difficulty preset.

Examples:
  monkeytrain tiers
  monkeytrain tiers --count 20 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runTiers,
}

func init() {
	tiersCmd.Flags().IntVarP(&flagTierCount, "count", "n", 12, "Number of levels to show")
}

func runTiers(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTierCount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --count must be positive")
		os.Exit(1)
	}

	policy := config.NewPolicy(cfg.Difficulty)
	tiers := policy.Tiers(flagTierCount)

	maxNameLen := 4 // "Tier" header
	for _, t := range tiers {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	fmt.Printf("Difficulty progression (%s):\n", source)
	fmt.Println()
	fmt.Printf("  %-5s  %-*s  %-5s  %s\n", "Level", maxNameLen, "Tier", "Grid", "Memorize")
	fmt.Printf("  %-5s  %-*s  %-5s  %s\n", "-----", maxNameLen, "----", "----", "--------")
	for _, t := range tiers {
		fmt.Printf("  %-5d  %-*s  %-5s  %.1fs\n",
			t.Level+1, maxNameLen, t.Name, fmt.Sprintf("%dx%d", t.GridSize, t.GridSize), t.Reveal)
	}

	if !policy.IsEnabled() {
		fmt.Println()
		fmt.Println("Progression is disabled: every round stays on level 1.")
	}
}
