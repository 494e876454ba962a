// monkeytrain is a memory training game for the terminal: numbers flash on
// a grid, then the player clicks the hidden tiles in ascending order.
//
// Usage:
//
//	monkeytrain              - Start the game (same as "play")
//	monkeytrain play         - Start the game
//	monkeytrain tiers        - Print the difficulty progression
//	monkeytrain cues         - Print or play the sound cues
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monkeytrain/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "monkeytrain",
	Short: "MonkeyTrain - A memory training game for your terminal",
	Long: `MonkeyTrain shows numbers on a grid for a few seconds, hides them,
and asks you to click the tiles in order: 1, 2, 3...
Clear a board to level up to bigger grids and shorter memorize times.

Available commands:
  play     - Start the game (default)
  tiers    - Show the difficulty progression
  cues     - Show or play the sound cues

Examples:
  monkeytrain
  monkeytrain play --difficulty hard
  monkeytrain tiers --count 15
  monkeytrain cues --play`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(cuesCmd)
}

// loadConfig loads the config file. The difficulty preset is applied only when
// --difficulty was given, so the file's difficulty section stands otherwise.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	return loadConfigFrom(flagConfig, flagDifficulty, cmd.Flags().Changed("difficulty"))
}

func loadConfigFrom(path, difficulty string, presetSet bool) (config.Config, string, error) {
	cfg, source, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	if !presetSet {
		return cfg, source, nil
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, source, nil
}
