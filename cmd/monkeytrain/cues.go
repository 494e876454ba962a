package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/monkeytrain/internal/audio"
	"github.com/vovakirdan/monkeytrain/internal/synth"
)

var flagPlayCues bool

var cuesCmd = &cobra.Command{
	Use:   "cues",
	Short: "Show or play the sound cues",
	Long: `Prints the synthesized sound cues with their recipes. With --play each
cue is played in turn through the default audio device.

Examples:
  monkeytrain cues
  monkeytrain cues --play`,
	Args: cobra.NoArgs,
	Run:  runCues,
}

func init() {
	cuesCmd.Flags().BoolVar(&flagPlayCues, "play", false, "Play each cue")
}

func runCues(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bank, err := newCueBank(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sound cues (%d Hz, amplitude %.2f):\n", bank.SampleRate(), cfg.Audio.Amplitude)
	fmt.Println()
	fmt.Printf("  %-10s  %-9s  %-8s  %-6s  %s\n", "Cue", "Frequency", "Duration", "Shape", "Samples")
	fmt.Printf("  %-10s  %-9s  %-8s  %-6s  %s\n", "---", "---------", "--------", "-----", "-------")
	for _, c := range synth.Cues() {
		t, _ := bank.Tone(c)
		fmt.Printf("  %-10s  %-9s  %-8s  %-6s  %d\n",
			c, fmt.Sprintf("%.0f Hz", t.Frequency), fmt.Sprintf("%.0f ms", t.Duration*1000), t.Shape, len(bank.Samples(c)))
	}

	if !flagPlayCues {
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "monkeytrain"})
	player, err := audio.NewOtoPlayer(bank, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening audio: %v\n", err)
		os.Exit(1)
	}
	defer player.Close()
	player.WaitReady()

	fmt.Println()
	for _, c := range synth.Cues() {
		t, _ := bank.Tone(c)
		fmt.Printf("Playing %s...\n", c)
		player.Play(c)
		time.Sleep(time.Duration(t.Duration*float64(time.Second)) + 400*time.Millisecond)
	}
}
