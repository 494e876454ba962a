package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monkeytrain/internal/audio"
	"github.com/vovakirdan/monkeytrain/internal/config"
	"github.com/vovakirdan/monkeytrain/internal/core"
	"github.com/vovakirdan/monkeytrain/internal/platform/tui"
	"github.com/vovakirdan/monkeytrain/internal/storage"
	"github.com/vovakirdan/monkeytrain/internal/synth"
)

var (
	flagNoSound bool
	flagDark    bool
	flagLogFile string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start MonkeyTrain.

Controls:
  Mouse      - Click tiles and buttons
  Up/Down    - Move between menu buttons
  Enter      - Press the highlighted button
  Esc        - Back to the menu
  P          - Pause
  D          - Toggle dark mode
  M          - Toggle sound
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Longer memorize time
  normal - Default progression
  hard   - Shorter memorize time and a lower floor
  fixed  - No progression, stays on the first tier

Examples:
  monkeytrain play
  monkeytrain play --difficulty easy --dark
  monkeytrain play --no-sound --seed 42
  monkeytrain play --log-file /tmp/monkeytrain.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags shared by the root and play commands.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound cues")
	cmd.Flags().BoolVar(&flagDark, "dark", false, "Start in dark mode")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every press and phase change")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDark {
		cfg.Theme.Dark = true
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	// Get terminal size early for the first layout
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	player := openPlayer(cfg, logger)
	defer player.Close()

	// Session history lives in memory only
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open session history", "error", err)
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Player:  player,
		Store:   store,
		Logger:  logger,
	})

	if store != nil {
		if stats, statsErr := store.Stats(); statsErr == nil && stats.Rounds > 0 {
			logger.Info("session finished", "rounds", stats.Rounds, "completed", stats.Completed, "best_level", stats.BestLevel+1)
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a logger writing to --log-file. The terminal belongs to
// the game, so without a log file nothing is logged.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "monkeytrain",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// openPlayer opens the audio output, falling back to silence when sound is
// disabled or no device is available.
func openPlayer(cfg config.Config, logger *log.Logger) audio.Player {
	if flagNoSound || !cfg.Audio.Enabled {
		return &audio.Silent{}
	}

	bank, err := newCueBank(cfg)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return &audio.Silent{}
	}

	player, err := audio.NewOtoPlayer(bank, logger)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return &audio.Silent{}
	}
	return player
}

func newCueBank(cfg config.Config) (*synth.CueBank, error) {
	tones, err := cfg.Audio.Tones()
	if err != nil {
		return nil, err
	}
	return synth.NewCueBank(cfg.Audio.SampleRate, cfg.Audio.Amplitude, tones)
}
