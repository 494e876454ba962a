// Package config provides YAML-based game configuration loading and the
// difficulty policy for MonkeyTrain.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/monkeytrain/internal/synth"
)

// Config contains all configuration for the game and its host.
type Config struct {
	Layout     LayoutConfig     `yaml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// LayoutConfig defines tile geometry in canvas units.
type LayoutConfig struct {
	TileSize   int `yaml:"tile_size"`
	Gap        int `yaml:"gap"`
	HeaderRows int `yaml:"header_rows"` // Terminal rows reserved above the playfield
	CellAspect int `yaml:"cell_aspect"` // Canvas units per terminal row
}

// DifficultyConfig defines the tier table and reveal-time schedule.
type DifficultyConfig struct {
	Enabled        bool     `yaml:"enabled"`          // false keeps the start level forever
	StartLevel     int      `yaml:"start_level"`      // Level used for the first round
	ResetOnFailure bool     `yaml:"reset_on_failure"` // A failed round returns to StartLevel
	GridSizes      []int    `yaml:"grid_sizes"`       // Grid size per level; the last entry holds
	BaseReveal     float64  `yaml:"base_reveal"`      // Reveal seconds at level 0
	BaseDecrement  float64  `yaml:"base_decrement"`
	DecrementStep  float64  `yaml:"decrement_step"` // Extra decrement per level once the grid stops growing
	MaxDecrement   float64  `yaml:"max_decrement"`
	RevealFloor    float64  `yaml:"reveal_floor"`
	TierNames      []string `yaml:"tier_names"`
}

// AudioConfig defines synthesis parameters for sound cues.
type AudioConfig struct {
	Enabled    bool                  `yaml:"enabled"`
	SampleRate int                   `yaml:"sample_rate"`
	Amplitude  float64               `yaml:"amplitude"`
	Cues       map[string]ToneConfig `yaml:"cues,omitempty"` // Keyed by cue name, e.g. "level_up"
}

// ToneConfig overrides the recipe of one cue.
type ToneConfig struct {
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Shape     string  `yaml:"shape"`
}

// FeedbackConfig defines host-side feedback timings in seconds.
type FeedbackConfig struct {
	Duration   float64 `yaml:"duration"`    // Round result banner
	ClickFlash float64 `yaml:"click_flash"` // Tile highlight after a click
}

// ThemeConfig selects the color palette.
type ThemeConfig struct {
	Dark bool `yaml:"dark"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Layout.TileSize <= 0:
		return fmt.Errorf("layout.tile_size %d: %w", c.Layout.TileSize, ErrInvalidConfig)
	case c.Layout.Gap < 0:
		return fmt.Errorf("layout.gap %d: %w", c.Layout.Gap, ErrInvalidConfig)
	case c.Layout.HeaderRows < 0:
		return fmt.Errorf("layout.header_rows %d: %w", c.Layout.HeaderRows, ErrInvalidConfig)
	case c.Layout.CellAspect <= 0:
		return fmt.Errorf("layout.cell_aspect %d: %w", c.Layout.CellAspect, ErrInvalidConfig)
	case len(c.Difficulty.GridSizes) == 0:
		return fmt.Errorf("difficulty.grid_sizes is empty: %w", ErrInvalidConfig)
	case c.Difficulty.StartLevel < 0:
		return fmt.Errorf("difficulty.start_level %d: %w", c.Difficulty.StartLevel, ErrInvalidConfig)
	case !(c.Difficulty.RevealFloor > 0):
		return fmt.Errorf("difficulty.reveal_floor %v: %w", c.Difficulty.RevealFloor, ErrInvalidConfig)
	case c.Difficulty.BaseReveal < c.Difficulty.RevealFloor:
		return fmt.Errorf("difficulty.base_reveal %v below floor: %w", c.Difficulty.BaseReveal, ErrInvalidConfig)
	case c.Difficulty.BaseDecrement < 0 || c.Difficulty.DecrementStep < 0:
		return fmt.Errorf("difficulty decrements must not be negative: %w", ErrInvalidConfig)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate %d: %w", c.Audio.SampleRate, ErrInvalidConfig)
	case !(c.Audio.Amplitude >= 0 && c.Audio.Amplitude <= 1):
		return fmt.Errorf("audio.amplitude %v: %w", c.Audio.Amplitude, ErrInvalidConfig)
	case c.Feedback.Duration < 0 || c.Feedback.ClickFlash < 0:
		return fmt.Errorf("feedback durations must not be negative: %w", ErrInvalidConfig)
	}
	if _, err := c.Audio.Tones(); err != nil {
		return err
	}
	return nil
}

// Tones converts the cue overrides into synthesis recipes.
func (a AudioConfig) Tones() (map[synth.Cue]synth.Tone, error) {
	names := make([]string, 0, len(a.Cues))
	for name := range a.Cues {
		names = append(names, name)
	}
	sort.Strings(names)

	tones := make(map[synth.Cue]synth.Tone, len(a.Cues))
	for _, name := range names {
		tc := a.Cues[name]
		cue, err := synth.ParseCue(name)
		if err != nil {
			return nil, fmt.Errorf("audio.cues: %w", err)
		}
		shape, err := synth.ParseShape(tc.Shape)
		if err != nil {
			return nil, fmt.Errorf("audio.cues.%s: %w", name, err)
		}
		tones[cue] = synth.Tone{Frequency: tc.Frequency, Duration: tc.Duration, Shape: shape}
	}
	return tones, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed): %w", name, ErrInvalidConfig)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseReveal = 12.0
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseReveal = 7.0
		cfg.Difficulty.RevealFloor = 1.5
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
	}
}
