package config

import (
	_ "embed"
)

//go:embed defaults/monkeytrain.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/monkeytrain.yaml and is the fallback when that cannot be parsed.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			TileSize:   6,
			Gap:        2,
			HeaderRows: 4,
			CellAspect: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			StartLevel:    0,
			GridSizes:     []int{3, 4, 5},
			BaseReveal:    10.0,
			BaseDecrement: 0.3,
			DecrementStep: 0.1,
			MaxDecrement:  1.0,
			RevealFloor:   2.0,
			TierNames:     []string{"Easy", "Intermediate", "Expert", "Expert+"},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Amplitude:  0.3,
		},
		Feedback: FeedbackConfig{
			Duration:   2.5,
			ClickFlash: 0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
