package config

import (
	"fmt"
	"math"
)

// Grid sizes outside this range are clamped; smaller grids are trivial and
// larger ones do not fit a standard terminal.
const (
	MinGridSize = 3
	MaxGridSize = 5
)

// Tier is an immutable difficulty configuration for one level.
type Tier struct {
	Level       int     // Progression level (0-based)
	Index       int     // Named tier (1-based); levels past the named tiers share the last one
	Name        string  // e.g. "Easy", "Expert+"
	GridSize    int     // Grid is GridSize×GridSize
	Reveal      float64 // Seconds the values stay visible
	Description string
}

// Policy maps progression levels to difficulty tiers.
//
// Grid size follows GridSizes and holds at its last entry. Reveal time starts
// at BaseReveal and drops every level by a decrement that is BaseDecrement
// until the grid stops growing, then grows by DecrementStep per level up to
// MaxDecrement. It never drops below RevealFloor.
type Policy struct {
	cfg DifficultyConfig
}

// NewPolicy creates a policy from the difficulty config.
func NewPolicy(cfg DifficultyConfig) *Policy {
	if len(cfg.GridSizes) == 0 {
		cfg.GridSizes = []int{MinGridSize}
	}
	if !(cfg.RevealFloor > 0) {
		cfg.RevealFloor = Default().Difficulty.RevealFloor
	}
	if cfg.BaseReveal < cfg.RevealFloor {
		cfg.BaseReveal = cfg.RevealFloor
	}
	return &Policy{cfg: cfg}
}

// SetEnabled enables or disables level progression.
func (p *Policy) SetEnabled(enabled bool) {
	p.cfg.Enabled = enabled
}

// IsEnabled returns whether completing a round advances the level.
func (p *Policy) IsEnabled() bool {
	return p.cfg.Enabled
}

// StartLevel returns the level of the first round.
func (p *Policy) StartLevel() int {
	if p.cfg.StartLevel < 0 {
		return 0
	}
	return p.cfg.StartLevel
}

// LevelAfterFailure returns the level of the round that follows a failed
// round at level.
func (p *Policy) LevelAfterFailure(level int) int {
	if p.cfg.ResetOnFailure {
		return p.StartLevel()
	}
	return level
}

// NextLevel returns the level that follows a completed round at level.
func (p *Policy) NextLevel(level int) int {
	if !p.cfg.Enabled {
		return level
	}
	return level + 1
}

// TierFor returns the tier for a level. Negative levels are treated as 0.
func (p *Policy) TierFor(level int) Tier {
	if level < 0 {
		level = 0
	}

	size := p.GridSize(level)
	reveal := p.Reveal(level)

	index := level + 1
	name := fmt.Sprintf("Tier %d", index)
	if n := len(p.cfg.TierNames); n > 0 {
		if index > n {
			index = n
		}
		name = p.cfg.TierNames[index-1]
	}

	return Tier{
		Level:       level,
		Index:       index,
		Name:        name,
		GridSize:    size,
		Reveal:      reveal,
		Description: fmt.Sprintf("%d×%d grid, %.1f seconds", size, size, reveal),
	}
}

// Tiers returns the tiers for levels 0..count-1.
func (p *Policy) Tiers(count int) []Tier {
	tiers := make([]Tier, 0, count)
	for level := 0; level < count; level++ {
		tiers = append(tiers, p.TierFor(level))
	}
	return tiers
}

// GridSize returns the grid size for a level.
func (p *Policy) GridSize(level int) int {
	sizes := p.cfg.GridSizes
	if level >= len(sizes) {
		level = len(sizes) - 1
	}
	if level < 0 {
		level = 0
	}
	size := sizes[level]
	if size < MinGridSize {
		return MinGridSize
	}
	if size > MaxGridSize {
		return MaxGridSize
	}
	return size
}

// Reveal returns the reveal duration for a level in seconds.
// duration(level) = max(floor, duration(level-1) - decrement(level)).
func (p *Policy) Reveal(level int) float64 {
	reveal := roundCenti(p.cfg.BaseReveal)
	for l := 1; l <= level; l++ {
		if reveal <= p.cfg.RevealFloor {
			break
		}
		reveal = math.Max(p.cfg.RevealFloor, roundCenti(reveal-p.decrement(l)))
	}
	return reveal
}

// decrement returns how much reveal time level l loses relative to l-1.
func (p *Policy) decrement(l int) float64 {
	d := p.cfg.BaseDecrement
	if expert := len(p.cfg.GridSizes) - 1; l > expert {
		d += p.cfg.DecrementStep * float64(l-expert)
	}
	if p.cfg.MaxDecrement > 0 && d > p.cfg.MaxDecrement {
		d = p.cfg.MaxDecrement
	}
	return d
}

// roundCenti rounds to hundredths so the schedule prints without drift.
func roundCenti(v float64) float64 {
	return math.Round(v*100) / 100
}
