package monkeytrain

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    string
	Level    int
	GridSize int
	Values   []int // Row-major tile values
	Expected int
	Clicks   int
	Frozen   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.String(),
		Level:    g.level,
		GridSize: g.tier.GridSize,
		Frozen:   g.frozen,
	}
	if g.state != nil {
		s.Values = g.state.Values()
		s.Expected = g.state.Expected
		s.Clicks = g.state.Clicks
	}
	return s
}
