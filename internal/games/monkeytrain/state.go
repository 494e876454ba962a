package monkeytrain

import (
	"math/rand"

	"github.com/vovakirdan/monkeytrain/internal/core"
)

// Phase is the state of the round lifecycle.
type Phase int

const (
	PhaseIdle      Phase = iota // No round in progress
	PhaseRevealing              // Values visible, memorize timer running
	PhaseHidden                 // Values hidden, accepting presses
	PhaseComplete               // Transient: every tile pressed in order
	PhaseResetting              // Transient: wrong tile pressed
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRevealing:
		return "revealing"
	case PhaseHidden:
		return "hidden"
	case PhaseComplete:
		return "complete"
	case PhaseResetting:
		return "resetting"
	default:
		return "unknown"
	}
}

// Outcome is the result of a finished round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeComplete
	OutcomeFailed
)

// String returns the outcome name stored in the session history.
func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}

// Tile is one square of the grid.
type Tile struct {
	Value    int       // 1..N², unique within a grid
	Row, Col int       // Row-major position
	Rect     core.Rect // Canvas rectangle
	Revealed bool      // Value drawn
	Clicked  bool      // Pressed in the correct order
	Flash    float64   // Seconds of press highlight left
}

// GridState is the board of one round. It is replaced wholesale on level-up
// and on reset.
type GridState struct {
	Size     int
	Tiles    []Tile // Row-major, len Size*Size
	Expected int    // Next value to press, 1..Size²+1
	Elapsed  float64
	PlayTime float64 // Seconds spent in the hidden phase
	Clicks   int
}

// newGridState deals a fresh board of the given size. The arrangement is
// redrawn when it repeats prev, the previous board of the same size.
func newGridState(rng *rand.Rand, size int, prev []int) *GridState {
	values := permutation(rng, size*size, prev)

	tiles := make([]Tile, len(values))
	for i, v := range values {
		tiles[i] = Tile{
			Value:    v,
			Row:      i / size,
			Col:      i % size,
			Revealed: true,
		}
	}

	return &GridState{
		Size:     size,
		Tiles:    tiles,
		Expected: 1,
	}
}

// permutation returns a uniformly shuffled 1..n that differs from prev
// whenever n > 1 and prev has the same length.
func permutation(rng *rand.Rand, n int, prev []int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}

	for {
		rng.Shuffle(n, func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		if n < 2 || !sameArrangement(values, prev) {
			return values
		}
	}
}

func sameArrangement(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Values returns the tile values in row-major order.
func (s *GridState) Values() []int {
	values := make([]int, len(s.Tiles))
	for i, t := range s.Tiles {
		values[i] = t.Value
	}
	return values
}

// Total returns the number of tiles.
func (s *GridState) Total() int {
	return s.Size * s.Size
}

// Done reports whether every tile has been pressed in order.
func (s *GridState) Done() bool {
	return s.Expected > s.Total()
}

func (s *GridState) hideAll() {
	for i := range s.Tiles {
		s.Tiles[i].Revealed = false
	}
}

func (s *GridState) decayFlashes(dt float64) {
	for i := range s.Tiles {
		if s.Tiles[i].Flash > 0 {
			s.Tiles[i].Flash = max(0, s.Tiles[i].Flash-dt)
		}
	}
}
