// Package monkeytrain implements the memory round state machine: deal a
// shuffled grid, reveal it for the tier's memorize time, hide it, then accept
// presses in ascending order until the board is cleared or a press is wrong.
//
// The machine is pure logic. The host feeds it elapsed time and pointer
// presses in canvas coordinates and drains the sound cues and round results
// it produces.
package monkeytrain

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/monkeytrain/internal/config"
	"github.com/vovakirdan/monkeytrain/internal/core"
	"github.com/vovakirdan/monkeytrain/internal/grid"
	"github.com/vovakirdan/monkeytrain/internal/synth"
)

// PressResult describes what a pointer press did.
type PressResult int

const (
	PressIgnored   PressResult = iota // Not accepting presses (phase or frozen)
	PressMissed                       // Landed outside every tile
	PressCorrect                      // Expected tile; round continues
	PressComplete                     // Expected tile; board cleared
	PressIncorrect                    // Wrong tile; board reset
)

// String returns the press result name used in logs.
func (r PressResult) String() string {
	switch r {
	case PressIgnored:
		return "ignored"
	case PressMissed:
		return "missed"
	case PressCorrect:
		return "correct"
	case PressComplete:
		return "complete"
	case PressIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// RoundResult summarizes a finished round for the feedback banner and the
// session history.
type RoundResult struct {
	Outcome   Outcome
	Level     int
	Tier      config.Tier
	Clicks    int
	PlayedFor float64 // Seconds spent in the hidden phase
	NextLevel int
	NextTier  config.Tier
}

// Options configures a Game.
type Options struct {
	Layout     config.LayoutConfig
	Difficulty config.DifficultyConfig
	ClickFlash float64 // Seconds a pressed tile stays highlighted
}

// Game is the round state machine.
type Game struct {
	policy     *config.Policy
	layout     config.LayoutConfig
	clickFlash float64
	rng        *rand.Rand
	tick       uint64

	canvasW int
	canvasH int

	phase  Phase
	level  int
	tier   config.Tier
	state  *GridState
	rects  []core.Rect
	frozen bool

	// Previous arrangement per grid size, so a new board never repeats it.
	previous map[int][]int

	cues         []synth.Cue
	results      []RoundResult
	lastOutcome  Outcome
	onTransition func(from, to Phase)
}

// New creates an idle game. The layout parameters are checked once here so
// that later relayouts cannot fail.
func New(opts Options) (*Game, error) {
	if _, err := grid.Layout(config.MinGridSize, opts.Layout.TileSize, opts.Layout.Gap, 0, 0); err != nil {
		return nil, fmt.Errorf("monkeytrain: %w", err)
	}
	return &Game{
		policy:     config.NewPolicy(opts.Difficulty),
		layout:     opts.Layout,
		clickFlash: opts.ClickFlash,
		rng:        rand.New(rand.NewSource(0)),
		previous:   make(map[int][]int),
	}, nil
}

// Reset returns the game to idle and reseeds it from cfg. Canvas size is
// derived from the screen size through the viewport.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.phase = PhaseIdle
	g.state = nil
	g.rects = nil
	g.frozen = false
	g.previous = make(map[int][]int)
	g.cues = nil
	g.results = nil
	g.lastOutcome = OutcomeNone
	g.level = g.policy.StartLevel()
	g.tier = g.policy.TierFor(g.level)

	w, h := g.Viewport().Canvas(cfg.ScreenW, cfg.ScreenH)
	g.canvasW, g.canvasH = w, h
}

// Policy returns the difficulty policy driving progression.
func (g *Game) Policy() *config.Policy {
	return g.policy
}

// Viewport returns the mapping between terminal cells and canvas units.
func (g *Game) Viewport() Viewport {
	return Viewport{
		HeaderRows: g.layout.HeaderRows,
		FooterRows: FooterRows,
		Aspect:     g.layout.CellAspect,
	}
}

// MinScreen returns the smallest terminal, in cells, that shows the current
// board whole.
func (g *Game) MinScreen() (cols, rows int) {
	vp := g.Viewport()
	extent := grid.Extent(g.tier.GridSize, g.layout.TileSize, g.layout.Gap)
	return extent, vp.HeaderRows + vp.FooterRows + ceilDiv(extent, vp.aspect())
}

// OnTransition registers a hook called on every phase change, including the
// transient Complete and Resetting phases.
func (g *Game) OnTransition(fn func(from, to Phase)) {
	g.onTransition = fn
}

// Start begins the first round at the policy's start level. Calling Start on
// a running game restarts it.
func (g *Game) Start() {
	g.level = g.policy.StartLevel()
	g.lastOutcome = OutcomeNone
	g.frozen = false
	g.deal()
	g.transition(PhaseRevealing)
}

// Stop abandons the current round and returns to idle.
func (g *Game) Stop() {
	g.state = nil
	g.rects = nil
	g.frozen = false
	g.transition(PhaseIdle)
}

// SetFrozen suspends the machine. A frozen game ignores time and presses;
// the host freezes it while the round banner is shown and while paused.
func (g *Game) SetFrozen(frozen bool) {
	g.frozen = frozen
}

// Frozen reports whether the game is suspended.
func (g *Game) Frozen() bool {
	return g.frozen
}

// SetCanvas updates the canvas size and re-centers the current board.
func (g *Game) SetCanvas(width, height int) {
	if width == g.canvasW && height == g.canvasH {
		return
	}
	g.canvasW, g.canvasH = width, height
	if g.state != nil {
		g.relayout()
	}
}

// Canvas returns the canvas size in canvas units.
func (g *Game) Canvas() (width, height int) {
	return g.canvasW, g.canvasH
}

// AdvanceTime moves the clock forward by dt seconds. The reveal phase ends
// once the tier's memorize time has elapsed.
func (g *Game) AdvanceTime(dt float64) {
	if g.frozen || g.state == nil || !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	g.tick++
	g.state.decayFlashes(dt)

	switch g.phase {
	case PhaseRevealing:
		g.state.Elapsed += dt
		if g.state.Elapsed >= g.tier.Reveal {
			g.state.hideAll()
			g.transition(PhaseHidden)
		}
	case PhaseHidden:
		g.state.PlayTime += dt
	}
}

// HandlePointerPress processes one press at canvas coordinates (x, y).
// Presses are only accepted in the hidden phase.
func (g *Game) HandlePointerPress(x, y float64) PressResult {
	if g.frozen || g.phase != PhaseHidden || g.state == nil {
		return PressIgnored
	}

	idx, ok := grid.Hit(x, y, g.rects)
	if !ok {
		return PressMissed
	}

	tile := &g.state.Tiles[idx]
	tile.Flash = g.clickFlash
	g.state.Clicks++

	// A tile already pressed holds a value below Expected, so it lands here too.
	if tile.Value != g.state.Expected {
		g.cues = append(g.cues, synth.CueIncorrect)
		g.finishRound(OutcomeFailed, g.policy.LevelAfterFailure(g.level))
		g.transition(PhaseResetting)
		g.deal()
		g.transition(PhaseRevealing)
		return PressIncorrect
	}

	tile.Clicked = true
	g.state.Expected++

	if g.state.Done() {
		g.cues = append(g.cues, synth.CueLevelUp)
		g.finishRound(OutcomeComplete, g.policy.NextLevel(g.level))
		g.transition(PhaseComplete)
		g.deal()
		g.transition(PhaseRevealing)
		return PressComplete
	}

	g.cues = append(g.cues, synth.CueCorrect)
	return PressCorrect
}

// finishRound records the result of the current board and moves to next.
func (g *Game) finishRound(outcome Outcome, next int) {
	nextTier := g.policy.TierFor(next)
	g.results = append(g.results, RoundResult{
		Outcome:   outcome,
		Level:     g.level,
		Tier:      g.tier,
		Clicks:    g.state.Clicks,
		PlayedFor: g.state.PlayTime,
		NextLevel: next,
		NextTier:  nextTier,
	})
	g.lastOutcome = outcome
	g.level = next
}

// deal builds a new board for the current level.
func (g *Game) deal() {
	g.tier = g.policy.TierFor(g.level)
	size := g.tier.GridSize
	g.state = newGridState(g.rng, size, g.previous[size])
	g.previous[size] = g.state.Values()
	g.relayout()
}

func (g *Game) relayout() {
	rects, err := grid.Layout(g.state.Size, g.layout.TileSize, g.layout.Gap, g.canvasW, g.canvasH)
	if err != nil {
		panic(fmt.Sprintf("monkeytrain: layout rejected after validation: %v", err))
	}
	g.rects = rects
	for i := range g.state.Tiles {
		g.state.Tiles[i].Rect = rects[i]
	}
}

func (g *Game) transition(to Phase) {
	from := g.phase
	g.phase = to
	if g.onTransition != nil {
		g.onTransition(from, to)
	}
}

// DrainCues returns the sound cues emitted since the last call, in order.
func (g *Game) DrainCues() []synth.Cue {
	cues := g.cues
	g.cues = nil
	return cues
}

// DrainResults returns the rounds finished since the last call, in order.
func (g *Game) DrainResults() []RoundResult {
	results := g.results
	g.results = nil
	return results
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Active reports whether a round is in progress.
func (g *Game) Active() bool {
	return g.phase != PhaseIdle
}

// Level returns the current progression level.
func (g *Game) Level() int {
	return g.level
}

// Tier returns the tier of the current board.
func (g *Game) Tier() config.Tier {
	return g.tier
}

// Tiles returns a copy of the current board, or nil when idle.
func (g *Game) Tiles() []Tile {
	if g.state == nil {
		return nil
	}
	tiles := make([]Tile, len(g.state.Tiles))
	copy(tiles, g.state.Tiles)
	return tiles
}

// Rects returns the cached tile rectangles of the current board.
func (g *Game) Rects() []core.Rect {
	return g.rects
}

// Expected returns the next value to press, or 0 when idle.
func (g *Game) Expected() int {
	if g.state == nil {
		return 0
	}
	return g.state.Expected
}

// RevealRemaining returns the memorize seconds left in the reveal phase.
func (g *Game) RevealRemaining() float64 {
	if g.phase != PhaseRevealing || g.state == nil {
		return 0
	}
	return max(0, g.tier.Reveal-g.state.Elapsed)
}

// Progress returns how many tiles have been pressed and the board total.
func (g *Game) Progress() (done, total int) {
	if g.state == nil {
		return 0, 0
	}
	return g.state.Expected - 1, g.state.Total()
}

// LastOutcome returns the outcome of the most recent finished round.
func (g *Game) LastOutcome() Outcome {
	return g.lastOutcome
}
