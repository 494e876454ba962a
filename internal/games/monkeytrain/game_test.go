package monkeytrain

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/monkeytrain/internal/config"
	"github.com/vovakirdan/monkeytrain/internal/core"
	"github.com/vovakirdan/monkeytrain/internal/grid"
	"github.com/vovakirdan/monkeytrain/internal/synth"
)

type transition struct{ from, to Phase }

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := config.Default()
	g, err := New(Options{
		Layout:     cfg.Layout,
		Difficulty: cfg.Difficulty,
		ClickFlash: cfg.Feedback.ClickFlash,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// startHidden starts a round and runs the clock past the reveal phase.
func startHidden(t *testing.T, g *Game) {
	t.Helper()
	g.Start()
	g.AdvanceTime(g.Tier().Reveal + 0.01)
	if g.Phase() != PhaseHidden {
		t.Fatalf("phase after reveal = %v, expected hidden", g.Phase())
	}
}

// pressValue presses the center of the tile holding value.
func pressValue(t *testing.T, g *Game, value int) PressResult {
	t.Helper()
	for _, tile := range g.Tiles() {
		if tile.Value == value {
			x, y := tile.Rect.Center()
			return g.HandlePointerPress(float64(x)+0.5, float64(y)+0.5)
		}
	}
	t.Fatalf("no tile holds value %d", value)
	return PressIgnored
}

func recordTransitions(g *Game) *[]transition {
	var seen []transition
	g.OnTransition(func(from, to Phase) {
		seen = append(seen, transition{from, to})
	})
	return &seen
}

func TestCompletingBoardLevelsUp(t *testing.T) {
	g := newTestGame(t, 42)
	startHidden(t, g)
	seen := recordTransitions(g)

	if g.Tier().GridSize != 3 {
		t.Fatalf("level 0 grid size = %d, expected 3", g.Tier().GridSize)
	}
	g.DrainCues()

	for v := 1; v <= 8; v++ {
		if got := pressValue(t, g, v); got != PressCorrect {
			t.Fatalf("press %d = %v, expected correct", v, got)
		}
	}
	if got := pressValue(t, g, 9); got != PressComplete {
		t.Fatalf("press 9 = %v, expected complete", got)
	}

	expected := []transition{
		{PhaseHidden, PhaseComplete},
		{PhaseComplete, PhaseRevealing},
	}
	if !reflect.DeepEqual(*seen, expected) {
		t.Errorf("transitions = %v, expected %v", *seen, expected)
	}
	if g.Level() != 1 {
		t.Errorf("level = %d, expected 1", g.Level())
	}
	if g.Tier().GridSize != 4 || len(g.Tiles()) != 16 {
		t.Errorf("new board is %d tiles at size %d, expected 4×4", len(g.Tiles()), g.Tier().GridSize)
	}
	if g.Expected() != 1 {
		t.Errorf("expected counter = %d on new board, expected 1", g.Expected())
	}

	cues := g.DrainCues()
	if len(cues) != 9 {
		t.Fatalf("got %d cues, expected 9", len(cues))
	}
	for i, c := range cues[:8] {
		if c != synth.CueCorrect {
			t.Errorf("cue %d = %v, expected correct", i, c)
		}
	}
	if cues[8] != synth.CueLevelUp {
		t.Errorf("last cue = %v, expected level_up", cues[8])
	}

	results := g.DrainResults()
	if len(results) != 1 || results[0].Outcome != OutcomeComplete {
		t.Fatalf("results = %+v, expected one complete round", results)
	}
	if results[0].Clicks != 9 || results[0].NextTier.GridSize != 4 {
		t.Errorf("result = %+v, expected 9 clicks and a 4×4 next tier", results[0])
	}
	if g.LastOutcome() != OutcomeComplete {
		t.Errorf("last outcome = %v", g.LastOutcome())
	}
}

func TestWrongPressResetsAtSameLevel(t *testing.T) {
	g := newTestGame(t, 7)
	startHidden(t, g)
	before := g.Snapshot().Values
	seen := recordTransitions(g)
	g.DrainCues()

	if got := pressValue(t, g, 2); got != PressIncorrect {
		t.Fatalf("press 2 before 1 = %v, expected incorrect", got)
	}

	if cues := g.DrainCues(); !reflect.DeepEqual(cues, []synth.Cue{synth.CueIncorrect}) {
		t.Errorf("cues = %v, expected [incorrect]", cues)
	}
	expected := []transition{
		{PhaseHidden, PhaseResetting},
		{PhaseResetting, PhaseRevealing},
	}
	if !reflect.DeepEqual(*seen, expected) {
		t.Errorf("transitions = %v, expected %v", *seen, expected)
	}
	if g.Level() != 0 || g.Tier().GridSize != 3 {
		t.Errorf("level %d size %d after failure, expected level 0 size 3", g.Level(), g.Tier().GridSize)
	}
	after := g.Snapshot().Values
	if reflect.DeepEqual(before, after) {
		t.Errorf("new board repeats the previous arrangement %v", before)
	}
	if g.Expected() != 1 {
		t.Errorf("expected counter = %d, expected 1", g.Expected())
	}
	for _, tile := range g.Tiles() {
		if !tile.Revealed || tile.Clicked {
			t.Fatalf("fresh board tile %+v should be revealed and unclicked", tile)
		}
	}
	if results := g.DrainResults(); len(results) != 1 || results[0].Outcome != OutcomeFailed {
		t.Errorf("results = %+v, expected one failed round", results)
	}
}

func TestWrongPressAfterProgressResets(t *testing.T) {
	g := newTestGame(t, 11)
	startHidden(t, g)

	pressValue(t, g, 1)
	pressValue(t, g, 2)
	if got := pressValue(t, g, 5); got != PressIncorrect {
		t.Fatalf("press 5 at expected 3 = %v, expected incorrect", got)
	}
	if g.Expected() != 1 || g.Level() != 0 {
		t.Errorf("expected %d level %d, expected fresh level 0 board", g.Expected(), g.Level())
	}
}

func TestPressingClickedTileAgainIsWrong(t *testing.T) {
	g := newTestGame(t, 3)
	startHidden(t, g)

	if got := pressValue(t, g, 1); got != PressCorrect {
		t.Fatalf("first press = %v", got)
	}
	if got := pressValue(t, g, 1); got != PressIncorrect {
		t.Errorf("pressing 1 again = %v, expected incorrect", got)
	}
}

func TestPressOnEmptyCanvasChangesNothing(t *testing.T) {
	g := newTestGame(t, 42)
	startHidden(t, g)
	pressValue(t, g, 1)
	g.DrainCues()
	seen := recordTransitions(g)
	before := g.Snapshot()

	points := [][2]float64{
		{0, 0},
		{79.5, 37.5},
		{-5, 10},
		{math.NaN(), 10},
		{math.Inf(1), math.Inf(1)},
	}
	// The gap between the first two tiles of the top row.
	rects := g.Rects()
	points = append(points, [2]float64{float64(rects[0].Right()) + 0.5, float64(rects[0].Y) + 1})

	for _, p := range points {
		if got := g.HandlePointerPress(p[0], p[1]); got != PressMissed {
			t.Errorf("press at %v = %v, expected missed", p, got)
		}
	}

	if len(*seen) != 0 {
		t.Errorf("transitions = %v, expected none", *seen)
	}
	if g.Expected() != 2 {
		t.Errorf("expected counter = %d, expected 2", g.Expected())
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("snapshot changed: %+v -> %+v", before, after)
	}
	if cues := g.DrainCues(); len(cues) != 0 {
		t.Errorf("cues = %v, expected none", cues)
	}
}

func TestPressesIgnoredWhileRevealing(t *testing.T) {
	g := newTestGame(t, 1)
	g.Start()

	for _, tile := range g.Tiles() {
		x, y := tile.Rect.Center()
		if got := g.HandlePointerPress(float64(x), float64(y)); got != PressIgnored {
			t.Fatalf("press while revealing = %v, expected ignored", got)
		}
	}
	if g.Expected() != 1 || g.Phase() != PhaseRevealing {
		t.Errorf("state changed while revealing: expected %d phase %v", g.Expected(), g.Phase())
	}
	if cues := g.DrainCues(); len(cues) != 0 {
		t.Errorf("cues = %v, expected none", cues)
	}
}

func TestPressesIgnoredWhenIdle(t *testing.T) {
	g := newTestGame(t, 1)
	if got := g.HandlePointerPress(40, 19); got != PressIgnored {
		t.Errorf("press while idle = %v, expected ignored", got)
	}
	if g.Tiles() != nil || g.Expected() != 0 {
		t.Error("idle game should have no board")
	}
}

func TestRevealPhaseEndsAfterTierDuration(t *testing.T) {
	g := newTestGame(t, 1)
	g.Start()
	reveal := g.Tier().Reveal
	if reveal != 10.0 {
		t.Fatalf("level 0 reveal = %v, expected 10", reveal)
	}

	dt := 1.0 / 60.0
	frames := 0
	for g.Phase() == PhaseRevealing && frames < 10000 {
		g.AdvanceTime(dt)
		frames++
	}
	elapsed := float64(frames) * dt
	if elapsed < reveal-1e-9 || elapsed > reveal+dt+1e-9 {
		t.Errorf("reveal ended after %.4fs, expected %.1fs", elapsed, reveal)
	}
	for _, tile := range g.Tiles() {
		if tile.Revealed {
			t.Fatal("tile still revealed in hidden phase")
		}
	}
	if g.RevealRemaining() != 0 {
		t.Errorf("RevealRemaining() = %v in hidden phase", g.RevealRemaining())
	}
}

func TestAdvanceTimeIgnoresInvalidDeltas(t *testing.T) {
	g := newTestGame(t, 1)
	g.Start()

	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		g.AdvanceTime(dt)
	}
	if g.RevealRemaining() != g.Tier().Reveal {
		t.Errorf("RevealRemaining() = %v, expected untouched %v", g.RevealRemaining(), g.Tier().Reveal)
	}
}

func TestFrozenGameIgnoresTimeAndPresses(t *testing.T) {
	g := newTestGame(t, 5)
	startHidden(t, g)
	g.SetFrozen(true)

	if got := pressValue(t, g, 1); got != PressIgnored {
		t.Errorf("press while frozen = %v, expected ignored", got)
	}
	g.AdvanceTime(5)
	if g.Expected() != 1 {
		t.Errorf("expected counter moved while frozen")
	}

	g.SetFrozen(false)
	if got := pressValue(t, g, 1); got != PressCorrect {
		t.Errorf("press after unfreeze = %v, expected correct", got)
	}

	g.Start()
	g.SetFrozen(true)
	g.AdvanceTime(100)
	if g.Phase() != PhaseRevealing {
		t.Errorf("frozen reveal phase ended")
	}
}

func TestClickFlashDecays(t *testing.T) {
	g := newTestGame(t, 9)
	startHidden(t, g)
	pressValue(t, g, 1)

	flashing := func() int {
		n := 0
		for _, tile := range g.Tiles() {
			if tile.Flash > 0 {
				n++
			}
		}
		return n
	}
	if flashing() != 1 {
		t.Fatalf("flashing tiles = %d after press, expected 1", flashing())
	}
	g.AdvanceTime(0.31)
	if flashing() != 0 {
		t.Errorf("flash still active after click flash duration")
	}
}

func TestResetOnFailureReturnsToStartLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.ResetOnFailure = true
	g, err := New(Options{Layout: cfg.Layout, Difficulty: cfg.Difficulty})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 2})
	startHidden(t, g)

	for v := 1; v <= 9; v++ {
		pressValue(t, g, v)
	}
	if g.Level() != 1 {
		t.Fatalf("level = %d after clearing, expected 1", g.Level())
	}

	g.AdvanceTime(g.Tier().Reveal + 0.01)
	pressValue(t, g, 2)
	if g.Level() != 0 || g.Tier().GridSize != 3 {
		t.Errorf("level %d size %d after failure, expected start level", g.Level(), g.Tier().GridSize)
	}
}

func TestDisabledProgressionKeepsLevel(t *testing.T) {
	g := newTestGame(t, 4)
	g.Policy().SetEnabled(false)
	startHidden(t, g)

	for v := 1; v <= 9; v++ {
		pressValue(t, g, v)
	}
	if g.Level() != 0 || g.Tier().GridSize != 3 {
		t.Errorf("level %d size %d with progression disabled", g.Level(), g.Tier().GridSize)
	}
	if g.LastOutcome() != OutcomeComplete {
		t.Errorf("last outcome = %v, expected complete", g.LastOutcome())
	}
}

func TestStopReturnsToIdle(t *testing.T) {
	g := newTestGame(t, 4)
	seen := recordTransitions(g)
	startHidden(t, g)
	g.Stop()

	if g.Phase() != PhaseIdle || g.Active() {
		t.Errorf("phase = %v after Stop", g.Phase())
	}
	last := (*seen)[len(*seen)-1]
	if last != (transition{PhaseHidden, PhaseIdle}) {
		t.Errorf("last transition = %v", last)
	}
}

func TestSetCanvasRecentersBoard(t *testing.T) {
	g := newTestGame(t, 4)
	g.Start()
	before := g.Tiles()

	g.SetCanvas(120, 60)
	after := g.Tiles()
	for i := range after {
		if after[i].Value != before[i].Value {
			t.Fatal("resize changed tile values")
		}
		if after[i].Rect != g.Rects()[i] {
			t.Fatal("tile rect out of sync with cached layout")
		}
	}

	b := grid.Bounds(g.Rects())
	if d := (120 - b.Right()) - b.X; d < -1 || d > 1 {
		t.Errorf("board not centered horizontally: %v", b)
	}
	if d := (60 - b.Bottom()) - b.Y; d < -1 || d > 1 {
		t.Errorf("board not centered vertically: %v", b)
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() []Snapshot {
		g := newTestGame(t, 1234)
		var snaps []Snapshot
		startHidden(t, g)
		snaps = append(snaps, g.Snapshot())
		for v := 1; v <= 9; v++ {
			pressValue(t, g, v)
		}
		snaps = append(snaps, g.Snapshot())
		g.AdvanceTime(g.Tier().Reveal + 0.01)
		pressValue(t, g, 3)
		snaps = append(snaps, g.Snapshot())
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestPermutationIsBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, n := range []int{1, 4, 9, 16, 25} {
		for i := 0; i < 50; i++ {
			values := permutation(rng, n, nil)
			seen := make(map[int]bool, n)
			for _, v := range values {
				if v < 1 || v > n || seen[v] {
					t.Fatalf("n=%d: invalid permutation %v", n, values)
				}
				seen[v] = true
			}
			if len(seen) != n {
				t.Fatalf("n=%d: got %d distinct values", n, len(seen))
			}
		}
	}
}

func TestPermutationNeverRepeatsPrevious(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{2, 9} {
		prev := permutation(rng, n, nil)
		for i := 0; i < 200; i++ {
			next := permutation(rng, n, prev)
			if reflect.DeepEqual(next, prev) {
				t.Fatalf("n=%d: repeated arrangement %v", n, prev)
			}
			prev = next
		}
	}

	if got := permutation(rng, 1, []int{1}); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("single tile permutation = %v", got)
	}
}

func TestNewRejectsInvalidLayout(t *testing.T) {
	cfg := config.Default()
	cfg.Layout.TileSize = 0
	if _, err := New(Options{Layout: cfg.Layout, Difficulty: cfg.Difficulty}); !errors.Is(err, grid.ErrInvalidParameter) {
		t.Errorf("New() error = %v, expected ErrInvalidParameter", err)
	}
}

func TestViewportAgreesWithHitTest(t *testing.T) {
	g := newTestGame(t, 8)
	vp := g.Viewport()

	for _, size := range []int{3, 4, 5} {
		cfg := config.Default()
		rects, err := grid.Layout(size, cfg.Layout.TileSize, cfg.Layout.Gap, g.canvasW, g.canvasH)
		if err != nil {
			t.Fatal(err)
		}
		for i, r := range rects {
			area := vp.ScreenRect(r)
			if area.H != 3 || area.W != cfg.Layout.TileSize {
				t.Errorf("size %d tile %d covers %dx%d cells, expected %dx3", size, i, area.W, area.H, cfg.Layout.TileSize)
			}
			for row := area.Y; row < area.Bottom(); row++ {
				for col := area.X; col < area.Right(); col++ {
					x, y := vp.ToCanvas(col, row)
					if idx, ok := grid.Hit(x, y, rects); !ok || idx != i {
						t.Fatalf("size %d: cell (%d,%d) hit %d,%v expected %d", size, col, row, idx, ok, i)
					}
				}
			}
			// The row just above a tile is gap or header.
			x, y := vp.ToCanvas(area.X, area.Y-1)
			if idx, ok := grid.Hit(x, y, rects); ok && idx == i {
				t.Errorf("size %d: row above tile %d hits it", size, i)
			}
		}
	}
}

func TestViewportCanvas(t *testing.T) {
	vp := Viewport{HeaderRows: 4, FooterRows: 1, Aspect: 2}

	if w, h := vp.Canvas(80, 24); w != 80 || h != 38 {
		t.Errorf("Canvas(80, 24) = %d, %d; expected 80, 38", w, h)
	}
	if _, h := vp.Canvas(80, 3); h != 0 {
		t.Errorf("Canvas height for a tiny screen = %d, expected 0", h)
	}
	if x, y := vp.ToCanvas(0, 4); x != 0.5 || y != 1 {
		t.Errorf("ToCanvas(0, 4) = %v, %v; expected 0.5, 1", x, y)
	}
}

func TestRenderShowsValuesThenHidesThem(t *testing.T) {
	g := newTestGame(t, 21)
	screen := core.NewScreen(80, 24)

	g.Start()
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"MonkeyTrain", "Memorize: 10.0s", "Level 1 · Easy · 3×3"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	for v := 1; v <= 9; v++ {
		tile := g.Tiles()[0]
		for _, tl := range g.Tiles() {
			if tl.Value == v {
				tile = tl
			}
		}
		area := g.Viewport().ScreenRect(tile.Rect)
		if !strings.Contains(screen.Row(area.Y+area.H/2), string(rune('0'+v))) {
			t.Errorf("value %d not drawn on its tile row", v)
		}
	}

	g.AdvanceTime(g.Tier().Reveal)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Progress: 0 / 9") {
		t.Errorf("hidden render missing progress:\n%s", screen.String())
	}
	for row := g.Viewport().HeaderRows; row < screen.Height(); row++ {
		if strings.ContainsAny(screen.Row(row), "123456789") {
			t.Errorf("row %d shows a value while hidden: %q", row, screen.Row(row))
		}
	}

	tile := g.Tiles()[4]
	area := g.Viewport().ScreenRect(tile.Rect)
	if c := screen.GetCell(area.X, area.Y); c.Color != core.ColorTileHidden {
		t.Errorf("hidden tile color = %v, expected ColorTileHidden", c.Color)
	}
}

func TestMinScreenFitsLargestBoard(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.StartLevel = 2
	g, err := New(Options{Layout: cfg.Layout, Difficulty: cfg.Difficulty})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	g.Start()

	cols, rows := g.MinScreen()
	if cols != 38 || rows != 24 {
		t.Errorf("MinScreen() = %dx%d, expected 38x24 for a 5×5 board", cols, rows)
	}
}
