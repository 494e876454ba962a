package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/monkeytrain/internal/core"
	"github.com/vovakirdan/monkeytrain/internal/games/monkeytrain"
	"github.com/vovakirdan/monkeytrain/internal/storage"
)

// Banner is the round result overlay. The game stays frozen while it is up.
type Banner struct {
	Result    monkeytrain.RoundResult
	Stats     storage.SessionStats
	Remaining float64 // Seconds until the banner closes
}

// Lines returns the banner text with the color of each line.
func (b *Banner) Lines() ([]string, []core.Color) {
	r := b.Result
	var lines []string
	var colors []core.Color

	add := func(s string, c core.Color) {
		lines = append(lines, s)
		colors = append(colors, c)
	}

	if r.Outcome == monkeytrain.OutcomeComplete {
		add("Correct!", core.ColorSuccess)
		add(fmt.Sprintf("You completed the %d×%d grid!", r.Tier.GridSize, r.Tier.GridSize), core.ColorText)
	} else {
		add("Wrong!", core.ColorFailure)
		add("Don't give up! Try again!", core.ColorText)
	}
	add("", core.ColorText)
	add(fmt.Sprintf("Level: %d", r.NextLevel+1), core.ColorText)
	add(fmt.Sprintf("Next Challenge: %d×%d grid, %.1fs", r.NextTier.GridSize, r.NextTier.GridSize, r.NextTier.Reveal), core.ColorSubtitle)
	if b.Stats.BestLevel >= 0 {
		add(fmt.Sprintf("Session best: level %d (%d×%d)", b.Stats.BestLevel+1, b.Stats.BestGridSize, b.Stats.BestGridSize), core.ColorSubtitle)
	}
	return lines, colors
}

// Render draws the banner centered on dst.
func (b *Banner) Render(dst *core.Screen) {
	lines, colors := b.Lines()

	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	w += 6
	h := len(lines) + 4

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-FooterHeight-h)/2, w, h)
	dst.DrawRect(box, ' ', core.ColorText)
	dst.DrawBox(box, core.ColorSubtitle)
	for i, l := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+2+i, l, colors[i])
	}
}

// renderPaused draws the pause overlay.
func renderPaused(dst *core.Screen) {
	msg := "Paused. Press P to resume"
	w := utf8.RuneCountInString(msg) + 6
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-FooterHeight-5)/2, w, 5)
	dst.DrawRect(box, ' ', core.ColorText)
	dst.DrawBox(box, core.ColorSubtitle)
	dst.DrawText(box.X+3, box.Y+2, msg, core.ColorTitle)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen, needW, needH int) {
	dst.Clear()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorFailure)
	dst.DrawTextCentered(y, fmt.Sprintf("Please resize terminal to at least %dx%d", needW, needH), core.ColorText)
}
