package monkeytrain

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/monkeytrain/internal/core"
)

// Header row offsets.
const (
	rowTitle        = 0
	rowInstructions = 1
	rowTimer        = 2
	rowHUD          = 3
)

const instructions = "Memorize the numbers, then click the tiles in order: 1, 2, 3..."

// Render draws the header and the board into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextCentered(rowTitle, "MonkeyTrain", core.ColorTitle)
	dst.DrawTextCentered(rowInstructions, instructions, core.ColorSubtitle)

	if g.state == nil {
		return
	}

	switch g.phase {
	case PhaseRevealing:
		dst.DrawTextCentered(rowTimer, fmt.Sprintf("Memorize: %.1fs", g.RevealRemaining()), core.ColorSuccess)
	case PhaseHidden:
		done, total := g.Progress()
		dst.DrawTextCentered(rowTimer, fmt.Sprintf("Progress: %d / %d", done, total), core.ColorText)
	}

	hud := fmt.Sprintf("Level %d · %s · %d×%d", g.level+1, g.tier.Name, g.tier.GridSize, g.tier.GridSize)
	dst.DrawTextCentered(rowHUD, hud, core.ColorSubtitle)

	g.renderBoard(dst)
}

func (g *Game) renderBoard(dst *core.Screen) {
	vp := g.Viewport()
	playBottom := dst.Height() - vp.FooterRows

	for _, t := range g.state.Tiles {
		color := core.ColorTileHidden
		switch {
		case t.Flash > 0:
			color = core.ColorTileClicked
		case t.Revealed:
			color = core.ColorTileRevealed
		}

		area := vp.ScreenRect(t.Rect)
		for y := max(area.Y, vp.HeaderRows); y < min(area.Bottom(), playBottom); y++ {
			for x := area.X; x < area.Right(); x++ {
				dst.SetCell(x, y, ' ', color)
			}
		}

		if !t.Revealed {
			continue
		}
		label := strconv.Itoa(t.Value)
		lx := area.X + (area.W-utf8.RuneCountInString(label))/2
		ly := area.Y + area.H/2
		if ly >= vp.HeaderRows && ly < playBottom {
			dst.DrawText(lx, ly, label, core.ColorTileLabel)
		}
	}
}
