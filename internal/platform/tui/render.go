package tui

import (
	"strings"

	"github.com/vovakirdan/monkeytrain/internal/core"
)

// RenderRows converts rows [from, to) of a Screen buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderRows(s *core.Screen, theme Theme, from, to int) string {
	from = core.Clamp(from, 0, s.Height())
	to = core.Clamp(to, from, s.Height())

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*(to-from)*2 + (to - from))

	for y := from; y < to; y++ {
		if y > from {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
