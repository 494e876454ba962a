package grid

import "github.com/vovakirdan/monkeytrain/internal/core"

// Hit returns the index of the rectangle containing (x, y). Clicking empty
// space is a normal input and reports ok=false, as do NaN and infinite
// coordinates. Hit keeps no state.
func Hit(x, y float64, rects []core.Rect) (index int, ok bool) {
	for i, r := range rects {
		if r.ContainsPoint(x, y) {
			return i, true
		}
	}
	return -1, false
}
