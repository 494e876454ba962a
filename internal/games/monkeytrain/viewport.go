package monkeytrain

import "github.com/vovakirdan/monkeytrain/internal/core"

// FooterRows is the number of terminal rows below the playfield reserved for
// the key help line.
const FooterRows = 1

// Viewport maps terminal cells to canvas units. Columns map one to one; each
// terminal row below the header spans Aspect canvas units, which keeps square
// tiles roughly square on screen.
type Viewport struct {
	HeaderRows int
	FooterRows int
	Aspect     int
}

func (v Viewport) aspect() int {
	if v.Aspect < 1 {
		return 1
	}
	return v.Aspect
}

// Canvas returns the canvas size for a screen of cols×rows cells.
func (v Viewport) Canvas(cols, rows int) (width, height int) {
	play := rows - v.HeaderRows - v.FooterRows
	if play < 0 {
		play = 0
	}
	return max(cols, 0), play * v.aspect()
}

// ToCanvas returns the canvas point at the center of cell (col, row).
func (v Viewport) ToCanvas(col, row int) (x, y float64) {
	a := float64(v.aspect())
	return float64(col) + 0.5, float64(row-v.HeaderRows)*a + a/2
}

// ScreenRect returns the smallest cell rectangle covering every cell that
// belongs to canvas rectangle r.
func (v Viewport) ScreenRect(r core.Rect) core.Rect {
	a := v.aspect()
	top := v.HeaderRows + ceilDiv(2*r.Y-a, 2*a)
	bottom := v.HeaderRows + ceilDiv(2*r.Bottom()-a, 2*a)
	return core.NewRect(r.X, top, r.W, bottom-top)
}

// ceilDiv returns ⌈n/d⌉ for d > 0.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}
