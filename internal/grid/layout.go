// Package grid maps an N×N tile grid to canvas rectangles and resolves
// pointer coordinates back to tile cells.
package grid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/monkeytrain/internal/core"
)

// ErrInvalidParameter is returned for layout parameters that cannot describe a grid.
var ErrInvalidParameter = errors.New("grid: invalid parameter")

// Extent returns the side length of an n×n grid of tile-sized squares
// separated by gap.
func Extent(n, tile, gap int) int {
	return n*tile + (n-1)*gap
}

// Layout returns the n² tile rectangles of an n×n grid centered on a
// width×height canvas. Rectangles are indexed row-major: cell (r, c) is at
// index r*n + c. If the grid is larger than the canvas the origin goes
// negative and tiles hang off the canvas; that is not an error.
func Layout(n, tile, gap, width, height int) ([]core.Rect, error) {
	if n < 1 {
		return nil, fmt.Errorf("grid size %d: %w", n, ErrInvalidParameter)
	}
	if tile <= 0 {
		return nil, fmt.Errorf("tile size %d: %w", tile, ErrInvalidParameter)
	}
	if gap < 0 {
		return nil, fmt.Errorf("gap %d: %w", gap, ErrInvalidParameter)
	}

	extent := Extent(n, tile, gap)
	originX := (width - extent) / 2
	originY := (height - extent) / 2
	pitch := tile + gap

	rects := make([]core.Rect, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			rects = append(rects, core.NewRect(originX+c*pitch, originY+r*pitch, tile, tile))
		}
	}
	return rects, nil
}

// Bounds returns the bounding box of a set of rectangles.
func Bounds(rects []core.Rect) core.Rect {
	if len(rects) == 0 {
		return core.Rect{}
	}
	b := rects[0]
	for _, r := range rects[1:] {
		b = b.Union(r)
	}
	return b
}
