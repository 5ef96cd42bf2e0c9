// Package bridge finds water crossings along proposed road and rail paths
// and classifies the resulting deck. Detection is pure; Apply is the single
// write-back that tags tiles with deck metadata.
package bridge

import "github.com/ericmatamoros/isometric-city-sub000/pkg/grid"

// Orientation of a deck relative to the map grid.
type Orientation string

const (
	OrientNS Orientation = "ns"
	OrientEW Orientation = "ew"
)

// MaxSpan is the longest run of water a single bridge may cross.
const MaxSpan = 24

// Detection describes one buildable crossing: the water tiles to convert to
// deck, in path order.
type Detection struct {
	Tiles       []grid.Cell `json:"tiles"`
	Span        int         `json:"span"`
	Orientation Orientation `json:"orientation"`
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// DetectSpan examines the straight path from (x1, y1) to (x2, y2) inclusive
// and returns the crossing it would require, or nil when no bridge is needed
// or the crossing is unbuildable. A crossing is buildable only when:
//
//   - the path is axis-aligned (exactly one axis varies) and on the grid,
//   - its water tiles form one unbroken run of at most MaxSpan,
//   - each end of the run rests on solid ground — where the run touches the
//     path's own boundary, the tile one step beyond must be a true map edge
//     or any non-water tile, so a deck never dangles into open water.
func DetectSpan(g *grid.Grid, x1, y1, x2, y2 int) *Detection {
	dx, dy := sign(x2-x1), sign(y2-y1)
	if (dx != 0) == (dy != 0) {
		return nil
	}
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return nil
	}

	var path []grid.Cell
	for x, y := x1, y1; ; x, y = x+dx, y+dy {
		path = append(path, grid.Cell{X: x, Y: y})
		if x == x2 && y == y2 {
			break
		}
	}

	first, last := -1, -1
	for i, c := range path {
		if grid.IsWater(g.Tiles[c.Y][c.X].Building.Type) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil
	}

	// Disjoint water pockets cannot share a single deck.
	for i := first; i <= last; i++ {
		c := path[i]
		if !grid.IsWater(g.Tiles[c.Y][c.X].Building.Type) {
			return nil
		}
	}

	span := last - first + 1
	if span > MaxSpan {
		return nil
	}

	if first == 0 {
		bx, by := x1-dx, y1-dy
		if g.InBounds(bx, by) && grid.IsWater(g.Tiles[by][bx].Building.Type) {
			return nil
		}
	}
	if last == len(path)-1 {
		bx, by := x2+dx, y2+dy
		if g.InBounds(bx, by) && grid.IsWater(g.Tiles[by][bx].Building.Type) {
			return nil
		}
	}

	orient := OrientEW
	if dy != 0 {
		orient = OrientNS
	}
	return &Detection{
		Tiles:       path[first : last+1],
		Span:        span,
		Orientation: orient,
	}
}

// SubSegments splits a dragged path into maximal straight runs, returned as
// inclusive (start, end) pairs. Consecutive runs share the corner cell, so a
// drag handler can feed each pair to DetectSpan directly. Paths shorter than
// two cells produce nothing.
func SubSegments(path []grid.Cell) [][2]grid.Cell {
	if len(path) < 2 {
		return nil
	}
	var segs [][2]grid.Cell
	start := 0
	dirX := sign(path[1].X - path[0].X)
	dirY := sign(path[1].Y - path[0].Y)
	for i := 2; i < len(path); i++ {
		sx := sign(path[i].X - path[i-1].X)
		sy := sign(path[i].Y - path[i-1].Y)
		if sx != dirX || sy != dirY {
			segs = append(segs, [2]grid.Cell{path[start], path[i-1]})
			start = i - 1
			dirX, dirY = sx, sy
		}
	}
	segs = append(segs, [2]grid.Cell{path[start], path[len(path)-1]})
	return segs
}
