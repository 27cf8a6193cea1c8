// Package hydro routes surface water over a generated terrain grid and
// derives rivers and lakes from the accumulated flow.
package hydro

import (
	"math"

	"terragen/internal/core"
)

// Direction is one of the eight compass neighbours, or Sink.
type Direction int8

const (
	Sink Direction = iota - 1
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var (
	dx = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dy = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

// diagonalWeight scales slopes towards diagonal neighbours, which are sqrt(2)
// cells away.
var diagonalWeight = 1 / math.Sqrt2

// Offset returns the grid step taken when following d. Sink has no step.
func (d Direction) Offset() (int, int) {
	if d < North || d > NorthWest {
		return 0, 0
	}
	return dx[d], dy[d]
}

// Diagonal reports whether d points to a corner neighbour.
func (d Direction) Diagonal() bool {
	return d >= North && d <= NorthWest && d%2 == 1
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "sink"
	}
}

// FlowField holds per-run routing state: the drainage direction of every cell
// and the water volume that passed through it.
type FlowField struct {
	w, h int
	dir  []Direction
	acc  []float64
}

func newFlowField(w, h int) *FlowField {
	total := w * h
	ff := &FlowField{w: w, h: h, dir: make([]Direction, total), acc: make([]float64, total)}
	for i := range ff.dir {
		ff.dir[i] = Sink
	}
	return ff
}

// Size reports the dimensions of the field.
func (ff *FlowField) Size() core.Size { return core.Size{W: ff.w, H: ff.h} }

// Direction returns the drainage direction of (x, y).
func (ff *FlowField) Direction(x, y int) Direction { return ff.dir[ff.index(x, y)] }

// Accumulation returns the water volume that passed through (x, y).
func (ff *FlowField) Accumulation(x, y int) float64 { return ff.acc[ff.index(x, y)] }

// TotalAccumulation sums the accumulation of every cell.
func (ff *FlowField) TotalAccumulation() float64 {
	total := 0.0
	for _, v := range ff.acc {
		total += v
	}
	return total
}

func (ff *FlowField) inBounds(x, y int) bool {
	return x >= 0 && x < ff.w && y >= 0 && y < ff.h
}

func (ff *FlowField) index(x, y int) int {
	if !ff.inBounds(x, y) {
		panic("hydro: flow field access out of bounds")
	}
	return y*ff.w + x
}

// ComputeFlowDirections assigns every land cell the neighbour with the
// steepest downhill slope. Cells next to open water always drain into it.
// Water cells, and land cells with no lower neighbour, are sinks.
func ComputeFlowDirections(g *core.Grid) *FlowField {
	ff := newFlowField(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y).Biome.IsWater() {
				continue
			}
			ff.dir[y*g.W+x] = steepestNeighbor(g, x, y)
		}
	}
	return ff
}

func steepestNeighbor(g *core.Grid, x, y int) Direction {
	height := g.At(x, y).Elevation

	best := Sink
	bestSlope := 0.0
	bestWater := false
	for d := North; d <= NorthWest; d++ {
		ox, oy := d.Offset()
		nx, ny := x+ox, y+oy
		if !g.InBounds(nx, ny) {
			continue
		}
		n := g.At(nx, ny)
		slope := height - n.Elevation
		if d.Diagonal() {
			slope *= diagonalWeight
		}
		water := n.Biome.IsWater()
		switch {
		case water && !bestWater:
			best, bestSlope, bestWater = d, slope, true
		case water == bestWater && slope > bestSlope:
			best, bestSlope = d, slope
		}
	}
	return best
}
