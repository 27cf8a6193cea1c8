package core

import "fmt"

// Cell stores the generated terrain values of a single grid location.
// Elevation, Moisture, Temperature and RiverStrength are always within [0, 1].
type Cell struct {
	Elevation   float64
	Moisture    float64
	Temperature float64
	Biome       Biome

	RiverStrength float64
	IsLake        bool

	// Settlement placement is not part of generation. Fresh cells carry no
	// road and SettlementID -1 for consumers that layer infrastructure on top.
	HasRoad      bool
	SettlementID int
}

// Grid stores a 2D grid of terrain cells in row-major order.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("core: invalid grid size %dx%d", w, h)
	}
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h)}
	g.Clear()
	return g, nil
}

// Clear resets every cell to an empty cell without settlement.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{SettlementID: -1}
	}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// index returns the linear slice index for coordinates (x, y). Out of range
// coordinates are a programming error and panic.
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) out of bounds for %dx%d grid", x, y, g.W, g.H))
	}
	return y*g.W + x
}

// At returns a copy of the cell at (x, y).
func (g *Grid) At(x, y int) Cell { return g.cells[g.index(x, y)] }

// Set stores c at (x, y), clamping the scalar fields into [0, 1].
func (g *Grid) Set(x, y int, c Cell) {
	c.Elevation = Clamp01(c.Elevation)
	c.Moisture = Clamp01(c.Moisture)
	c.Temperature = Clamp01(c.Temperature)
	c.RiverStrength = Clamp01(c.RiverStrength)
	g.cells[g.index(x, y)] = c
}

// SetRiverStrength updates only the river strength of the cell at (x, y).
func (g *Grid) SetRiverStrength(x, y int, v float64) {
	g.cells[g.index(x, y)].RiverStrength = Clamp01(v)
}

// MarkLake flags the cell at (x, y) as part of a lake.
func (g *Grid) MarkLake(x, y int) {
	g.cells[g.index(x, y)].IsLake = true
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < g.H; y++ {
		row := g.cells[y*g.W : (y+1)*g.W]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// Equal reports whether both grids have the same size and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Clamp01 limits v to the unit interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
