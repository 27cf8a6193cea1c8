package hydro

import (
	"math"

	"terragen/internal/core"
	prng "terragen/pkg/core"
)

// Walk records the path of a single source down the flow field.
type Walk struct {
	Source core.Point
	// Steps counts the moves taken; it never exceeds twice the grid width.
	Steps int
	// Volume is the total water deposited along the path.
	Volume float64
}

// SelectSources picks up to p.SourceCount inland cells weighted towards high
// and wet terrain. Fewer sources are returned when candidates run out.
func SelectSources(g *core.Grid, p Params, rng *prng.RNG) []core.Point {
	var candidates []core.Point
	g.Each(func(x, y int, c core.Cell) {
		if c.Elevation <= p.MinSourceElevation || c.Biome.IsShore() {
			return
		}
		weight := c.Elevation*(1-p.MoistureInfluence) + c.Moisture*p.MoistureInfluence
		if weight > p.MinSourceWeight {
			candidates = append(candidates, core.Point{X: x, Y: y})
		}
	})

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > p.SourceCount {
		candidates = candidates[:p.SourceCount]
	}
	return candidates
}

// SimulateRivers selects sources with rng, routes their water and writes the
// resulting river strengths into g.
func SimulateRivers(g *core.Grid, ff *FlowField, p Params, rng *prng.RNG) []Walk {
	return SimulateFrom(g, ff, SelectSources(g, p, rng), p)
}

// SimulateFrom routes water from the given sources in order, accumulating it
// in ff, then sets the river strength of every inland cell whose
// accumulation exceeds p.RiverThreshold.
func SimulateFrom(g *core.Grid, ff *FlowField, sources []core.Point, p Params) []Walk {
	walks := make([]Walk, 0, len(sources))
	for _, src := range sources {
		water := p.BaseWater
		if g.InBounds(src.X, src.Y) {
			water += g.At(src.X, src.Y).Moisture * p.MoistureWater
		}
		walks = append(walks, walk(g, ff, src, water, p.StepGain))
	}
	applyRivers(g, ff, p.RiverThreshold)
	return walks
}

func walk(g *core.Grid, ff *FlowField, src core.Point, water, gain float64) Walk {
	w := Walk{Source: src}
	maxSteps := 2 * g.W
	x, y := src.X, src.Y
	for w.Steps < maxSteps {
		if !ff.inBounds(x, y) {
			break
		}
		idx := y*ff.w + x
		ff.acc[idx] += water
		w.Volume += water

		if g.At(x, y).Biome.IsWater() {
			break
		}
		d := ff.dir[idx]
		if d == Sink {
			break
		}
		ox, oy := d.Offset()
		x += ox
		y += oy
		w.Steps++
		water += gain
	}
	return w
}

func applyRivers(g *core.Grid, ff *FlowField, threshold float64) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y).Biome.IsShore() {
				continue
			}
			acc := ff.acc[y*ff.w+x]
			if acc > threshold {
				g.SetRiverStrength(x, y, math.Min(1, acc/(threshold*5)))
			}
		}
	}
}

// GenerateLakes turns inland sinks holding more than p.LakeThreshold water
// into lakes and floods their direct neighbours that sit no more than
// p.LakeTolerance above the sink. Flooding does not spread further and
// never reaches water or beach cells. It returns the number of cells newly
// marked.
func GenerateLakes(g *core.Grid, ff *FlowField, p Params) int {
	marked := 0
	mark := func(x, y int) {
		if !g.At(x, y).IsLake {
			g.MarkLake(x, y)
			marked++
		}
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if c.Biome.IsShore() {
				continue
			}
			idx := y*ff.w + x
			if ff.dir[idx] != Sink || ff.acc[idx] <= p.LakeThreshold {
				continue
			}
			mark(x, y)
			for d := North; d <= NorthWest; d++ {
				ox, oy := d.Offset()
				nx, ny := x+ox, y+oy
				if !g.InBounds(nx, ny) {
					continue
				}
				n := g.At(nx, ny)
				if n.Elevation <= c.Elevation+p.LakeTolerance && !n.Biome.IsShore() {
					mark(nx, ny)
				}
			}
		}
	}
	return marked
}
