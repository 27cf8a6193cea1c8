package hydro

import (
	"math"
	"testing"

	"terragen/internal/core"
	prng "terragen/pkg/core"
)

func buildGrid(t *testing.T, w, h int, fill func(x, y int) core.Cell) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, fill(x, y))
		}
	}
	return g
}

func land(elevation float64) core.Cell {
	return core.Cell{Elevation: elevation, Biome: core.BiomePlains, SettlementID: -1}
}

func chebyshev(x, y, cx, cy int) int {
	dx := x - cx
	if dx < 0 {
		dx = -dx
	}
	dy := y - cy
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func TestPitScenarioFlowDirections(t *testing.T) {
	g := buildGrid(t, 8, 8, func(x, y int) core.Cell {
		switch chebyshev(x, y, 4, 4) {
		case 0:
			return land(0.1)
		case 1:
			return land(0.6)
		default:
			return land(0.5)
		}
	})

	ff := ComputeFlowDirections(g)
	if d := ff.Direction(4, 4); d != Sink {
		t.Fatalf("expected depression to be a sink, got %v", d)
	}
	for d := North; d <= NorthWest; d++ {
		ox, oy := d.Offset()
		nx, ny := 4+ox, 4+oy
		got := ff.Direction(nx, ny)
		rx, ry := got.Offset()
		if nx+rx != 4 || ny+ry != 4 {
			t.Fatalf("neighbour (%d,%d) drains %v instead of into the depression", nx, ny, got)
		}
	}
}

func TestPitScenarioRiver(t *testing.T) {
	// Terrain descends from every edge towards a rimmed depression at (4,4).
	g := buildGrid(t, 8, 8, func(x, y int) core.Cell {
		switch d := chebyshev(x, y, 4, 4); d {
		case 0:
			return land(0.1)
		case 1:
			return land(0.6)
		default:
			return land(0.6 + 0.05*float64(d-1))
		}
	})

	ff := ComputeFlowDirections(g)
	p := DefaultParams()
	p.RiverThreshold = 0.01

	walks := SimulateFrom(g, ff, []core.Point{{X: 0, Y: 0}}, p)
	if len(walks) != 1 {
		t.Fatalf("expected one walk, got %d", len(walks))
	}
	if walks[0].Steps != 4 {
		t.Fatalf("expected the diagonal path of 4 steps, got %d", walks[0].Steps)
	}
	if got := g.At(4, 4).RiverStrength; got <= 0 {
		t.Fatalf("expected river at the depression, got strength %f", got)
	}
	for i := 0; i < 4; i++ {
		if got := g.At(i, i).RiverStrength; got <= 0 {
			t.Fatalf("expected river along the path at (%d,%d)", i, i)
		}
	}
	if got := g.At(7, 0).RiverStrength; got != 0 {
		t.Fatalf("cell off the path should stay dry, got %f", got)
	}
}

func TestWalkRespectsStepBudget(t *testing.T) {
	const w, h = 4, 50
	g := buildGrid(t, w, h, func(x, y int) core.Cell {
		return land(1 - float64(y)*0.01)
	})
	ff := ComputeFlowDirections(g)
	walks := SimulateFrom(g, ff, []core.Point{{X: 1, Y: 0}}, DefaultParams())
	if walks[0].Steps != 2*w {
		t.Fatalf("expected walk to stop at the %d step budget, got %d", 2*w, walks[0].Steps)
	}
	if got := ff.Accumulation(1, 2*w); got != 0 {
		t.Fatalf("cell beyond the budget received water: %f", got)
	}
	if got := ff.Accumulation(1, 2*w-1); got <= 0 {
		t.Fatal("last cell within the budget should receive water")
	}
}

func TestAccumulationConservation(t *testing.T) {
	const w, h = 10, 6
	g := buildGrid(t, w, h, func(x, y int) core.Cell {
		if y == h-1 {
			return core.Cell{Elevation: 0.3, Biome: core.BiomeOcean}
		}
		return land(0.9 - 0.1*float64(y))
	})
	ff := ComputeFlowDirections(g)
	p := DefaultParams()

	walks := SimulateFrom(g, ff, []core.Point{{X: 1, Y: 0}, {X: 7, Y: 0}}, p)

	sum := 0.0
	for _, wk := range walks {
		if wk.Steps != h-1 {
			t.Fatalf("walk from %v took %d steps, expected %d", wk.Source, wk.Steps, h-1)
		}
		expected := 0.0
		water := p.BaseWater
		for i := 0; i <= wk.Steps; i++ {
			expected += water
			water += p.StepGain
		}
		if math.Abs(wk.Volume-expected) > 1e-12 {
			t.Fatalf("walk volume %f, expected %f", wk.Volume, expected)
		}
		sum += wk.Volume
	}
	if total := ff.TotalAccumulation(); math.Abs(total-sum) > 1e-12 {
		t.Fatalf("total accumulation %f differs from per-source sum %f", total, sum)
	}
}

func TestWaterIsAlwaysPreferred(t *testing.T) {
	g := buildGrid(t, 3, 3, func(x, y int) core.Cell {
		switch {
		case x == 0 && y == 1:
			return core.Cell{Elevation: 0.45, Biome: core.BiomeOcean}
		case x == 2 && y == 1:
			return land(0.1)
		default:
			return land(0.5)
		}
	})
	ff := ComputeFlowDirections(g)
	if d := ff.Direction(1, 1); d != West {
		t.Fatalf("expected flow towards open water, got %v", d)
	}
	if d := ff.Direction(0, 1); d != Sink {
		t.Fatalf("water cells must be sinks, got %v", d)
	}
}

func TestLakeConsistency(t *testing.T) {
	g := buildGrid(t, 8, 8, func(x, y int) core.Cell {
		if y == 7 {
			return core.Cell{Elevation: 0.05, Biome: core.BiomeOcean}
		}
		switch chebyshev(x, y, 4, 4) {
		case 0:
			return land(0.1)
		case 1:
			if x == 5 && y == 5 {
				return land(0.11)
			}
			return land(0.6)
		default:
			return land(0.5)
		}
	})
	ff := ComputeFlowDirections(g)
	p := DefaultParams()
	p.LakeThreshold = 0.01
	SimulateFrom(g, ff, []core.Point{{X: 4, Y: 4}, {X: 4, Y: 3}}, p)

	if n := GenerateLakes(g, ff, p); n == 0 {
		t.Fatal("expected at least one lake cell")
	}
	if !g.At(4, 4).IsLake || !g.At(5, 5).IsLake {
		t.Fatal("expected the depression and its low neighbour to flood")
	}
	if g.At(3, 3).IsLake {
		t.Fatal("rim cell above the tolerance must stay dry")
	}

	isLakeSink := func(x, y int) bool {
		c := g.At(x, y)
		return !c.Biome.IsShore() && ff.Direction(x, y) == Sink && ff.Accumulation(x, y) > p.LakeThreshold
	}
	g.Each(func(x, y int, c core.Cell) {
		if !c.IsLake {
			return
		}
		if c.Biome.IsShore() {
			t.Fatalf("shore cell (%d,%d) marked as lake", x, y)
		}
		if isLakeSink(x, y) {
			return
		}
		for d := North; d <= NorthWest; d++ {
			ox, oy := d.Offset()
			nx, ny := x+ox, y+oy
			if g.InBounds(nx, ny) && isLakeSink(nx, ny) && c.Elevation <= g.At(nx, ny).Elevation+p.LakeTolerance {
				return
			}
		}
		t.Fatalf("lake cell (%d,%d) is neither a filled sink nor beside one", x, y)
	})
}

func TestLakesDoNotFloodBeach(t *testing.T) {
	g := buildGrid(t, 3, 3, func(x, y int) core.Cell {
		switch {
		case x == 1 && y == 1:
			return land(0.5)
		case x == 2 && y == 1:
			return core.Cell{Elevation: 0.51, Biome: core.BiomeBeach, SettlementID: -1}
		case x == 0 && y == 1:
			return land(0.51)
		default:
			return land(0.6)
		}
	})
	ff := ComputeFlowDirections(g)
	if ff.Direction(1, 1) != Sink {
		t.Fatalf("expected centre to be a sink, got %v", ff.Direction(1, 1))
	}
	p := DefaultParams()
	p.LakeThreshold = 0.01
	SimulateFrom(g, ff, []core.Point{{X: 1, Y: 1}}, p)
	GenerateLakes(g, ff, p)

	if !g.At(1, 1).IsLake || !g.At(0, 1).IsLake {
		t.Fatal("expected the sink and its low land neighbour to flood")
	}
	if g.At(2, 1).IsLake {
		t.Fatal("beach neighbour must not flood")
	}
}

func TestSelectSourcesDegradesGracefully(t *testing.T) {
	g := buildGrid(t, 6, 6, func(x, y int) core.Cell {
		switch {
		case y == 0 && x < 3:
			return core.Cell{Elevation: 0.9, Moisture: 0.8, Biome: core.BiomeForest}
		case y == 1 && x < 3:
			return core.Cell{Elevation: 0.9, Moisture: 0.8, Biome: core.BiomeBeach}
		default:
			return land(0.3)
		}
	})
	p := DefaultParams()
	p.SourceCount = 10

	a := SelectSources(g, p, prng.NewRNG(4))
	if len(a) != 3 {
		t.Fatalf("expected all 3 candidates, got %d", len(a))
	}
	for _, pt := range a {
		if pt.Y != 0 {
			t.Fatalf("unexpected source %v", pt)
		}
	}

	p.SourceCount = 2
	b := SelectSources(g, p, prng.NewRNG(4))
	c := SelectSources(g, p, prng.NewRNG(4))
	if len(b) != 2 || b[0] != c[0] || b[1] != c[1] {
		t.Fatalf("source selection not deterministic: %v vs %v", b, c)
	}
}

func TestEngineOnlyWritesHydrology(t *testing.T) {
	g := buildGrid(t, 24, 24, func(x, y int) core.Cell {
		e := 0.3 + 0.6*math.Abs(math.Sin(float64(x)*0.4)*math.Cos(float64(y)*0.3))
		b := core.BiomeForest
		if e < 0.42 {
			b = core.BiomeOcean
		}
		return core.Cell{Elevation: e, Moisture: 0.7, Temperature: 0.5, Biome: b, SettlementID: -1}
	})
	before := make([]core.Cell, 0, 24*24)
	g.Each(func(_, _ int, c core.Cell) { before = append(before, c) })

	e, err := NewEngine(DefaultParams(), 9)
	if err != nil {
		t.Fatal(err)
	}
	st := e.Run(g)
	if st.Sources > st.RequestedSources {
		t.Fatalf("simulated %d sources, requested %d", st.Sources, st.RequestedSources)
	}

	i := 0
	g.Each(func(x, y int, c core.Cell) {
		b := before[i]
		i++
		if c.Elevation != b.Elevation || c.Moisture != b.Moisture || c.Temperature != b.Temperature || c.Biome != b.Biome {
			t.Fatalf("cell (%d,%d) terrain mutated by hydrology", x, y)
		}
		if c.RiverStrength < 0 || c.RiverStrength > 1 {
			t.Fatalf("river strength out of range at (%d,%d): %f", x, y, c.RiverStrength)
		}
		if c.Biome.IsWater() && (c.IsLake || c.RiverStrength > 0) {
			t.Fatalf("water cell (%d,%d) received river or lake", x, y)
		}
	})
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
	mutations := []func(*Params){
		func(p *Params) { p.SourceCount = -1 },
		func(p *Params) { p.RiverThreshold = 0 },
		func(p *Params) { p.LakeThreshold = -0.1 },
		func(p *Params) { p.MoistureInfluence = 1.5 },
		func(p *Params) { p.StepGain = math.NaN() },
	}
	for i, mutate := range mutations {
		p := DefaultParams()
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Fatalf("mutation %d: expected validation error", i)
		}
		if _, err := NewEngine(p, 1); err == nil {
			t.Fatalf("mutation %d: expected NewEngine to fail", i)
		}
	}
}
