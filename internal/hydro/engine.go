package hydro

import (
	"terragen/internal/core"
	prng "terragen/pkg/core"
)

// Stats summarises one hydrology pass.
type Stats struct {
	RequestedSources int
	Sources          int
	Steps            int
	Volume           float64
	Sinks            int
	RiverCells       int
	LakeCells        int
}

// Engine runs the full hydrology post-pass with a fixed seed.
type Engine struct {
	params Params
	rng    *prng.RNG
}

// NewEngine validates p and returns an engine whose source selection is
// driven by seed.
func NewEngine(p Params, seed uint64) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: p, rng: prng.NewRNG(seed)}, nil
}

// Params returns the engine configuration.
func (e *Engine) Params() Params { return e.params }

// Run computes flow directions for g, simulates rivers and generates lakes.
// Only RiverStrength and IsLake are written; the flow field is discarded.
func (e *Engine) Run(g *core.Grid) Stats {
	ff := ComputeFlowDirections(g)
	walks := SimulateRivers(g, ff, e.params, e.rng)
	lakes := GenerateLakes(g, ff, e.params)

	st := Stats{
		RequestedSources: e.params.SourceCount,
		Sources:          len(walks),
		LakeCells:        lakes,
	}
	for _, w := range walks {
		st.Steps += w.Steps
		st.Volume += w.Volume
	}
	g.Each(func(x, y int, c core.Cell) {
		if c.RiverStrength > 0 {
			st.RiverCells++
		}
		if !c.Biome.IsWater() && ff.Direction(x, y) == Sink {
			st.Sinks++
		}
	})
	return st
}
