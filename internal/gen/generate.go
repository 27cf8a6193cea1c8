package gen

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"terragen/internal/biome"
	"terragen/internal/core"
	"terragen/internal/hydro"
	"terragen/internal/noise"
)

// Result bundles the generated grid with the telemetry of its hydrology pass.
type Result struct {
	Grid      *core.Grid
	RuleSet   string
	Hydrology hydro.Stats
}

// Generate builds a terrain grid for cfg.
func Generate(cfg Config) (*core.Grid, error) {
	res, err := Run(cfg)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// Run validates cfg, fills every cell from three independent noise fields,
// classifies it and finishes with the hydrology pass.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	g, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return Result{}, err
	}
	f, err := NewFields(cfg)
	if err != nil {
		return Result{}, err
	}
	if err := Populate(g, f, cfg.Workers); err != nil {
		return Result{}, err
	}

	engine, err := hydro.NewEngine(cfg.Hydrology, cfg.Seeds.Hydrology)
	if err != nil {
		return Result{}, fmt.Errorf("gen: %w", err)
	}
	return Result{
		Grid:      g,
		RuleSet:   f.Classifier().Name(),
		Hydrology: engine.Run(g),
	}, nil
}

// Fields evaluates the shaped elevation, moisture and temperature of a
// single cell and classifies it.
type Fields struct {
	elevation   noise.Sampler
	moisture    noise.Sampler
	temperature noise.Sampler
	classifier  *biome.Classifier
	cfg         Config
}

// NewFields builds the seeded samplers and classifier described by cfg. cfg
// is assumed to be valid.
func NewFields(cfg Config) (*Fields, error) {
	rs, ok := biome.Lookup(cfg.RuleSet)
	if !ok {
		return nil, fmt.Errorf("gen: unknown rule set %q", cfg.RuleSet)
	}
	cls, err := biome.NewClassifier(rs)
	if err != nil {
		return nil, err
	}
	f := &Fields{classifier: cls, cfg: cfg}
	samplers := []struct {
		dst  *noise.Sampler
		seed uint64
	}{
		{&f.elevation, cfg.Seeds.Elevation},
		{&f.moisture, cfg.Seeds.Moisture},
		{&f.temperature, cfg.Seeds.Temperature},
	}
	for _, s := range samplers {
		if *s.dst, err = noise.NewSampler(cfg.Backend, s.seed); err != nil {
			return nil, fmt.Errorf("gen: %w", err)
		}
	}
	return f, nil
}

// Classifier returns the classifier used to derive cell biomes.
func (f *Fields) Classifier() *biome.Classifier { return f.classifier }

// Cell computes the terrain record at normalised coordinates (nx, ny).
func (f *Fields) Cell(nx, ny float64) core.Cell {
	h := f.Elevation(nx, ny)
	m := f.Moisture(nx, ny, h)
	t := f.Temperature(nx, ny, h)
	return core.Cell{
		Elevation:    h,
		Moisture:     m,
		Temperature:  t,
		Biome:        f.classifier.Classify(h, m, t),
		SettlementID: -1,
	}
}

// Elevation blends the three elevation bands, tapers them towards the border
// and rescales to [0, 1].
func (f *Fields) Elevation(nx, ny float64) float64 {
	e := f.cfg.Elevation
	h := e.Continental.Eval(f.elevation, nx, ny)*e.ContinentalWeight +
		e.Hills.Eval(f.elevation, nx, ny)*e.HillsWeight +
		e.Detail.Eval(f.elevation, nx, ny)*e.DetailWeight

	cx, cy := nx-0.5, ny-0.5
	mask := 1 - smoothstep(e.IslandInner, e.IslandOuter, math.Sqrt(cx*cx+cy*cy))
	h *= e.IslandFloor + (1-e.IslandFloor)*mask
	return core.Clamp01((h + 1) / 2)
}

// Moisture samples the moisture field and boosts it over low ground.
func (f *Fields) Moisture(nx, ny, elevation float64) float64 {
	p := f.cfg.Moisture
	m := (p.Layer.Eval(f.moisture, nx, ny) + 1) / 2
	if elevation < p.CoastLevel {
		m = math.Min(1, m+p.CoastBoost)
	}
	return core.Clamp01(m)
}

// Temperature samples the temperature field, blends in the latitude
// gradient and cools high ground.
func (f *Fields) Temperature(nx, ny, elevation float64) float64 {
	p := f.cfg.Temperature
	t := (p.Layer.Eval(f.temperature, nx, ny) + 1) / 2
	t = t*p.NoiseWeight + p.Offset
	if p.LatitudeWeight > 0 {
		lat := 1 - math.Abs(ny-0.5)*2
		t = t*(1-p.LatitudeWeight) + lat*p.LatitudeWeight
	}
	t -= smoothstep(p.CoolingStart, p.CoolingEnd, elevation) * p.CoolingAmount
	return core.Clamp01(t)
}

// Populate fills every cell of g from f. Rows are distributed over at most
// workers goroutines; each cell depends only on its own coordinates so the
// result does not depend on the worker count.
func Populate(g *core.Grid, f *Fields, workers int) error {
	fillRow := func(y int) {
		ny := float64(y) / float64(g.H)
		for x := 0; x < g.W; x++ {
			g.Set(x, y, f.Cell(float64(x)/float64(g.W), ny))
		}
	}
	if workers <= 1 {
		for y := 0; y < g.H; y++ {
			fillRow(y)
		}
		return nil
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for y := 0; y < g.H; y++ {
		y := y
		eg.Go(func() error {
			fillRow(y)
			return nil
		})
	}
	return eg.Wait()
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := core.Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
