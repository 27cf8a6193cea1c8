package noise

import (
	"fmt"
	"math"
)

// Sampler produces continuous 2D noise in approximately [-1, 1].
type Sampler interface {
	Sample(x, y float64) float64
}

// Fractal returns the amplitude-normalised sum of octaves samples of s.
// Octave i is sampled at frequency lacunarity^i with weight persistence^i,
// so a single octave reproduces s.Sample(x, y) exactly. Zero octaves, or
// weights that cancel out, yield 0.
func Fractal(s Sampler, x, y float64, octaves int, lacunarity, persistence float64) float64 {
	if octaves < 1 {
		return 0
	}
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		total += s.Sample(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

// Layer describes one fractal noise band evaluated over normalised grid
// coordinates.
type Layer struct {
	Frequency   float64
	Octaves     int
	Lacunarity  float64
	Persistence float64
}

// Eval samples the layer at normalised coordinates (nx, ny).
func (l Layer) Eval(s Sampler, nx, ny float64) float64 {
	return Fractal(s, nx*l.Frequency, ny*l.Frequency, l.Octaves, l.Lacunarity, l.Persistence)
}

// Validate rejects layers that would produce degenerate or non-finite noise.
func (l Layer) Validate() error {
	if l.Octaves < 1 {
		return fmt.Errorf("noise: octaves must be at least 1, got %d", l.Octaves)
	}
	if !positiveFinite(l.Frequency) {
		return fmt.Errorf("noise: frequency must be positive, got %v", l.Frequency)
	}
	if !positiveFinite(l.Lacunarity) {
		return fmt.Errorf("noise: lacunarity must be positive, got %v", l.Lacunarity)
	}
	if !positiveFinite(l.Persistence) {
		return fmt.Errorf("noise: persistence must be positive, got %v", l.Persistence)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
