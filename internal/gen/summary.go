package gen

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"terragen/internal/core"
)

// Summary captures aggregate statistics of a generated grid.
type Summary struct {
	Size        core.Size
	Cells       int
	BiomeCounts map[core.Biome]int

	LandCells  int
	RiverCells int
	LakeCells  int

	MinElevation  float64
	MaxElevation  float64
	MeanElevation float64
	MeanMoisture  float64
	MeanTemp      float64
}

// Summarize walks g once and tallies its biomes and hydrology.
func Summarize(g *core.Grid) Summary {
	s := Summary{
		Size:         g.Size(),
		BiomeCounts:  make(map[core.Biome]int),
		MinElevation: math.Inf(1),
		MaxElevation: math.Inf(-1),
	}
	g.Each(func(_, _ int, c core.Cell) {
		s.Cells++
		s.BiomeCounts[c.Biome]++
		if !c.Biome.IsWater() {
			s.LandCells++
		}
		if c.RiverStrength > 0 {
			s.RiverCells++
		}
		if c.IsLake {
			s.LakeCells++
		}
		s.MinElevation = math.Min(s.MinElevation, c.Elevation)
		s.MaxElevation = math.Max(s.MaxElevation, c.Elevation)
		s.MeanElevation += c.Elevation
		s.MeanMoisture += c.Moisture
		s.MeanTemp += c.Temperature
	})
	if s.Cells > 0 {
		n := float64(s.Cells)
		s.MeanElevation /= n
		s.MeanMoisture /= n
		s.MeanTemp /= n
	}
	return s
}

// LandFraction is the share of cells not covered by a water biome.
func (s Summary) LandFraction() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.LandCells) / float64(s.Cells)
}

// Share returns the fraction of cells classified as b.
func (s Summary) Share(b core.Biome) float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.BiomeCounts[b]) / float64(s.Cells)
}

// ShareOf is Share for a biome given by name.
func (s Summary) ShareOf(name string) (float64, error) {
	b, ok := core.ParseBiome(name)
	if !ok {
		return 0, fmt.Errorf("gen: unknown biome %q", name)
	}
	return s.Share(b), nil
}

// Distribution formats the biome shares in descending order, e.g.
// "ocean 41.2%, plains 20.0%".
func (s Summary) Distribution() string {
	biomes := make([]core.Biome, 0, len(s.BiomeCounts))
	for b := range s.BiomeCounts {
		biomes = append(biomes, b)
	}
	sort.Slice(biomes, func(i, j int) bool {
		ci, cj := s.BiomeCounts[biomes[i]], s.BiomeCounts[biomes[j]]
		if ci != cj {
			return ci > cj
		}
		return biomes[i] < biomes[j]
	})
	parts := make([]string, 0, len(biomes))
	for _, b := range biomes {
		parts = append(parts, fmt.Sprintf("%s %.1f%%", b, 100*s.Share(b)))
	}
	return strings.Join(parts, ", ")
}
