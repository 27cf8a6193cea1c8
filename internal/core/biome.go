package core

// Biome enumerates the terrain categories a cell can be classified as.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomeDeepOcean
	BiomeBeach
	BiomePlains
	BiomeGrassland
	BiomeForest
	BiomeDenseForest
	BiomeDesert
	BiomeTundra
	BiomeTaiga
	BiomeMountain
	BiomeSnowPeak
	BiomeSwamp
	BiomeSavanna
	BiomeScrubland

	biomeCount
)

var biomeNames = [biomeCount]string{
	BiomeOcean:       "ocean",
	BiomeDeepOcean:   "deep_ocean",
	BiomeBeach:       "beach",
	BiomePlains:      "plains",
	BiomeGrassland:   "grassland",
	BiomeForest:      "forest",
	BiomeDenseForest: "dense_forest",
	BiomeDesert:      "desert",
	BiomeTundra:      "tundra",
	BiomeTaiga:       "taiga",
	BiomeMountain:    "mountain",
	BiomeSnowPeak:    "snow_peak",
	BiomeSwamp:       "swamp",
	BiomeSavanna:     "savanna",
	BiomeScrubland:   "scrubland",
}

// Biomes lists every defined biome in declaration order.
func Biomes() []Biome {
	out := make([]Biome, biomeCount)
	for i := range out {
		out[i] = Biome(i)
	}
	return out
}

// Valid reports whether b is one of the defined biomes.
func (b Biome) Valid() bool { return b < biomeCount }

// IsWater reports whether the biome is open water. Water cells are flow sinks
// and never host rivers or lakes.
func (b Biome) IsWater() bool {
	return b == BiomeOcean || b == BiomeDeepOcean
}

// IsShore reports whether the biome is water or the beach band next to it.
func (b Biome) IsShore() bool {
	return b.IsWater() || b == BiomeBeach
}

func (b Biome) String() string {
	if !b.Valid() {
		return "unknown"
	}
	return biomeNames[b]
}

// ParseBiome maps a biome name back to its value.
func ParseBiome(name string) (Biome, bool) {
	for i, n := range biomeNames {
		if n == name {
			return Biome(i), true
		}
	}
	return 0, false
}
