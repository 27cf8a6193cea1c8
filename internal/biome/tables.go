package biome

import (
	"sort"

	"terragen/internal/core"
)

// Continent reproduces the thresholds of the single-continent map: large
// oceans, a narrow beach band and seven biomes. Snow caps render as tundra.
// Upper bands start strictly above their threshold.
var Continent = RuleSet{
	Name: "continent",
	Rules: []Rule{
		{Elevation: Below(0.42), Biome: core.BiomeOcean},
		{Elevation: Below(0.47), Biome: core.BiomeBeach},
		{Elevation: Above(0.78), Temperature: Below(0.4), Biome: core.BiomeTundra},
		{Elevation: Above(0.68), Biome: core.BiomeMountain},

		// cold
		{Temperature: Below(0.25), Biome: core.BiomeTundra},

		// temperate cold
		{Temperature: Below(0.45), Moisture: Above(0.55), Biome: core.BiomeForest},
		{Temperature: Below(0.45), Biome: core.BiomePlains},

		// temperate
		{Temperature: Below(0.65), Moisture: Above(0.6), Biome: core.BiomeForest},
		{Temperature: Below(0.65), Biome: core.BiomePlains},

		// hot
		{Moisture: Below(0.25), Biome: core.BiomeDesert},
		{Moisture: Below(0.45), Biome: core.BiomePlains},
		{Biome: core.BiomeForest},
	},
}

// Detailed splits every band into the extended biome set.
var Detailed = RuleSet{
	Name: "detailed",
	Rules: []Rule{
		{Elevation: Below(0.3), Biome: core.BiomeDeepOcean},
		{Elevation: Below(0.42), Biome: core.BiomeOcean},
		{Elevation: Below(0.46), Biome: core.BiomeBeach},
		{Elevation: AtLeast(0.8), Temperature: Below(0.35), Biome: core.BiomeSnowPeak},
		{Elevation: AtLeast(0.7), Biome: core.BiomeMountain},

		{Temperature: Below(0.2), Biome: core.BiomeTundra},

		{Temperature: Below(0.4), Moisture: AtLeast(0.55), Biome: core.BiomeTaiga},
		{Temperature: Below(0.4), Moisture: AtLeast(0.3), Biome: core.BiomeGrassland},
		{Temperature: Below(0.4), Biome: core.BiomeScrubland},

		{Elevation: Below(0.52), Moisture: AtLeast(0.7), Biome: core.BiomeSwamp},

		{Temperature: Below(0.65), Moisture: AtLeast(0.6), Biome: core.BiomeDenseForest},
		{Temperature: Below(0.65), Moisture: AtLeast(0.4), Biome: core.BiomeForest},
		{Temperature: Below(0.65), Moisture: AtLeast(0.2), Biome: core.BiomeGrassland},
		{Temperature: Below(0.65), Biome: core.BiomeScrubland},

		{Moisture: AtLeast(0.65), Biome: core.BiomeDenseForest},
		{Moisture: AtLeast(0.4), Biome: core.BiomeSavanna},
		{Moisture: AtLeast(0.2), Biome: core.BiomeScrubland},
		{Biome: core.BiomeDesert},
	},
}

// Latitude pairs with temperature fields that carry a pole-to-equator
// gradient: smaller oceans, higher mountains and wider cold bands.
var Latitude = RuleSet{
	Name: "latitude",
	Rules: []Rule{
		{Elevation: Below(0.38), Biome: core.BiomeOcean},
		{Elevation: Below(0.42), Biome: core.BiomeBeach},
		{Elevation: AtLeast(0.82), Biome: core.BiomeSnowPeak},
		{Elevation: AtLeast(0.72), Temperature: Below(0.3), Biome: core.BiomeSnowPeak},
		{Elevation: AtLeast(0.72), Biome: core.BiomeMountain},

		{Temperature: Below(0.3), Moisture: AtLeast(0.5), Biome: core.BiomeTaiga},
		{Temperature: Below(0.3), Biome: core.BiomeTundra},

		{Temperature: Below(0.6), Moisture: AtLeast(0.75), Biome: core.BiomeSwamp},
		{Temperature: Below(0.6), Moisture: AtLeast(0.5), Biome: core.BiomeForest},
		{Temperature: Below(0.6), Biome: core.BiomeGrassland},

		{Moisture: AtLeast(0.6), Biome: core.BiomeForest},
		{Moisture: AtLeast(0.3), Biome: core.BiomeSavanna},
		{Biome: core.BiomeDesert},
	},
}

var ruleSets = map[string]RuleSet{}

// Register adds a rule set under its name, replacing any previous entry.
func Register(rs RuleSet) {
	if rs.Name == "" || len(rs.Rules) == 0 {
		return
	}
	ruleSets[rs.Name] = rs
}

// Lookup returns the rule set registered under name.
func Lookup(name string) (RuleSet, bool) {
	rs, ok := ruleSets[name]
	return rs, ok
}

// Names lists the registered rule sets in sorted order.
func Names() []string {
	names := make([]string, 0, len(ruleSets))
	for name := range ruleSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Continent)
	Register(Detailed)
	Register(Latitude)
}
