package gen

import (
	"sort"

	"terragen/internal/biome"
)

var presets = map[string]func() Config{}

// Register adds a named preset. Registering an existing name replaces it.
func Register(name string, fn func() Config) {
	if name == "" || fn == nil {
		return
	}
	presets[name] = fn
}

// Preset returns a fresh copy of the named preset.
func Preset(name string) (Config, bool) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return fn(), true
}

// Presets lists registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func latitudePreset() Config {
	c := DefaultConfig()
	c.RuleSet = biome.Latitude.Name
	c.Temperature.LatitudeWeight = 0.5
	c.Temperature.NoiseWeight = 1
	c.Temperature.Offset = 0
	c.Temperature.CoolingAmount = 0.3
	return c
}

func detailedPreset() Config {
	c := DefaultConfig()
	c.RuleSet = biome.Detailed.Name
	c.Temperature.LatitudeWeight = 0.3
	c.Hydrology.SourceCount = 80
	return c
}

func init() {
	Register("continent", DefaultConfig)
	Register("latitude", latitudePreset)
	Register("detailed", detailedPreset)
}
