package render

import "fmt"

// Mode selects which cell attribute is visualised.
type Mode int

const (
	// ModeBiome colours cells by biome with elevation shading and water features.
	ModeBiome Mode = iota
	// ModeElevation renders a hypsometric ramp.
	ModeElevation
	// ModeMoisture renders dry to wet.
	ModeMoisture
	// ModeTemperature renders cold to hot.
	ModeTemperature
	// ModeHydrology shows rivers and lakes over a grey relief.
	ModeHydrology

	modeCount
)

var modeNames = [modeCount]string{
	ModeBiome:       "biome",
	ModeElevation:   "elevation",
	ModeMoisture:    "moisture",
	ModeTemperature: "temperature",
	ModeHydrology:   "hydrology",
}

func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next cycles to the following mode, wrapping after the last.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// Modes lists every render mode.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ParseMode resolves a mode by name.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("render: unknown mode %q", name)
}
