package app

import (
	"flag"
	"fmt"
	"strings"

	"terragen/internal/gen"
	"terragen/internal/render"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Preset    string
	Width     int
	Height    int
	Seed      uint64
	Workers   int
	Scale     int
	Mode      string
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults. Zero
// dimensions and seed keep the preset's values.
func NewConfig() *Config {
	return &Config{Preset: "continent", Workers: 1, Scale: 3, Mode: render.ModeBiome.String()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "generator preset ("+strings.Join(gen.Presets(), ", ")+")")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (0 keeps the preset)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (0 keeps the preset)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "base seed for all fields (0 keeps the preset)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines for the field stage")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.Mode, "mode", c.Mode, "render mode (biome, elevation, moisture, temperature, hydrology)")
	fs.Var(&c.Overrides, "set", "generator parameter override in key=value form (repeatable)")
}

// Generator resolves the preset and applies flag values and overrides, in
// that order. Unlike gen.FromMap, bad overrides are reported.
func (c *Config) Generator() (gen.Config, error) {
	cfg, ok := gen.Preset(c.Preset)
	if !ok {
		return gen.Config{}, fmt.Errorf("unknown preset %q (have %s)", c.Preset, strings.Join(gen.Presets(), ", "))
	}
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Height = c.Height
	}
	if c.Seed != 0 {
		cfg.Seeds = gen.SeedsFrom(c.Seed)
	}
	cfg.Workers = c.Workers
	for _, kv := range c.Overrides {
		key, value, _ := strings.Cut(kv, "=")
		if err := cfg.Set(strings.TrimSpace(key), value); err != nil {
			return gen.Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return gen.Config{}, err
	}
	return cfg, nil
}

// RenderMode parses the configured render mode.
func (c *Config) RenderMode() (render.Mode, error) {
	return render.ParseMode(c.Mode)
}
