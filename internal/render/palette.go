package render

import (
	"image/color"

	"terragen/internal/core"
)

var (
	riverColor   = color.NRGBA{R: 45, G: 95, B: 200, A: 255}
	lakeColor    = color.NRGBA{R: 55, G: 115, B: 185, A: 255}
	unknownColor = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
)

var biomePalette = map[core.Biome]color.NRGBA{
	core.BiomeOcean:       {R: 25, G: 60, B: 140, A: 255},
	core.BiomeDeepOcean:   {R: 15, G: 35, B: 95, A: 255},
	core.BiomeBeach:       {R: 220, G: 205, B: 150, A: 255},
	core.BiomePlains:      {R: 100, G: 165, B: 80, A: 255},
	core.BiomeGrassland:   {R: 125, G: 180, B: 85, A: 255},
	core.BiomeForest:      {R: 30, G: 105, B: 50, A: 255},
	core.BiomeDenseForest: {R: 20, G: 75, B: 35, A: 255},
	core.BiomeDesert:      {R: 210, G: 180, B: 100, A: 255},
	core.BiomeTundra:      {R: 210, G: 225, B: 230, A: 255},
	core.BiomeTaiga:       {R: 70, G: 110, B: 90, A: 255},
	core.BiomeMountain:    {R: 110, G: 100, B: 90, A: 255},
	core.BiomeSnowPeak:    {R: 245, G: 245, B: 250, A: 255},
	core.BiomeSwamp:       {R: 60, G: 85, B: 55, A: 255},
	core.BiomeSavanna:     {R: 180, G: 170, B: 85, A: 255},
	core.BiomeScrubland:   {R: 150, G: 140, B: 90, A: 255},
}

// BiomeColor returns the display colour of b. Undefined biomes render magenta.
func BiomeColor(b core.Biome) color.NRGBA {
	if c, ok := biomePalette[b]; ok {
		return c
	}
	return unknownColor
}

// shade darkens low ground: factor 0.7 at elevation 0 rising to 1 at 1.
func shade(c color.NRGBA, elevation float64) color.NRGBA {
	f := 0.7 + 0.3*core.Clamp01(elevation)
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

// ramp interpolates between stops spaced evenly over [0, 1].
func ramp(v float64, stops ...color.NRGBA) color.NRGBA {
	if len(stops) == 0 {
		return unknownColor
	}
	if len(stops) == 1 {
		return stops[0]
	}
	v = core.Clamp01(v)
	seg := v * float64(len(stops)-1)
	i := int(seg)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return blendColors(stops[i], stops[i+1], seg-float64(i))
}
