package render

import (
	"fmt"
	"image"
	"image/color"

	"terragen/internal/core"
)

var (
	elevationStops = []color.NRGBA{
		{R: 20, G: 40, B: 110, A: 255},
		{R: 60, G: 130, B: 190, A: 255},
		{R: 90, G: 160, B: 80, A: 255},
		{R: 200, G: 180, B: 110, A: 255},
		{R: 130, G: 100, B: 80, A: 255},
		{R: 250, G: 250, B: 250, A: 255},
	}
	moistureStops = []color.NRGBA{
		{R: 190, G: 150, B: 90, A: 255},
		{R: 220, G: 220, B: 150, A: 255},
		{R: 60, G: 150, B: 200, A: 255},
		{R: 20, G: 50, B: 140, A: 255},
	}
	temperatureStops = []color.NRGBA{
		{R: 40, G: 60, B: 200, A: 255},
		{R: 240, G: 240, B: 240, A: 255},
		{R: 220, G: 60, B: 30, A: 255},
	}
)

// CellColor maps a cell to its display colour under mode.
func CellColor(c core.Cell, mode Mode) color.NRGBA {
	switch mode {
	case ModeElevation:
		return ramp(c.Elevation, elevationStops...)
	case ModeMoisture:
		return ramp(c.Moisture, moistureStops...)
	case ModeTemperature:
		return ramp(c.Temperature, temperatureStops...)
	case ModeHydrology:
		v := uint8(40 + 180*core.Clamp01(c.Elevation))
		base := color.NRGBA{R: v, G: v, B: v, A: 255}
		if c.Biome.IsWater() {
			base = color.NRGBA{R: 15, G: 25, B: 50, A: 255}
		}
		return waterFeatures(base, c)
	default:
		return waterFeatures(shade(BiomeColor(c.Biome), c.Elevation), c)
	}
}

func waterFeatures(base color.NRGBA, c core.Cell) color.NRGBA {
	if c.IsLake {
		return lakeColor
	}
	if c.RiverStrength > 0 {
		return blendColors(base, riverColor, 0.4+0.6*core.Clamp01(c.RiverStrength))
	}
	return base
}

// FillRGBA writes the colours of every cell of g into buf in row-major RGBA
// order. buf must hold exactly 4*W*H bytes.
func FillRGBA(buf []byte, g *core.Grid, mode Mode) error {
	if want := 4 * g.W * g.H; len(buf) != want {
		return fmt.Errorf("render: buffer holds %d bytes, grid needs %d", len(buf), want)
	}
	g.Each(func(x, y int, c core.Cell) {
		col := CellColor(c, mode)
		base := (y*g.W + x) * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	})
	return nil
}

// Image renders g into a new RGBA image with one pixel per cell.
func Image(g *core.Grid, mode Mode) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	// Pix is 4*W*H bytes with stride 4*W, matching FillRGBA.
	_ = FillRGBA(img.Pix, g, mode)
	return img
}
