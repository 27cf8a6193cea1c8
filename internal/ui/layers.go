package ui

import (
	"image/color"
	"math"

	"terragen/internal/core"
	"terragen/internal/hydro"
)

// flowSample is one arrow anchor of the flow overlay, in cell and screen space.
type flowSample struct {
	x, y   int
	sx, sy float64
}

// sampleLayout spreads roughly targetSamples anchors evenly over the grid.
func sampleLayout(size core.Size, scale int) ([]flowSample, float64) {
	if size.W <= 0 || size.H <= 0 {
		return nil, 0
	}
	if scale <= 0 {
		scale = 1
	}
	const (
		targetSamples = 900.0
		minSpacing    = 3
		maxSpacing    = 16
	)
	spacing := int(math.Sqrt(float64(size.W*size.H) / targetSamples))
	if spacing < minSpacing {
		spacing = minSpacing
	}
	if spacing > maxSpacing {
		spacing = maxSpacing
	}

	countX := (size.W + spacing - 1) / spacing
	countY := (size.H + spacing - 1) / spacing
	startX := (size.W - 1 - (countX-1)*spacing) / 2
	startY := (size.H - 1 - (countY-1)*spacing) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	samples := make([]flowSample, 0, countX*countY)
	for yi := 0; yi < countY; yi++ {
		y := min(startY+yi*spacing, size.H-1)
		for xi := 0; xi < countX; xi++ {
			x := min(startX+xi*spacing, size.W-1)
			samples = append(samples, flowSample{
				x:  x,
				y:  y,
				sx: (float64(x) + 0.5) * float64(scale),
				sy: (float64(y) + 0.5) * float64(scale),
			})
		}
	}
	return samples, float64(spacing * scale)
}

// flowArrow returns the unit vector a cell drains along, or ok=false for sinks.
func flowArrow(ff *hydro.FlowField, x, y int) (dx, dy float64, ok bool) {
	d := ff.Direction(x, y)
	if d == hydro.Sink {
		return 0, 0, false
	}
	ox, oy := d.Offset()
	dx, dy = float64(ox), float64(oy)
	if d.Diagonal() {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}
	return dx, dy, true
}

var (
	riverTint = color.RGBA{R: 70, G: 150, B: 255}
	lakeTint  = color.RGBA{R: 40, G: 200, B: 220}
)

// fillHydrologyMask writes a translucent river/lake layer into buf. Dry cells
// stay fully transparent. The output is premultiplied as ebiten expects.
func fillHydrologyMask(buf []byte, g *core.Grid) bool {
	if len(buf) != 4*g.W*g.H {
		return false
	}
	const (
		maxAlpha      = 200.0
		intensityBias = 0.6
	)
	g.Each(func(x, y int, c core.Cell) {
		base := (y*g.W + x) * 4
		intensity, tint := 0.0, riverTint
		switch {
		case c.IsLake:
			intensity, tint = 1, lakeTint
		case c.RiverStrength > 0:
			intensity = clamp01(c.RiverStrength)
		}
		if intensity == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			return
		}
		a := math.Round(maxAlpha * math.Pow(intensity, intensityBias))
		buf[base+0] = premultiply(tint.R, a)
		buf[base+1] = premultiply(tint.G, a)
		buf[base+2] = premultiply(tint.B, a)
		buf[base+3] = uint8(a)
	})
	return true
}

// fillRelief writes a hillshade layer whose opacity grows with local slope.
func fillRelief(buf []byte, g *core.Grid) bool {
	if len(buf) != 4*g.W*g.H {
		return false
	}
	g.Each(func(x, y int, c core.Cell) {
		maxDiff := 0.0
		for _, o := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := x+o[0], y+o[1]
			if g.InBounds(nx, ny) {
				maxDiff = math.Max(maxDiff, math.Abs(c.Elevation-g.At(nx, ny).Elevation))
			}
		}
		col := elevationColor(c.Elevation)
		slope := clamp01(maxDiff * 20)
		a := float64(col.A) * (0.55 + 0.45*slope)
		base := (y*g.W + x) * 4
		buf[base+0] = premultiply(col.R, a)
		buf[base+1] = premultiply(col.G, a)
		buf[base+2] = premultiply(col.B, a)
		buf[base+3] = uint8(math.Round(clamp(a, 0, 255)))
	})
	return true
}

func premultiply(v uint8, alpha float64) uint8 {
	return uint8(math.Round(float64(v) * clamp(alpha, 0, 255) / 255))
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.42, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.55, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
