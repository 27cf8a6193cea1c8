//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"terragen/internal/core"
	"terragen/internal/hydro"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional hydrology diagnostics on top of the terrain view.
// Key 1 toggles flow arrows, 2 the river/lake mask and 3 the relief shading.
type Overlay struct {
	src   GridSource
	scale int

	showFlow   bool
	showWater  bool
	showRelief bool

	// Layers are rebuilt when the grid pointer changes.
	grid      *core.Grid
	flow      *hydro.FlowField
	waterImg  *ebiten.Image
	waterBuf  []byte
	reliefImg *ebiten.Image
	reliefBuf []byte

	pixel      *ebiten.Image
	samples    []flowSample
	sampleSpan float64
}

// NewOverlay constructs an overlay drawing at the given pixel scale.
func NewOverlay(src GridSource, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{src: src, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFlow = !o.showFlow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWater = !o.showWater
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showRelief = !o.showRelief
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	g := o.src.Grid()
	if g == nil {
		return
	}
	if !o.showFlow && !o.showWater && !o.showRelief {
		return
	}
	o.sync(g)

	if o.showRelief {
		o.drawLayer(screen, o.reliefImg)
	}
	if o.showWater {
		o.drawLayer(screen, o.waterImg)
	}
	if o.showFlow {
		o.drawFlow(screen)
	}
}

func (o *Overlay) sync(g *core.Grid) {
	if g == o.grid {
		return
	}
	total := 4 * g.W * g.H
	if o.waterImg == nil || o.waterImg.Bounds().Dx() != g.W || o.waterImg.Bounds().Dy() != g.H {
		o.waterImg = ebiten.NewImage(g.W, g.H)
		o.reliefImg = ebiten.NewImage(g.W, g.H)
		o.waterBuf = make([]byte, total)
		o.reliefBuf = make([]byte, total)
	}
	if fillHydrologyMask(o.waterBuf, g) {
		o.waterImg.WritePixels(o.waterBuf)
	}
	if fillRelief(o.reliefBuf, g) {
		o.reliefImg.WritePixels(o.reliefBuf)
	}
	o.flow = hydro.ComputeFlowDirections(g)
	o.samples, o.sampleSpan = sampleLayout(g.Size(), o.scale)
	o.grid = g
}

func (o *Overlay) drawLayer(screen, img *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(img, op)
}

func (o *Overlay) drawFlow(screen *ebiten.Image) {
	const headAngle = math.Pi / 6
	length := o.sampleSpan * 0.7
	headLength := length * 0.35
	thickness := math.Max(1, float64(o.scale)*0.6)
	arrow := color.RGBA{R: 235, G: 240, B: 255, A: 200}
	sink := color.RGBA{R: 255, G: 90, B: 60, A: 220}

	for _, s := range o.samples {
		dx, dy, ok := flowArrow(o.flow, s.x, s.y)
		if !ok {
			if !o.grid.At(s.x, s.y).Biome.IsWater() {
				o.drawPoint(screen, s.sx, s.sy, thickness*2.5, sink)
			}
			continue
		}
		n := math.Hypot(dx, dy)
		nx, ny := dx/n, dy/n
		tailX, tailY := s.sx-nx*length/2, s.sy-ny*length/2
		tipX, tipY := s.sx+nx*length/2, s.sy+ny*length/2
		o.drawLine(screen, tailX, tailY, tipX, tipY, thickness, arrow)

		angle := math.Atan2(ny, nx)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*headLength, tipY-math.Sin(angle+headAngle)*headLength, thickness, arrow)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*headLength, tipY-math.Sin(angle-headAngle)*headLength, thickness, arrow)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
