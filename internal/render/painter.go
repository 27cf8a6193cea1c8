//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"terragen/internal/core"
)

// GridPainter keeps one ebiten image in sync with a terrain grid.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	// grid and mode of the last upload; pixels are only rewritten on change.
	grid *core.Grid
	mode Mode
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), mode: -1}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit renders g in mode, uploads it when needed and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, mode Mode, scale int) {
	if g == nil || g.W != gp.w || g.H != gp.h {
		return
	}
	if g != gp.grid || mode != gp.mode {
		if err := FillRGBA(gp.buf, g, mode); err != nil {
			return
		}
		gp.img.WritePixels(gp.buf)
		gp.grid, gp.mode = g, mode
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
