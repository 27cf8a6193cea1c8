//go:build ebiten

package app

import (
	"fmt"

	"terragen/internal/core"
	"terragen/internal/gen"
	"terragen/internal/render"
	"terragen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 300

// Game adapts the terrain generator to the ebiten.Game interface.
type Game struct {
	cfg     gen.Config
	result  gen.Result
	summary gen.Summary

	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	mode    render.Mode
	scale   int
	showHUD bool
}

// New generates the initial terrain for cfg and prepares the viewer.
func New(cfg gen.Config, mode render.Mode, scale int) (*Game, error) {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{cfg: cfg, mode: mode, scale: scale, showHUD: true}
	if err := g.regenerate(cfg); err != nil {
		return nil, err
	}
	g.painter = render.NewGridPainter(cfg.Width, cfg.Height)
	g.overlay = ui.NewOverlay(g, scale)
	g.hud = ui.NewHUD(g, HUDWidth)
	return g, nil
}

func (g *Game) regenerate(cfg gen.Config) error {
	res, err := gen.Run(cfg)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.result = res
	g.summary = gen.Summarize(res.Grid)
	return nil
}

// Grid returns the terrain currently displayed.
func (g *Game) Grid() *core.Grid { return g.result.Grid }

// Title names the HUD panel.
func (g *Game) Title() string { return "Terrain: " + g.cfg.RuleSet }

// Parameters exposes the generator configuration.
func (g *Game) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

// ParameterControls lists the HUD-adjustable parameters.
func (g *Game) ParameterControls() []core.ParameterControl { return gen.ParameterControls() }

// SetParameter applies a single override and regenerates. Dimension changes
// are rejected because the window and painter are sized once.
func (g *Game) SetParameter(key, value string) error {
	if key == "w" || key == "h" {
		return fmt.Errorf("grid size is fixed while the viewer runs")
	}
	next := g.cfg
	if err := next.Set(key, value); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	return g.regenerate(next)
}

// Status summarises the current terrain for the HUD.
func (g *Game) Status() []string {
	s, h := g.summary, g.result.Hydrology
	return []string{
		fmt.Sprintf("mode %s  [M]ode [R]egen [N]ext seed [H]UD", g.mode),
		fmt.Sprintf("land %.1f%%  elevation %.2f..%.2f", 100*s.LandFraction(), s.MinElevation, s.MaxElevation),
		fmt.Sprintf("sources %d/%d  sinks %d", h.Sources, h.RequestedSources, h.Sinks),
		fmt.Sprintf("river cells %d  lake cells %d", s.RiverCells, s.LakeCells),
		"overlay [1] flow [2] water [3] relief",
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mode = g.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.regenerate(g.cfg); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		next := g.cfg
		next.Seeds = gen.SeedsFrom(g.cfg.Seeds.Elevation + 4)
		if err := g.regenerate(next); err != nil {
			return err
		}
	}

	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(g.cfg.Width * g.scale)
	}
	return nil
}

// Draw renders the terrain, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.result.Grid, g.mode, g.scale)
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.cfg.Width*g.scale, g.cfg.Height*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.cfg.Width * g.scale
	if g.showHUD {
		w += HUDWidth
	}
	return w, g.cfg.Height * g.scale
}
