package ui

import "terragen/internal/core"

// Source feeds the HUD with parameters and applies adjustments.
type Source interface {
	Title() string
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
	SetParameter(key, value string) error
	Status() []string
}

// GridSource exposes the grid currently on screen.
type GridSource interface {
	Grid() *core.Grid
}
