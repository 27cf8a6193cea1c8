package ui

import (
	"image"
	"math"
	"strconv"

	"terragen/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 16
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	layoutControls(states, width)
	return states
}

// layoutControls stacks one row per control with +/- buttons flush right.
func layoutControls(states []controlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// controlsBottom is the first free y coordinate below the control rows.
func controlsBottom(states []controlState) int {
	return controlsTop + len(states)*lineHeight + infoSpacing
}

func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

// target returns the value one step in direction, formatted for
// Config.Set, or false when the step would leave the allowed range.
func (s *controlState) target(direction int) (string, bool) {
	if !s.hasValue || direction == 0 {
		return "", false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		step := int(math.Round(s.control.Step))
		if step <= 0 {
			step = 1
		}
		next := s.intValue + direction*step
		if s.control.HasMin {
			if lo := int(math.Round(s.control.Min)); next < lo {
				next = lo
			}
		}
		if s.control.HasMax {
			if hi := int(math.Round(s.control.Max)); next > hi {
				next = hi
			}
		}
		if next == s.intValue {
			return "", false
		}
		return strconv.Itoa(next), true
	case core.ParamTypeFloat:
		step := s.control.Step
		if step <= 0 {
			step = 0.05
		}
		// Snap to the step grid so repeated clicks do not accumulate error.
		next := math.Round((s.floatValue+float64(direction)*step)/step) * step
		if s.control.HasMin && next < s.control.Min {
			next = s.control.Min
		}
		if s.control.HasMax && next > s.control.Max {
			next = s.control.Max
		}
		if math.Abs(next-s.floatValue) < 1e-9 {
			return "", false
		}
		return strconv.FormatFloat(next, 'f', -1, 64), true
	default:
		return "", false
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
