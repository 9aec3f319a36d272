package ui

import (
	"fmt"
	"math"
	"strconv"

	"chrono-ghost/internal/core"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title returns the panel heading for a sim.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s Controls", titleCaser.String(sim.Name()))
}

// NextInt returns the value an int control takes after one step in
// direction, and whether that differs from current.
func NextInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	lo, hi := int(math.Round(ctrl.Min)), int(math.Round(ctrl.Max))
	if ctrl.Wrap && ctrl.HasMin && ctrl.HasMax && hi >= lo {
		span := hi - lo + 1
		target = lo + ((target-lo)%span+span)%span
		return target, target != current
	}
	if ctrl.HasMin && target < lo {
		target = lo
	}
	if ctrl.HasMax && target > hi {
		target = hi
	}
	return target, target != current
}

// NextFloat is NextInt for float controls. Float controls never wrap.
func NextFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-current) >= 1e-9
}

// FormatFloat prints value with a precision suited to the control's step.
func FormatFloat(ctrl core.ParameterControl, value float64) string {
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

// ControlValue is the parsed state of one control.
type ControlValue struct {
	Int   int
	Float float64
	Text  string
	Valid bool
}

// ReadControl looks up ctrl in snap and parses its value.
func ReadControl(snap core.ParameterSnapshot, ctrl core.ParameterControl) ControlValue {
	param, ok := snap.Find(ctrl.Key)
	if !ok {
		return ControlValue{Text: "--"}
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return ControlValue{Text: "--"}
		}
		return ControlValue{Int: parsed, Float: float64(parsed), Text: param.Shown(), Valid: true}
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return ControlValue{Text: "--"}
		}
		return ControlValue{Float: parsed, Text: FormatFloat(ctrl, parsed), Valid: true}
	}
	return ControlValue{Text: "--"}
}
