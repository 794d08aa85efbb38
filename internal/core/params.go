package core

import "strconv"

// Parameter is a single named value shown on the HUD.
type Parameter struct {
	Key      string
	Label    string
	Value    int
	ReadOnly bool
}

// String formats the value for display.
func (p Parameter) String() string { return strconv.Itoa(p.Value) }

// ParameterSnapshot captures the board's tunables and derived values at one
// point in time.
type ParameterSnapshot struct {
	Params []Parameter
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an integer parameter adjustable from the HUD.
// Bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Step  int

	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// Adjust returns the value reached by moving direction steps from current,
// clamped to the control's bounds.
func (c ParameterControl) Adjust(current, direction int) int {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if c.HasMin && target < c.Min {
		target = c.Min
	}
	if c.HasMax && target > c.Max {
		target = c.Max
	}
	return target
}

// ParameterProvider exposes the current parameter snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
