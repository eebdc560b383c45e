package stroke

import (
	"math"

	"github.com/gogpu/ink"
)

// PressureDefault is the pressure of samples from devices without pressure
// support, and the value stored for NaN pressures.
const PressureDefault = 0.5

// InputData is one recorded pointer sample.
type InputData struct {
	pos      ink.Vec2
	pressure float64
}

// NewInputData creates a sample. Pressure is clamped into [0, 1].
func NewInputData(pos ink.Vec2, pressure float64) InputData {
	d := InputData{pos: pos}
	d.SetPressure(pressure)
	return d
}

// Pos returns the sample position in canvas units.
func (d InputData) Pos() ink.Vec2 {
	return d.pos
}

// SetPos sets the sample position.
func (d *InputData) SetPos(pos ink.Vec2) {
	d.pos = pos
}

// Pressure returns the normalized pressure in [0, 1].
func (d InputData) Pressure() float64 {
	return d.pressure
}

// SetPressure clamps p into [0, 1] and stores it.
func (d *InputData) SetPressure(p float64) {
	d.pressure = clampPressure(p)
}

func clampPressure(p float64) float64 {
	if math.IsNaN(p) {
		return PressureDefault
	}
	return min(max(p, 0), 1)
}

// Element is one point of a stroke.
type Element struct {
	InputData
}

// NewElement creates an element from a sample.
func NewElement(data InputData) Element {
	return Element{InputData: data}
}

// positions returns the positions of elements.
func positions(elems []Element) []ink.Vec2 {
	pts := make([]ink.Vec2, len(elems))
	for i, e := range elems {
		pts[i] = e.pos
	}
	return pts
}

// translateElements shifts every element by offset.
func translateElements(elems []Element, offset ink.Vec2) {
	for i := range elems {
		elems[i].pos = elems[i].pos.Add(offset)
	}
}

// fitElements maps the hull of elems onto target, keeping every mapped
// position inside target.
func fitElements(elems []Element, target ink.Box) {
	hull, ok := ink.BoxFromPoints(positions(elems)...)
	if !ok {
		return
	}
	m := ink.BoxTransform(hull, target)
	for i := range elems {
		elems[i].pos = clampInto(m.TransformPoint(elems[i].pos), target)
	}
}

func clampInto(p ink.Vec2, b ink.Box) ink.Vec2 {
	return p.Max(b.Min).Min(b.Max)
}
