// SPDX-License-Identifier: EPL-2.0

package view

import "math"

// Axis holds the grid constants of one screen axis.
type Axis struct {
	// Divisions visible across the screen.
	Divisions int
	// SnapStepsPerDivision is the offset quantisation per division.
	SnapStepsPerDivision int
	// MinorTicksPerDivision is only used for drawing.
	MinorTicksPerDivision int
}

// Grid constants of the horizontal (time) and vertical (amplitude) axes.
var (
	AxisX = Axis{Divisions: 10, SnapStepsPerDivision: 50, MinorTicksPerDivision: 5}
	AxisY = Axis{Divisions: 8, SnapStepsPerDivision: 20, MinorTicksPerDivision: 5}
)

// Span is the length of the visible window for the given scale.
func (a Axis) Span(scalePerDiv float64) float64 {
	return scalePerDiv * float64(a.Divisions)
}

// SnapStep is the offset granularity for the given scale.
func (a Axis) SnapStep(scalePerDiv float64) float64 {
	return scalePerDiv / float64(a.SnapStepsPerDivision)
}

// MinorTicks is the number of minor tick intervals across the screen.
func (a Axis) MinorTicks() int {
	return a.Divisions * a.MinorTicksPerDivision
}

// Snap floors v to a multiple of step. Offsets are always pulled toward
// negative infinity, never to the nearest step. A non-positive step leaves v
// unchanged.
func Snap(v, step float64) float64 {
	if !(step > 0) || math.IsInf(step, 0) {
		return v
	}

	return math.Floor(v/step) * step
}
