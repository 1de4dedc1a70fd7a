// SPDX-License-Identifier: EPL-2.0

package view

import "math"

// Exponent limits of the scale sequence. Beyond them float64 steps stop
// being exact enough for snapping.
const (
	MinExponent = -15
	MaxExponent = 15
)

var stepBases = [...]float64{1, 2, 5}

// ScaleStepper is a cursor over the 1-2-5 sequence
// {1, 2, 5} x 10^e for e in [MinExponent, MaxExponent].
//
// Moving past either end of the sequence is a silent no-op.
type ScaleStepper struct {
	baseIndex int
	exponent  int
}

// NewScaleStepper returns a stepper positioned at the smallest sequence
// value that is >= target.
func NewScaleStepper(target float64) *ScaleStepper {
	s := &ScaleStepper{}
	s.SetTo(target)

	return s
}

// SetTo moves the cursor to the smallest sequence value >= target.
// Targets that are not positive, or below the first value, select the first
// value; targets above the last value select the last value.
func (s *ScaleStepper) SetTo(target float64) {
	if math.IsNaN(target) || target <= s.min() {
		s.baseIndex, s.exponent = 0, MinExponent
		return
	}

	if target >= s.max() {
		s.baseIndex, s.exponent = len(stepBases)-1, MaxExponent
		return
	}

	exponent := int(math.Floor(math.Log10(target)))
	// log10 can land one decade high just below a power of ten
	if stepValue(0, exponent) > target {
		exponent--
	}

	s.exponent = exponent
	s.baseIndex = -1

	for i := range stepBases {
		if stepValue(i, exponent) >= target {
			s.baseIndex = i
			break
		}
	}

	if s.baseIndex == -1 {
		s.baseIndex = 0
		s.exponent++
	}

	s.clamp()
}

// Value returns bases[baseIndex] * 10^exponent.
func (s *ScaleStepper) Value() float64 {
	return stepValue(s.baseIndex, s.exponent)
}

// stepValue divides by 10^-e for negative decades so that every sequence
// value is the correctly rounded float64, equal to its decimal literal.
func stepValue(baseIndex, exponent int) float64 {
	if exponent < 0 {
		return stepBases[baseIndex] / math.Pow10(-exponent)
	}

	return stepBases[baseIndex] * math.Pow10(exponent)
}

// Exponent returns the decade of the current value.
func (s *ScaleStepper) Exponent() int { return s.exponent }

// Increment moves to the next larger value.
func (s *ScaleStepper) Increment() {
	s.baseIndex++
	if s.baseIndex < len(stepBases) {
		return
	}

	if s.exponent < MaxExponent {
		s.baseIndex = 0
		s.exponent++
	} else {
		s.baseIndex--
	}
}

// Decrement moves to the next smaller value.
func (s *ScaleStepper) Decrement() {
	s.baseIndex--
	if s.baseIndex >= 0 {
		return
	}

	if s.exponent > MinExponent {
		s.baseIndex = len(stepBases) - 1
		s.exponent--
	} else {
		s.baseIndex++
	}
}

func (s *ScaleStepper) min() float64 {
	return stepValue(0, MinExponent)
}

func (s *ScaleStepper) max() float64 {
	return stepValue(len(stepBases)-1, MaxExponent)
}

// clamp keeps log10 rounding at the edges from leaving the sequence.
func (s *ScaleStepper) clamp() {
	switch {
	case s.exponent < MinExponent:
		s.baseIndex, s.exponent = 0, MinExponent
	case s.exponent > MaxExponent:
		s.baseIndex, s.exponent = len(stepBases)-1, MaxExponent
	}
}
