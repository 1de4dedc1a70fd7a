// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "full scale", input: 1, want: math.MaxInt16},
		{name: "negative full scale", input: -1, want: -math.MaxInt16},
		{name: "half", input: 0.5, want: 16383},
		{name: "negative half", input: -0.5, want: -16383},
		{name: "clamped above", input: 3.2, want: math.MaxInt16},
		{name: "clamped below", input: -7, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPCMToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		bitDepth int
		want     float32
	}{
		{name: "8-bit min", value: -128, bitDepth: 8, want: -1},
		{name: "16-bit half", value: 16384, bitDepth: 16, want: 0.5},
		{name: "24-bit quarter", value: 2097152, bitDepth: 24, want: 0.25},
		{name: "32-bit min", value: math.MinInt32, bitDepth: 32, want: -1},
		{name: "unknown depth uses 16-bit", value: -16384, bitDepth: 12, want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PCMToFloat32(tt.value, tt.bitDepth); got != tt.want {
				t.Errorf("PCMToFloat32(%d, %d) = %v, want %v", tt.value, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_RoundTripThroughPCM(t *testing.T) {
	t.Parallel()

	for _, v := range []float32{-0.75, -0.1, 0, 0.3, 0.99} {
		back := PCMToFloat32(int(Float32ToInt16(v)), 16)
		if diff := math.Abs(float64(back - v)); diff > 1.0/16384 {
			t.Errorf("round trip of %v gave %v (diff %v)", v, back, diff)
		}
	}
}
