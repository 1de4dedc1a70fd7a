// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestResample_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, src, dst int
		want        int
	}{
		{n: 44100, src: 44100, dst: 8000, want: 8000},
		{n: 8000, src: 8000, dst: 16000, want: 16000},
		{n: 3, src: 2, dst: 1, want: 2},
		{n: 1, src: 48000, dst: 8000, want: 1},
		{n: 10, src: 1000, dst: 1000, want: 10},
	}

	for _, tt := range tests {
		out, err := Resample(make([]float32, tt.n), tt.src, tt.dst)
		if err != nil {
			t.Fatalf("Resample(%d, %d->%d) error = %v", tt.n, tt.src, tt.dst, err)
		}
		if len(out) != tt.want {
			t.Errorf("Resample(%d, %d->%d) len = %d, want %d", tt.n, tt.src, tt.dst, len(out), tt.want)
		}
	}
}

func TestResample_Constant(t *testing.T) {
	t.Parallel()

	in := make([]float32, 100)
	for i := range in {
		in[i] = 0.5
	}

	out, err := Resample(in, 100, 37)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range out {
		if v != 0.5 {
			t.Fatalf("out[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestResample_LinearRampUpsampled(t *testing.T) {
	t.Parallel()

	in := make([]float32, 50)
	for i := range in {
		in[i] = float32(i)
	}

	out, err := Resample(in, 1, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Catmull-Rom reproduces straight lines away from the clamped edges
	for i := 4; i < len(out)-8; i++ {
		want := float64(i) / 4
		if math.Abs(float64(out[i])-want) > 1e-4 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestResample_SameRateCopies(t *testing.T) {
	t.Parallel()

	in := []float32{1, 2, 3}
	out, err := Resample(in, 10, 10)
	if err != nil {
		t.Fatal(err)
	}

	out[0] = 9
	if in[0] != 1 {
		t.Error("Resample() with equal rates aliases its input")
	}
}

func TestResample_InvalidRate(t *testing.T) {
	t.Parallel()

	for _, rates := range [][2]int{{0, 8000}, {8000, 0}, {-1, 8000}} {
		if _, err := Resample([]float32{1}, rates[0], rates[1]); !errors.Is(err, ErrInvalidSampleRate) {
			t.Errorf("Resample(%v) error = %v, want ErrInvalidSampleRate", rates, err)
		}
	}
}

func BenchmarkResample(b *testing.B) {
	in := make([]float32, 48000)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) / 10))
	}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Resample(in, 48000, 44100)
	}
}
