// SPDX-License-Identifier: EPL-2.0

package project

// Waveform is one channel: its configuration and the samples it owns.
type Waveform struct {
	Config WaveformConfig

	samples []float32
}

// NewWaveform returns a waveform that takes ownership of samples.
// cfg.NumSamples is overwritten with len(samples).
func NewWaveform(cfg WaveformConfig, samples []float32) *Waveform {
	w := &Waveform{Config: cfg}
	w.SetSamples(samples)

	return w
}

// Samples returns the sample data. Callers must not modify it.
func (w *Waveform) Samples() []float32 { return w.samples }

// SetSamples replaces the sample data and updates NumSamples.
func (w *Waveform) SetSamples(samples []float32) {
	w.samples = samples
	w.Config.NumSamples = uint32(len(samples))
}

// Len is the number of samples.
func (w *Waveform) Len() int { return len(w.samples) }

// Duration is the time between the first and the last sample.
func (w *Waveform) Duration() float64 {
	if len(w.samples) < 2 {
		return 0
	}

	return float64(len(w.samples)-1) * w.Config.SampleInterval
}

// TimeAt returns the timestamp of sample i, including the channel offset.
func (w *Waveform) TimeAt(i int) float64 {
	return w.Config.OffsetX + float64(i)*w.Config.SampleInterval
}

// Peak returns the largest absolute sample value.
func (w *Waveform) Peak() float32 {
	var peak float32
	for _, s := range w.samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	return peak
}

// VertexPairs returns one line segment per pair of neighbouring samples as
// x0, y0, x1, y1 quadruples, with x relative to the first sample.
// A waveform with fewer than two samples has no segments.
func (w *Waveform) VertexPairs() []float32 {
	n := len(w.samples)
	if n < 2 {
		return nil
	}

	out := make([]float32, (n-1)*4)
	dt := w.Config.SampleInterval

	for i := range n - 1 {
		out[i*4+0] = float32(dt * float64(i))
		out[i*4+1] = w.samples[i]
		out[i*4+2] = float32(dt * float64(i+1))
		out[i*4+3] = w.samples[i+1]
	}

	return out
}
