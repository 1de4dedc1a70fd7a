// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a function of sample index and channel.
// It satisfies audio.Source without importing it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
	err          error
	closed       bool
}

// NewMockSource returns a source of totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource returns a source of zeros.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource returns the same sine wave on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource returns value on every channel.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewChannelSource returns a source where channel c always carries values[c].
func NewChannelSource(sampleRate, totalSamples int, values ...float32) *MockSource {
	return NewMockSource(sampleRate, len(values), totalSamples, func(_ int, channel int) float32 {
		return values[channel]
	})
}

// FailAfter makes ReadSamples return err once all frames are generated,
// instead of io.EOF.
func (m *MockSource) FailAfter(err error) *MockSource {
	m.err = err
	return m
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	end := io.EOF
	if m.err != nil {
		end = m.err
	}

	if m.generated >= m.totalSamples {
		return 0, end
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += frames
	n := frames * m.channels

	if m.generated >= m.totalSamples {
		return n, end
	}

	return n, nil
}
