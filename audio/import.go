// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/waveseek/project"
	"github.com/ik5/waveseek/view"
)

// UnitFullScale is the vertical unit of imported audio: 1 is full scale.
const UnitFullScale = "FS"

// ImportOptions controls how a stream becomes a waveform.
type ImportOptions struct {
	// Name of the new waveform. Empty keeps the default name.
	Name string
	// Channel is a zero-based channel index or Downmix.
	Channel int
	// SampleRate resamples the channel when positive and different from
	// the source rate.
	SampleRate int
	// BufSize overrides the read size; zero uses the source's BufSize.
	BufSize int
}

// ReadChannel reads src to the end and returns one channel (or the downmix)
// as mono samples. It does not close src.
func ReadChannel(src Source, channel, bufSize int) ([]float32, error) {
	mono, err := NewChannelReader(src, channel)
	if err != nil {
		return nil, err
	}

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = 4096
	}

	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		// a source that returns nothing without an error is done
		if n == 0 {
			break
		}
	}

	return out, nil
}

// Import reads one channel of src into a new waveform. The sample interval
// follows the (possibly resampled) rate and the vertical scale is the
// smallest 1-2-5 step that keeps the peak on screen. It does not close src.
func Import(src Source, opts ImportOptions) (*project.Waveform, error) {
	rate := src.SampleRate()
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}

	samples, err := ReadChannel(src, opts.Channel, opts.BufSize)
	if err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	if opts.SampleRate > 0 && opts.SampleRate != rate {
		samples, err = Resample(samples, rate, opts.SampleRate)
		if err != nil {
			return nil, err
		}
		rate = opts.SampleRate
	}

	cfg := project.DefaultWaveformConfig()
	if opts.Name != "" {
		cfg.Name = opts.Name
	}
	cfg.UnitY = UnitFullScale
	cfg.SampleInterval = 1 / float64(rate)

	w := project.NewWaveform(cfg, samples)
	w.Config.ScalePerDivY = FitScale(float64(w.Peak()), view.AxisY)

	return w, nil
}

// FitScale returns the smallest 1-2-5 scale per division at which a signal
// with the given peak stays inside the vertical window. A silent signal gets
// a scale of 1.
func FitScale(peak float64, axis view.Axis) float64 {
	if !(peak > 0) {
		return 1
	}

	return view.NewScaleStepper(peak / (float64(axis.Divisions) / 2)).Value()
}
