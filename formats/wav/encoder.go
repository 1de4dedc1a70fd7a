// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/waveseek/project"
	"github.com/ik5/waveseek/utils"
)

// ExportBitDepth is the PCM depth written by WriteChannel.
const ExportBitDepth = 16

// SampleRate returns the integer rate closest to 1/interval.
func SampleRate(interval float64) (int, error) {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleInterval, interval)
	}

	rate := math.Round(1 / interval)
	if rate < 1 || rate > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleInterval, interval)
	}

	return int(rate), nil
}

// WriteChannel writes w as a mono 16-bit PCM WAV file. Samples are treated
// as full scale values and clipped to [-1, 1]; the rate is the rounded
// inverse of the sample interval.
func WriteChannel(ws io.WriteSeeker, w *project.Waveform) error {
	rate, err := SampleRate(w.Config.SampleInterval)
	if err != nil {
		return err
	}

	samples := w.Samples()
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(utils.Float32ToInt16(v))
	}

	enc := gowav.NewEncoder(ws, rate, ExportBitDepth, 1, AudioFormatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: ExportBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}

	return nil
}
