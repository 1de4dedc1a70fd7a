// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/waveseek/utils"
)

// Resample converts mono samples from srcRate to dstRate with Catmull-Rom
// cubic interpolation. Edge samples are repeated at both ends. Equal rates
// return a copy.
//
// The output holds ceil(len(samples) * dstRate / srcRate) samples, so the
// duration is preserved up to one output period.
func Resample(samples []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidSampleRate, srcRate, dstRate)
	}

	if srcRate == dstRate || len(samples) == 0 {
		return append([]float32(nil), samples...), nil
	}

	ratio := float64(srcRate) / float64(dstRate)
	n := int(math.Ceil(float64(len(samples)) / ratio))
	out := make([]float32, n)
	last := len(samples) - 1

	at := func(i int) float32 {
		return samples[max(0, min(i, last))]
	}

	for i := range out {
		pos := float64(i) * ratio
		k := int(pos)
		frac := float32(pos - float64(k))

		out[i] = utils.CubicInterpolate(at(k-1), at(k), at(k+1), at(k+2), frac)
	}

	return out, nil
}
