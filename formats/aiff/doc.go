// SPDX-License-Identifier: EPL-2.0

// Package aiff imports AIFF audio as waveseek channels.
//
// It wraps github.com/go-audio/aiff and normalises 8, 16, 24 and 32-bit
// big-endian PCM to float32 in [-1, 1):
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    ...
//	}
//
// go-audio/aiff needs an io.ReadSeeker; other readers are buffered in
// memory before decoding.
package aiff
