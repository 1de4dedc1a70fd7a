// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a RIFF/WAVE file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a missing or short "fmt " chunk.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedWavChunks indicates the "data" chunk is missing.
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")

	// ErrUnsupportedEncoding indicates an audio format code or bit depth
	// without a decoder.
	ErrUnsupportedEncoding = errors.New("unsupported WAV encoding")

	// ErrInvalidSampleInterval indicates a waveform whose sample interval
	// does not map to a positive integer rate.
	ErrInvalidSampleInterval = errors.New("sample interval does not give a usable sample rate")
)
