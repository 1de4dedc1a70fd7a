// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize is returned when a buffer cannot hold whole frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat is returned when no decoder is registered for a format.
	ErrUnknownFormat = errors.New("no decoder registered for format")

	// ErrChannelOutOfRange is returned when the requested channel does not exist.
	ErrChannelOutOfRange = errors.New("channel out of range")

	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrNoSamples is returned when a stream ends before producing any sample.
	ErrNoSamples = errors.New("stream has no samples")
)
