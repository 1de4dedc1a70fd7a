// SPDX-License-Identifier: EPL-2.0

package project

import (
	"errors"
	"fmt"
)

var (
	// ErrSampleCountMismatch is returned when numSamples does not match the
	// number of samples actually present.
	ErrSampleCountMismatch = errors.New("sample count mismatch")

	// ErrInvalidField is returned when an imported field has the wrong type
	// or an unusable value.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidConfig is returned when a "cfgs" chunk does not hold a valid
	// JSON object.
	ErrInvalidConfig = errors.New("invalid configuration json")

	// ErrIndexOutOfRange is returned when a waveform index does not exist.
	ErrIndexOutOfRange = errors.New("waveform index out of range")
)

// ValidationError reports content that is structurally readable but
// inconsistent, such as a sample count that disagrees with the data.
type ValidationError struct {
	// Field names the offending field.
	Field string
	// Msg is an optional detail.
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("project: %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("project: %s: %s: %v", e.Field, e.Msg, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
