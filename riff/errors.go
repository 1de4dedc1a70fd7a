// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTag is returned when a chunk id or list type is not exactly 4 bytes.
	ErrInvalidTag = errors.New("tag must be exactly 4 bytes")

	// ErrUnalignedPayload is returned when chunk data is not a multiple of 4 bytes.
	ErrUnalignedPayload = errors.New("payload size must be a multiple of 4 bytes")

	// ErrPayloadTooLarge is returned when a size does not fit the 32-bit size field.
	ErrPayloadTooLarge = errors.New("payload exceeds 32-bit size field")

	// ErrTruncatedBuffer is returned when a record extends past the bytes available to it.
	ErrTruncatedBuffer = errors.New("record exceeds buffer bounds")

	// ErrMalformedContainer is returned when a literal or header field is wrong.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrUnexpectedTag is returned when a record has a different tag than the layout requires.
	ErrUnexpectedTag = errors.New("unexpected tag")
)

// FormatError describes where and why a buffer could not be encoded or decoded.
// Err is one of the sentinel errors above or an error from a nested decoder.
type FormatError struct {
	// Offset of the offending record in the buffer, -1 when encoding.
	Offset int
	// Tag found at Offset, if it could be read.
	Tag string
	// Want is the expected tag or literal, if any.
	Want string
	Err  error
}

func (e *FormatError) Error() string {
	msg := e.Err.Error()
	if e.Want != "" {
		msg = fmt.Sprintf("%s: want %q, got %q", msg, e.Want, e.Tag)
	} else if e.Tag != "" {
		msg = fmt.Sprintf("%s: tag %q", msg, e.Tag)
	}

	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}

	return "riff: " + msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatError(offset int, tag string, err error) *FormatError {
	return &FormatError{Offset: offset, Tag: tag, Err: err}
}

// Expect returns nil when got equals want, otherwise a FormatError wrapping
// ErrUnexpectedTag.
func Expect(offset int, got, want string) error {
	if got == want {
		return nil
	}

	return &FormatError{Offset: offset, Tag: got, Want: want, Err: ErrUnexpectedTag}
}
