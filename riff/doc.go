// SPDX-License-Identifier: EPL-2.0

// Package riff encodes and decodes the RIFF variant used by waveseek
// project files.
//
// # Records
//
//	chunk:     id[4] | size u32le | payload[size]
//	list:      "LIST" | size u32le | type[4] | children   (size = 4 + len(children))
//	container: "RIFF" | size u32le | form[4] | payload    (size = 4 + len(payload))
//
// Unlike standard RIFF, which pads payloads to 2 bytes, every payload here
// must be a multiple of 4 bytes. EncodeChunk rejects anything else and
// decoders never skip pad bytes. All integers are little-endian.
//
// # Decoding
//
// Decoders work on a byte slice and absolute offsets. They return header
// fields plus DataStart/DataEnd and never copy payloads. Use a Scanner to walk
// the children of a list:
//
//	c, err := riff.DecodeContainerHeader(buf, "wask")
//	s := riff.NewScanner(buf, c.DataStart, c.DataEnd)
//	cfg, err := s.ExpectChunk("cfgs")
//	wavs, err := s.ExpectList("wavs")
//	for children := s.Enter(wavs); children.More(); {
//	    wave, err := children.ExpectList("wave")
//	    ...
//	}
//
// Every failure is a *FormatError carrying the offset and tag involved. Use
// errors.Is with ErrTruncatedBuffer, ErrMalformedContainer, ErrUnexpectedTag,
// ErrInvalidTag or ErrUnalignedPayload to classify it.
package riff
