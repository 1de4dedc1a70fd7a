// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Audio format codes of the "fmt " chunk.
const (
	AudioFormatPCM        = 1
	AudioFormatIEEEFloat  = 3
	AudioFormatALaw       = 6
	AudioFormatMULaw      = 7
	AudioFormatExtensible = 0xFFFE
)

// Format is the fixed part of the "fmt " chunk.
type Format struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// formatExtension follows Format when AudioFormat is AudioFormatExtensible.
type formatExtension struct {
	Size          uint16
	ValidBits     uint16
	ChannelMask   uint32
	SubFormatCode uint16
}

// readFormat decodes a "fmt " chunk. For WAVE_FORMAT_EXTENSIBLE the
// returned AudioFormat is the sub-format code.
func readFormat(r io.Reader, size uint32) (Format, error) {
	var f Format

	if size < 16 {
		return f, fmt.Errorf("%w: fmt chunk has %d bytes", ErrUnsupportedWavLayout, size)
	}

	if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
		return f, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if f.AudioFormat == AudioFormatExtensible {
		var ext formatExtension
		if size < 26 {
			return f, fmt.Errorf("%w: extensible fmt chunk has %d bytes", ErrUnsupportedWavLayout, size)
		}

		if err := binary.Read(r, binary.LittleEndian, &ext); err != nil {
			return f, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}

		f.AudioFormat = ext.SubFormatCode
	}

	if f.NumChannels == 0 || f.SampleRate == 0 {
		return f, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedWavLayout, f.NumChannels, f.SampleRate)
	}

	return f, nil
}
