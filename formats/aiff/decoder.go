// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/waveseek/audio"
	"github.com/ik5/waveseek/utils"
)

// aiffReader is the part of aiff.Decoder the source needs.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec      aiffReader
	format   *goaudio.Format
	bitDepth int
	intBuf   *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.format.SampleRate }
func (s *source) Channels() int   { return s.format.NumChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.format, SourceBitDepth: s.bitDepth}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat32(v, s.bitDepth)
	}

	// a short read without an error is the end of the sound data
	if n == 0 || n < len(dst) {
		return n, io.EOF
	}

	return n, err
}

// Decoder reads 8, 16, 24 and 32-bit AIFF files with github.com/go-audio/aiff.
type Decoder struct{}

// Decode parses the AIFF header. go-audio needs to seek, so inputs that are
// not an io.ReadSeeker are read into memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:      dec,
		format:   format,
		bitDepth: int(dec.BitDepth),
	}, nil
}
