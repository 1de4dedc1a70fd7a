// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/waveseek/audio"
)

// oggReader is the part of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec oggReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst. The request is rounded down to
// whole frames; oggvorbis reports interleaved values, not frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := s.dec.Channels()
	size := len(dst) - len(dst)%ch
	if size == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:size])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

// Decoder decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	if dec.Channels() < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotVorbisFile, dec.Channels())
	}

	return &source{dec: dec}, nil
}
