// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/waveseek/audio"
	"github.com/ik5/waveseek/utils"
)

// outputChannels is fixed: go-mp3 always emits interleaved stereo, with mono
// streams duplicated to both sides.
const outputChannels = 2

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec mp3Reader
	buf []byte
	// pending holds an odd trailing byte between reads
	pending []byte
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	k := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	n, err := s.dec.Read(s.buf[k:])
	n += k

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.PCMToFloat32(int(v), 16)
	}

	if n%2 == 1 {
		s.pending = append(s.pending, s.buf[n-1])
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, err
}

// Decoder decodes MPEG-1/2 layer III streams with github.com/hajimehoshi/go-mp3.
// The resulting source is always stereo.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{dec: dec}, nil
}
