// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/youpy/go-riff"
	"github.com/zaf/g711"

	"github.com/ik5/waveseek/audio"
	"github.com/ik5/waveseek/utils"
)

type sampleDecoder func(b []byte) float32

type source struct {
	r      io.Reader
	format Format
	width  int
	decode sampleDecoder
	buf    []byte
}

func (s *source) SampleRate() int { return int(s.format.SampleRate) }
func (s *source) Channels() int   { return int(s.format.NumChannels) }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * s.width
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / s.width
	for i := range samples {
		dst[i] = s.decode(s.buf[i*s.width : (i+1)*s.width])
	}

	if err != nil {
		return samples, io.EOF
	}

	return samples, nil
}

// Decoder reads PCM (8, 16, 24 and 32 bit), IEEE float (32 and 64 bit),
// A-law and mu-law WAV files, including WAVE_FORMAT_EXTENSIBLE headers.
type Decoder struct{}

// Decode parses the chunk list of r and returns a source over the "data"
// chunk. Inputs that are not an io.ReaderAt are read into memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rr, ok := r.(riff.RIFFReader)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rr = bytes.NewReader(data)
	}

	chunk, err := riff.NewReader(rr).Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if string(chunk.FileType[:]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	fmtChunk := findChunk(chunk, "fmt ")
	if fmtChunk == nil {
		return nil, fmt.Errorf("%w: no fmt chunk", ErrUnsupportedWavLayout)
	}

	format, err := readFormat(fmtChunk, fmtChunk.ChunkSize)
	if err != nil {
		return nil, err
	}

	dataChunk := findChunk(chunk, "data")
	if dataChunk == nil {
		return nil, ErrUnsupportedWavChunks
	}

	decode, width, err := decoderFor(format)
	if err != nil {
		return nil, err
	}

	return &source{
		r:      dataChunk,
		format: format,
		width:  width,
		decode: decode,
	}, nil
}

func findChunk(c *riff.RIFFChunk, id string) *riff.Chunk {
	for _, ch := range c.Chunks {
		if string(ch.ChunkID[:]) == id {
			return ch
		}
	}

	return nil
}

// decoderFor returns the per-sample conversion and the sample width in
// bytes for a format.
func decoderFor(f Format) (sampleDecoder, int, error) {
	switch {
	case f.AudioFormat == AudioFormatPCM && f.BitsPerSample == 8:
		// 8-bit PCM is unsigned
		return func(b []byte) float32 { return utils.PCMToFloat32(int(b[0])-128, 8) }, 1, nil

	case f.AudioFormat == AudioFormatPCM && f.BitsPerSample == 16:
		return func(b []byte) float32 {
			return utils.PCMToFloat32(int(int16(binary.LittleEndian.Uint16(b))), 16)
		}, 2, nil

	case f.AudioFormat == AudioFormatPCM && f.BitsPerSample == 24:
		return func(b []byte) float32 {
			v := int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8
			return utils.PCMToFloat32(int(v), 24)
		}, 3, nil

	case f.AudioFormat == AudioFormatPCM && f.BitsPerSample == 32:
		return func(b []byte) float32 {
			return utils.PCMToFloat32(int(int32(binary.LittleEndian.Uint32(b))), 32)
		}, 4, nil

	case f.AudioFormat == AudioFormatIEEEFloat && f.BitsPerSample == 32:
		return func(b []byte) float32 {
			return math.Float32frombits(binary.LittleEndian.Uint32(b))
		}, 4, nil

	case f.AudioFormat == AudioFormatIEEEFloat && f.BitsPerSample == 64:
		return func(b []byte) float32 {
			return float32(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		}, 8, nil

	case f.AudioFormat == AudioFormatALaw && f.BitsPerSample == 8:
		return func(b []byte) float32 { return float32(g711.DecodeAlawFrame(b[0])) / 32768 }, 1, nil

	case f.AudioFormat == AudioFormatMULaw && f.BitsPerSample == 8:
		return func(b []byte) float32 { return float32(g711.DecodeUlawFrame(b[0])) / 32768 }, 1, nil
	}

	return nil, 0, fmt.Errorf("%w: format %d with %d bits", ErrUnsupportedEncoding, f.AudioFormat, f.BitsPerSample)
}
