// SPDX-License-Identifier: EPL-2.0

package project

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ik5/waveseek/riff"
)

// Container tags.
const (
	FormType     = "wask"
	TagConfig    = "cfgs"
	TagWaveforms = "wavs"
	TagWave      = "wave"
	TagSamples   = "wavd"
)

// Serialize encodes p as a "wask" container:
//
//	RIFF wask
//	  cfgs  project JSON
//	  LIST wavs
//	    LIST wave
//	      cfgs  waveform JSON
//	      wavd  float32 little-endian samples
//	    ...
//
// The same in-memory state always encodes to the same bytes.
func Serialize(p *Project) ([]byte, error) {
	waves := make([][]byte, 0, len(p.waveforms))

	for _, w := range p.waveforms {
		cfg := w.Config
		cfg.NumSamples = uint32(len(w.samples))

		cfgChunk, err := encodeConfigChunk(cfg)
		if err != nil {
			return nil, err
		}

		dataChunk, err := riff.EncodeChunk(TagSamples, encodeSamples(w.samples))
		if err != nil {
			return nil, err
		}

		wave, err := riff.EncodeList(TagWave, cfgChunk, dataChunk)
		if err != nil {
			return nil, err
		}

		waves = append(waves, wave)
	}

	cfgChunk, err := encodeConfigChunk(p.Config)
	if err != nil {
		return nil, err
	}

	list, err := riff.EncodeList(TagWaveforms, waves...)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(cfgChunk)+len(list))
	payload = append(payload, cfgChunk...)
	payload = append(payload, list...)

	return riff.EncodeContainer(FormType, payload)
}

// Deserialize decodes a "wask" container into a new project. Structural
// problems are reported as *riff.FormatError. A sample count that does not
// match the "wavd" chunk is a *riff.FormatError wrapping a *ValidationError.
//
// Samples are copied out of buf. The selected index is not checked against
// the number of waveforms.
func Deserialize(buf []byte) (*Project, error) {
	c, err := riff.DecodeContainerHeader(buf, FormType)
	if err != nil {
		return nil, err
	}

	s := riff.NewScanner(buf, c.DataStart, c.DataEnd)

	h, err := s.ExpectChunk(TagConfig)
	if err != nil {
		return nil, err
	}

	p := New("")
	if err := decodeConfig(h, s.Payload(h), &p.Config); err != nil {
		return nil, err
	}

	wavs, err := s.ExpectList(TagWaveforms)
	if err != nil {
		return nil, err
	}

	for children := s.Enter(wavs); children.More(); {
		w, err := decodeWave(children)
		if err != nil {
			return nil, err
		}

		p.waveforms = append(p.waveforms, w)
	}

	return p, nil
}

func decodeWave(s *riff.Scanner) (*Waveform, error) {
	l, err := s.ExpectList(TagWave)
	if err != nil {
		return nil, err
	}

	inner := s.Enter(l)

	h, err := inner.ExpectChunk(TagConfig)
	if err != nil {
		return nil, err
	}

	cfg := DefaultWaveformConfig()
	if err := decodeConfig(h, inner.Payload(h), &cfg); err != nil {
		return nil, err
	}

	d, err := inner.ExpectChunk(TagSamples)
	if err != nil {
		return nil, err
	}

	if uint64(cfg.NumSamples)*4 != uint64(d.Size) {
		return nil, &riff.FormatError{
			Offset: d.Offset,
			Tag:    d.ID,
			Err: &ValidationError{
				Field: "numSamples",
				Msg:   fmt.Sprintf("%d samples need %d bytes, chunk holds %d", cfg.NumSamples, uint64(cfg.NumSamples)*4, d.Size),
				Err:   ErrSampleCountMismatch,
			},
		}
	}

	return &Waveform{Config: cfg, samples: decodeSamples(inner.Payload(d))}, nil
}

// encodeConfigChunk writes v as compact JSON without HTML escaping, padded
// with spaces to the chunk alignment.
func encodeConfigChunk(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, &riff.FormatError{Offset: -1, Tag: TagConfig, Err: fmt.Errorf("%w: %w", ErrInvalidConfig, err)}
	}

	text := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	return riff.EncodeChunk(TagConfig, riff.PadJSON(text))
}

// decodeConfig overlays the JSON in data onto v, so missing keys keep the
// values v already holds.
func decodeConfig(h riff.ChunkHeader, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &riff.FormatError{Offset: h.Offset, Tag: h.ID, Err: fmt.Errorf("%w: %w", ErrInvalidConfig, err)}
	}

	return nil
}

func encodeSamples(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}

	return out
}

func decodeSamples(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}

	return out
}
