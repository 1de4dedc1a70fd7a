// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per frame (1 = mono, 2 = stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the number
	// of values written, not frames. n == 0 with io.EOF ends the stream.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is a read size that suits the underlying decoder.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys such as "wav" or "mp3" to decoders.
// It is safe for concurrent use.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register adds d under format, replacing any previous decoder. Keys are
// case-insensitive.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

// Get returns the decoder registered for format.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]

	return d, ok
}

// Formats returns the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// Decode opens r with the decoder registered for format.
func (r *Registry) Decode(format string, in io.Reader) (Source, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := d.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	return src, nil
}
