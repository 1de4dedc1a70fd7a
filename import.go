// SPDX-License-Identifier: EPL-2.0

package waveseek

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/waveseek/audio"
	"github.com/ik5/waveseek/formats/aiff"
	"github.com/ik5/waveseek/formats/mp3"
	"github.com/ik5/waveseek/formats/siglent"
	"github.com/ik5/waveseek/formats/vorbis"
	"github.com/ik5/waveseek/formats/wav"
	"github.com/ik5/waveseek/internal/logging"
	"github.com/ik5/waveseek/project"
	"github.com/ik5/waveseek/view"
)

// FormatSiglent is the format key of Siglent CSV captures.
const FormatSiglent = "csv"

// Palette is the colour sequence given to imported channels, in the
// familiar scope order: yellow, magenta, cyan, green.
var Palette = [][3]float32{
	{1, 0.9, 0.2},
	{1, 0.4, 0.8},
	{0.3, 0.8, 1},
	{0.4, 1, 0.4},
}

// NewRegistry returns a registry with every audio decoder waveseek ships.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}

var defaultRegistry = NewRegistry()

// FormatOf returns the format key for a file name, its lower-cased
// extension without the dot.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ImportFile adds the file at path as a new waveform. The format is taken
// from the extension. opts only applies to audio files; an empty Name uses
// the file's base name.
func (s *Session) ImportFile(path string, opts audio.ImportOptions) (*project.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer func() { _ = f.Close() }()

	if opts.Name == "" {
		opts.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s.Import(f, FormatOf(path), opts)
}

// Import reads one waveform of the given format from r and adds it to the
// project, selected.
func (s *Session) Import(r io.Reader, format string, opts audio.ImportOptions) (*project.Waveform, error) {
	if strings.EqualFold(format, FormatSiglent) {
		c, err := siglent.Read(r)
		if err != nil {
			return nil, err
		}

		// the first channel brings the scope's timebase with it
		if s.Project.Len() == 0 {
			s.Project.Config.ScalePerDivX = c.ScalePerDivX
		}

		s.add(c.Waveform)

		return c.Waveform, nil
	}

	if _, ok := defaultRegistry.Get(format); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, format)
	}

	src, err := defaultRegistry.Decode(format, r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	w, err := audio.Import(src, opts)
	if err != nil {
		return nil, err
	}

	// audio has no timebase of its own: fit the first clip on screen
	if s.Project.Len() == 0 && w.Duration() > 0 {
		s.Project.Config.ScalePerDivX = view.NewScaleStepper(w.Duration() / float64(view.AxisX.Divisions)).Value()
		s.Project.Config.OffsetX = view.Snap(w.Duration()/2, view.AxisX.SnapStep(s.Project.Config.ScalePerDivX))
	}

	s.add(w)

	return w, nil
}

func (s *Session) add(w *project.Waveform) {
	c := Palette[s.Project.Len()%len(Palette)]
	w.Config.ColorR, w.Config.ColorG, w.Config.ColorB = c[0], c[1], c[2]

	s.Project.AddWaveform(w)

	logging.Logger().Debug("imported waveform",
		"name", w.Config.Name, "samples", w.Len(), "interval", w.Config.SampleInterval, "unit", w.Config.UnitY)
}

// ExportWAV writes waveform i as a 16-bit mono WAV file.
func (s *Session) ExportWAV(i int, ws io.WriteSeeker) error {
	w, err := s.Project.Waveform(i)
	if err != nil {
		return err
	}

	return wav.WriteChannel(ws, w)
}
