// SPDX-License-Identifier: EPL-2.0

package project

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/ik5/waveseek/view"
)

// WaveformSetObserver is notified when the set of waveforms changes so that
// per-channel render resources can be rebuilt. w is the added waveform, or
// nil when the set was cleared or a waveform was removed.
type WaveformSetObserver interface {
	WaveformSetChanged(w *Waveform)
}

// WaveformSetObserverFunc adapts a function to WaveformSetObserver.
type WaveformSetObserverFunc func(w *Waveform)

// WaveformSetChanged calls f(w).
func (f WaveformSetObserverFunc) WaveformSetChanged(w *Waveform) { f(w) }

// Project is the aggregate of the project configuration and its ordered
// waveforms. It is not safe for concurrent use.
type Project struct {
	// Config is read and written directly by the view and the renderer.
	Config Config

	waveforms []*Waveform
	observer  WaveformSetObserver
}

// New returns an empty project.
func New(name string) *Project {
	return &Project{Config: DefaultConfig(name)}
}

// SetObserver registers the single observer, replacing any previous one.
func (p *Project) SetObserver(o WaveformSetObserver) {
	p.observer = o
}

func (p *Project) changed(w *Waveform) {
	if p.observer != nil {
		p.observer.WaveformSetChanged(w)
	}
}

// InitEmpty discards all waveforms and resets the configuration.
func (p *Project) InitEmpty(name string) {
	p.Config = DefaultConfig(name)
	p.waveforms = nil
	p.changed(nil)
}

// Len is the number of waveforms.
func (p *Project) Len() int { return len(p.waveforms) }

// Waveforms returns the waveforms in channel order. The slice is a copy;
// the waveforms are not.
func (p *Project) Waveforms() []*Waveform {
	return slices.Clone(p.waveforms)
}

// Waveform returns the waveform at index i.
func (p *Project) Waveform(i int) (*Waveform, error) {
	if i < 0 || i >= len(p.waveforms) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p.waveforms))
	}

	return p.waveforms[i], nil
}

// AddWaveform appends w and selects it.
func (p *Project) AddWaveform(w *Waveform) {
	p.waveforms = append(p.waveforms, w)
	p.Config.SelectedIndex = uint32(len(p.waveforms) - 1)
	p.changed(w)
}

// RemoveWaveform deletes the waveform at index i. The selection follows the
// previously selected waveform, or moves to its neighbour when it was the
// one removed.
func (p *Project) RemoveWaveform(i int) error {
	if i < 0 || i >= len(p.waveforms) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p.waveforms))
	}

	p.waveforms = slices.Delete(p.waveforms, i, i+1)

	sel := int(p.Config.SelectedIndex)
	switch {
	case len(p.waveforms) == 0:
		sel = 0
	case i < sel:
		sel--
	case sel >= len(p.waveforms):
		sel = len(p.waveforms) - 1
	}
	p.Config.SelectedIndex = uint32(sel)

	p.changed(nil)

	return nil
}

// Select makes waveform i the selected one and notifies the observer with
// nil, since the vertical view state now comes from another waveform.
func (p *Project) Select(i int) error {
	if i < 0 || i >= len(p.waveforms) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p.waveforms))
	}

	p.Config.SelectedIndex = uint32(i)
	p.changed(nil)

	return nil
}

// Selected returns the selected waveform, or nil when there is none or the
// index is stale.
func (p *Project) Selected() *Waveform {
	i := int(p.Config.SelectedIndex)
	if i >= len(p.waveforms) {
		return nil
	}

	return p.waveforms[i]
}

// RenderOrder returns the waveforms in channel order with the selected one
// moved to the end so it is drawn on top.
func (p *Project) RenderOrder() []*Waveform {
	out := make([]*Waveform, 0, len(p.waveforms))
	sel := p.Selected()

	for _, w := range p.waveforms {
		if w != sel {
			out = append(out, w)
		}
	}

	if sel != nil {
		out = append(out, sel)
	}

	return out
}

// Bounds is the data-space window a waveform is drawn into.
type Bounds struct {
	LowerX, LowerY   float64
	LengthX, LengthY float64
}

// Bounds returns the window for w: the project offset sets the centre of the
// time window, the waveform offsets shift the signal itself.
func (p *Project) Bounds(w *Waveform) Bounds {
	lx := view.AxisX.Span(p.Config.ScalePerDivX)
	ly := view.AxisY.Span(w.Config.ScalePerDivY)

	return Bounds{
		LowerX:  p.Config.OffsetX - w.Config.OffsetX - lx/2,
		LowerY:  -w.Config.OffsetY - ly/2,
		LengthX: lx,
		LengthY: ly,
	}
}

// ViewConfig returns the view state for the current selection. Without a
// selection the vertical fields are zero.
func (p *Project) ViewConfig() view.Config {
	c := view.Config{OffsetX: p.Config.OffsetX, ScalePerDivX: p.Config.ScalePerDivX}

	if w := p.Selected(); w != nil {
		c.OffsetY = w.Config.OffsetY
		c.ScalePerDivY = w.Config.ScalePerDivY
	}

	return c
}

// ApplyView stores a view state: X into the project, Y into the selected
// waveform.
func (p *Project) ApplyView(c view.Config) {
	p.Config.OffsetX = c.OffsetX
	p.Config.ScalePerDivX = c.ScalePerDivX

	if w := p.Selected(); w != nil {
		w.Config.OffsetY = c.OffsetY
		w.Config.ScalePerDivY = c.ScalePerDivY
	}
}

// Load replaces the project with the decoded container in buf. On error the
// project is left unchanged and the observer is not called. On success the
// observer sees nil, then every loaded waveform in order.
func (p *Project) Load(buf []byte) error {
	q, err := Deserialize(buf)
	if err != nil {
		return err
	}

	p.Config = q.Config
	p.waveforms = q.waveforms

	p.changed(nil)
	for _, w := range p.waveforms {
		p.changed(w)
	}

	return nil
}

// ReadFrom reads a whole container from r and loads it.
func (p *Project) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	n := int64(len(buf))
	if err != nil {
		return n, fmt.Errorf("read project: %w", err)
	}

	return n, p.Load(buf)
}

// WriteTo writes the encoded container to w.
func (p *Project) WriteTo(w io.Writer) (int64, error) {
	buf, err := Serialize(p)
	if err != nil {
		return 0, err
	}

	return bytes.NewReader(buf).WriteTo(w)
}

// MarshalBinary returns the encoded container.
func (p *Project) MarshalBinary() ([]byte, error) {
	return Serialize(p)
}

// UnmarshalBinary is Load.
func (p *Project) UnmarshalBinary(buf []byte) error {
	return p.Load(buf)
}
