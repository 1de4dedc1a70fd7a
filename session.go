// SPDX-License-Identifier: EPL-2.0

package waveseek

import (
	"github.com/ik5/waveseek/internal/logging"
	"github.com/ik5/waveseek/project"
	"github.com/ik5/waveseek/view"
)

// Session ties a project to the view manager that edits it. It observes
// both: view changes are written into the project, and any change to the
// set of waveforms refreshes the manager's cached state.
//
// A Session is not safe for concurrent use.
type Session struct {
	Project *project.Project
	View    *view.Manager

	// OnChange, when set, is called after every change the session applied.
	// The argument is the waveform that was added, or nil.
	OnChange func(w *project.Waveform)
}

// NewSession returns a session around an empty project.
func NewSession(name string) *Session {
	return Attach(project.New(name), view.NewManager())
}

// Attach binds an existing project and manager and registers the session as
// the observer of both.
func Attach(p *project.Project, m *view.Manager) *Session {
	s := &Session{Project: p, View: m}

	p.SetObserver(s)
	m.SetObserver(s)
	m.SetConfig(p.ViewConfig())

	return s
}

// ViewChanged stores a new view state in the project and then refreshes the
// manager from it, so the next gesture starts from the stored values.
func (s *Session) ViewChanged(c view.Config) {
	s.Project.ApplyView(c)
	s.View.SetConfig(s.Project.ViewConfig())

	logging.Logger().Debug("view changed",
		"offsetX", c.OffsetX, "scalePerDivX", c.ScalePerDivX,
		"offsetY", c.OffsetY, "scalePerDivY", c.ScalePerDivY)

	s.notify(nil)
}

// WaveformSetChanged refreshes the manager after a load, an import, a
// removal or a selection change.
func (s *Session) WaveformSetChanged(w *project.Waveform) {
	s.View.SetConfig(s.Project.ViewConfig())
	s.notify(w)
}

// Select makes waveform i the one the vertical gestures act on. The
// project's notification refreshes the manager.
func (s *Session) Select(i int) error {
	return s.Project.Select(i)
}

// Zoom steps the time scale (X) or the selected waveform's scale (Y) by the
// given number of 1-2-5 positions; positive zooms out.
func (s *Session) Zoom(stepsX, stepsY int) {
	for ; stepsX != 0; stepsX -= sign(stepsX) {
		s.View.ScrollX(float64(sign(stepsX)), 0.5)
	}

	for ; stepsY != 0; stepsY -= sign(stepsY) {
		s.View.ScrollY(float64(sign(stepsY)), 0.5)
	}
}

// Pan drags the view by a fraction of the screen on each axis.
func (s *Session) Pan(fracX, fracY float64) {
	s.View.StartDrag()

	if fracX != 0 {
		s.View.DragX(fracX)
	}

	if fracY != 0 {
		s.View.DragY(fracY)
	}
}

func (s *Session) notify(w *project.Waveform) {
	if s.OnChange != nil {
		s.OnChange(w)
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}

	return 1
}
