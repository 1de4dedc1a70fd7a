// SPDX-License-Identifier: EPL-2.0

package view

// scrollThreshold is the smallest wheel delta that changes the scale.
const scrollThreshold = 0.000001

// Config is the complete view state: the project timebase (X) and the
// selected waveform's vertical scale (Y).
type Config struct {
	OffsetX      float64
	OffsetY      float64
	ScalePerDivX float64
	ScalePerDivY float64
}

// Observer receives the full new view state after every gesture.
//
// The observer is expected to store the values in the project and then call
// Manager.SetConfig, otherwise the next drag is computed against a stale
// baseline.
type Observer interface {
	ViewChanged(Config)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Config)

// ViewChanged calls f(c).
func (f ObserverFunc) ViewChanged(c Config) { f(c) }

// Manager turns drag and scroll gestures into new offsets and scales.
// It never writes the result back itself; it only emits it.
type Manager struct {
	config   Config
	observer Observer

	xAxis Axis
	yAxis Axis

	// offsets captured when the current drag started
	startOffsetX float64
	startOffsetY float64
}

// NewManager returns a manager using the default X and Y grids.
func NewManager() *Manager {
	return NewManagerWithAxes(AxisX, AxisY)
}

// NewManagerWithAxes returns a manager with custom grid constants.
func NewManagerWithAxes(x, y Axis) *Manager {
	return &Manager{xAxis: x, yAxis: y}
}

// SetObserver registers the single observer, replacing any previous one.
// Passing nil disables notifications.
func (m *Manager) SetObserver(o Observer) {
	m.observer = o
}

// SetConfig refreshes the cached view state. It must be called after the
// observer has written a change back.
func (m *Manager) SetConfig(c Config) {
	m.config = c
}

// Config returns the cached view state.
func (m *Manager) Config() Config {
	return m.config
}

// Axes returns the X and Y grid constants.
func (m *Manager) Axes() (x, y Axis) {
	return m.xAxis, m.yAxis
}

// StartDrag records the current offsets as the reference for the
// following Drag calls. Both axes share one drag start.
func (m *Manager) StartDrag() {
	m.startOffsetX = m.config.OffsetX
	m.startOffsetY = m.config.OffsetY
}

// DragX pans the time axis. fracDeltaX is the pointer displacement since
// StartDrag as a fraction of the screen width.
func (m *Manager) DragX(fracDeltaX float64) {
	next := m.config
	next.OffsetX = pan(m.startOffsetX, m.config.ScalePerDivX, fracDeltaX, m.xAxis)

	m.emit(next)
}

// DragY pans the amplitude axis. fracDeltaY is the pointer displacement since
// StartDrag as a fraction of the screen height.
func (m *Manager) DragY(fracDeltaY float64) {
	next := m.config
	next.OffsetY = pan(m.startOffsetY, m.config.ScalePerDivY, fracDeltaY, m.yAxis)

	m.emit(next)
}

// ScrollX steps the time scale one position along the 1-2-5 sequence:
// a positive delta zooms out, a negative delta zooms in.
//
// fracX is the pointer position across the screen. It is accepted for
// parity with the gesture source but the zoom keeps the current offset in
// the centre of the screen.
func (m *Manager) ScrollX(delta, fracX float64) {
	next := m.config
	next.OffsetX, next.ScalePerDivX = zoom(m.config.OffsetX, m.config.ScalePerDivX, delta, m.xAxis)

	m.emit(next)

	// a scroll in the middle of a drag moves the drag reference as well
	m.StartDrag()
}

// ScrollY is ScrollX for the amplitude axis.
func (m *Manager) ScrollY(delta, fracY float64) {
	next := m.config
	next.OffsetY, next.ScalePerDivY = zoom(m.config.OffsetY, m.config.ScalePerDivY, delta, m.yAxis)

	m.emit(next)

	m.StartDrag()
}

func (m *Manager) emit(c Config) {
	if m.observer != nil {
		m.observer.ViewChanged(c)
	}
}

func pan(startOffset, scalePerDiv, fracDelta float64, axis Axis) float64 {
	return Snap(startOffset-fracDelta*axis.Span(scalePerDiv), axis.SnapStep(scalePerDiv))
}

func zoom(offset, scalePerDiv, delta float64, axis Axis) (newOffset, newScale float64) {
	stepper := NewScaleStepper(scalePerDiv)

	// The origin is the centre of the screen, which is the offset itself,
	// so prevExtent is always zero and the zoom is centred on the offset.
	origin := offset
	prevExtent := (origin - offset) / stepper.Value()

	switch {
	case delta > scrollThreshold:
		stepper.Increment()
	case delta < -scrollThreshold:
		stepper.Decrement()
	}

	newScale = stepper.Value()
	newOffset = Snap(origin-prevExtent*newScale, axis.SnapStep(newScale))

	return newOffset, newScale
}
