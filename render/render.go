// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ik5/waveseek/internal/logging"
	"github.com/ik5/waveseek/project"
	"github.com/ik5/waveseek/view"
)

// ErrInvalidSize is returned for a non-positive image size.
var ErrInvalidSize = errors.New("render: invalid image size")

// Options control a snapshot.
type Options struct {
	Width, Height int

	Background gg.RGBA
	Axis       gg.RGBA
	Grid       gg.RGBA

	// TraceWidth is the line width in pixels. The selected waveform is
	// drawn SelectedWidth wide.
	TraceWidth    float64
	SelectedWidth float64

	// Labels draws the axis values and the timebase on top of the plot.
	Labels bool
}

// DefaultOptions returns the oscilloscope look: black background, grey grid.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:         width,
		Height:        height,
		Background:    gg.RGB(0, 0, 0),
		Axis:          gg.RGB(0.4, 0.4, 0.4),
		Grid:          gg.RGB(0.35, 0.35, 0.35),
		TraceWidth:    1,
		SelectedWidth: 1.5,
		Labels:        true,
	}
}

// Snapshot renders p with DefaultOptions.
func Snapshot(p *project.Project, width, height int) (*image.RGBA, error) {
	return Render(p, DefaultOptions(width, height))
}

// Render draws the grid and every waveform of p in render order, so the
// selected waveform ends up on top.
func Render(p *project.Project, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(opts.Background)

	if err := drawGrid(dc, opts); err != nil {
		return nil, err
	}

	sel := p.Selected()
	for _, w := range p.RenderOrder() {
		width := opts.TraceWidth
		if w == sel {
			width = opts.SelectedWidth
		}

		if err := drawTrace(dc, p.Bounds(w), w, width); err != nil {
			return nil, fmt.Errorf("drawing %q: %w", w.Config.Name, err)
		}
	}

	img := toRGBA(dc.Image())

	if opts.Labels {
		drawLabels(img, MakeLabels(p))
	}

	logging.Logger().Debug("rendered snapshot",
		"width", opts.Width, "height", opts.Height, "waveforms", p.Len())

	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	return nil
}

// grid dash pattern in pixels: dashLength on, the rest of dashPeriod off
const (
	dashLength = 2
	dashPeriod = 10
)

func drawGrid(dc *gg.Context, opts Options) error {
	w, h := float64(opts.Width), float64(opts.Height)
	cx, cy := w/2, h/2

	dc.SetLineWidth(1)

	// dashed division lines, skipping the centre which gets a solid axis
	dc.SetColor(opts.Grid.Color())
	for i := 1; i < view.AxisX.Divisions; i++ {
		if i == view.AxisX.Divisions/2 {
			continue
		}
		x := float64(i) * w / float64(view.AxisX.Divisions)
		for y := 0.0; y < h; y += dashPeriod {
			dc.DrawLine(x, y, x, math.Min(y+dashLength, h))
		}
	}
	for i := 1; i < view.AxisY.Divisions; i++ {
		if i == view.AxisY.Divisions/2 {
			continue
		}
		y := float64(i) * h / float64(view.AxisY.Divisions)
		for x := 0.0; x < w; x += dashPeriod {
			dc.DrawLine(x, y, math.Min(x+dashLength, w), y)
		}
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}

	// minor ticks on the centre axes
	tick := math.Max(4, math.Min(w, h)/50)
	for i := 1; i < view.AxisX.MinorTicks(); i++ {
		x := float64(i) * w / float64(view.AxisX.MinorTicks())
		dc.DrawLine(x, cy-tick/2, x, cy+tick/2)
	}
	for i := 1; i < view.AxisY.MinorTicks(); i++ {
		y := float64(i) * h / float64(view.AxisY.MinorTicks())
		dc.DrawLine(cx-tick/2, y, cx+tick/2, y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("ticks: %w", err)
	}

	dc.SetColor(opts.Axis.Color())
	dc.DrawLine(0, cy, w, cy)
	dc.DrawLine(cx, 0, cx, h)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("axes: %w", err)
	}

	return nil
}

// drawTrace connects neighbouring samples. Non-finite samples break the line.
func drawTrace(dc *gg.Context, b project.Bounds, w *project.Waveform, width float64) error {
	if w.Len() < 2 || !(b.LengthX > 0) || !(b.LengthY > 0) {
		return nil
	}

	pw, ph := float64(dc.Width()), float64(dc.Height())
	sx := pw / b.LengthX
	sy := ph / b.LengthY

	v := w.VertexPairs()
	pen := false
	segments := 0

	for i := 0; i+3 < len(v); i += 4 {
		x0, y0 := float64(v[i]), float64(v[i+1])
		x1, y1 := float64(v[i+2]), float64(v[i+3])

		if !finite(y0) || !finite(y1) {
			pen = false
			continue
		}

		if !pen {
			dc.MoveTo((x0-b.LowerX)*sx, ph-(y0-b.LowerY)*sy)
			pen = true
		}
		dc.LineTo((x1-b.LowerX)*sx, ph-(y1-b.LowerY)*sy)
		segments++
	}

	if segments == 0 {
		return nil
	}

	dc.SetColor(waveformColor(w))
	dc.SetLineWidth(width)

	return dc.Stroke()
}

func drawLabels(img *image.RGBA, l Labels) {
	b := img.Bounds()
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	grey := color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

	// time values under each vertical grid line
	for i, s := range l.X {
		x := b.Dx() * i / (len(l.X) - 1)
		drawString(img, face, grey, clampX(img, face, s, x+2), b.Dy()-2, s)
	}

	// amplitude values of the selected channel along the left edge
	for i, s := range l.Y {
		y := b.Dy() * i / (len(l.Y) - 1)
		drawString(img, face, grey, 2, min(max(y-2, lineHeight), b.Dy()-lineHeight-2), s)
	}

	header := l.Project + "  " + l.Timebase + "  " + l.TimebaseOffset
	drawString(img, face, grey, clampX(img, face, header, b.Dx()/2), lineHeight, header)

	y := 2 * lineHeight
	for _, c := range l.Channels {
		text := c.Name + " " + c.ScalePerDivY + " " + c.OffsetY
		if c.Selected {
			text = "> " + text
		}
		drawString(img, face, c.Color, clampX(img, face, text, b.Dx()), y, text)
		y += lineHeight
	}
}

// clampX moves a string starting at x left until it fits the image.
func clampX(img *image.RGBA, face font.Face, s string, x int) int {
	width := font.MeasureString(face, s).Ceil()
	return max(0, min(x, img.Bounds().Dx()-width-2))
}

func drawString(img *image.RGBA, face font.Face, c color.Color, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}

	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	return dst
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
