// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image/color"

	"github.com/ik5/waveseek/project"
	"github.com/ik5/waveseek/utils"
	"github.com/ik5/waveseek/view"
)

// ChannelLabel is the info panel text of one waveform.
type ChannelLabel struct {
	Name         string
	ScalePerDivY string
	OffsetY      string
	Color        color.RGBA
	Selected     bool
}

// Labels holds every piece of text shown around the plot.
type Labels struct {
	Project string
	// Timebase is the horizontal scale, for example "1.00ms/div".
	Timebase string
	// TimebaseOffset is the time at the centre of the screen.
	TimebaseOffset string
	// X has one entry per vertical grid line, left to right.
	X []string
	// Y has one entry per horizontal grid line, top to bottom, for the
	// selected waveform. It is empty without a selection.
	Y        []string
	Channels []ChannelLabel
}

// MakeLabels formats the label text for the current state of p.
func MakeLabels(p *project.Project) Labels {
	cfg := p.Config
	l := Labels{
		Project:        cfg.Name,
		Timebase:       utils.FormatNumber(cfg.ScalePerDivX, "s/div", utils.LowResDecimals, utils.LowResDigits),
		TimebaseOffset: utils.FormatNumber(cfg.OffsetX, "s", utils.LowResDecimals, utils.LowResDigits),
		X:              axisLabels(cfg.OffsetX, cfg.ScalePerDivX, view.AxisX.Divisions, "s"),
	}

	sel := p.Selected()
	if sel != nil {
		// the amplitude axis counts down from the top and shows -offsetY at the centre
		l.Y = axisLabels(-sel.Config.OffsetY, -sel.Config.ScalePerDivY, view.AxisY.Divisions, sel.Config.UnitY)
	}

	for _, w := range p.Waveforms() {
		l.Channels = append(l.Channels, ChannelLabel{
			Name:         w.Config.Name,
			ScalePerDivY: utils.FormatNumber(w.Config.ScalePerDivY, w.Config.UnitY+"/div", utils.LowResDecimals, utils.LowResDigits),
			OffsetY:      utils.FormatNumber(w.Config.OffsetY, w.Config.UnitY, utils.LowResDecimals, utils.LowResDigits),
			Color:        waveformColor(w),
			Selected:     w == sel,
		})
	}

	return l
}

// axisLabels returns divisions+1 labels with centre at the middle entry. The
// values are accumulated outwards from the centre one step at a time.
func axisLabels(centre, step float64, divisions int, unit string) []string {
	out := make([]string, divisions+1)
	half := divisions / 2

	v := centre
	for i := half; i <= divisions; i++ {
		out[i] = utils.FormatNumber(v, unit, utils.HighResDecimals, utils.HighResDigits)
		v += step
	}

	v = centre - step
	for i := half - 1; i >= 0; i-- {
		out[i] = utils.FormatNumber(v, unit, utils.HighResDecimals, utils.HighResDigits)
		v -= step
	}

	return out
}

func waveformColor(w *project.Waveform) color.RGBA {
	return color.RGBA{
		R: channel8(w.Config.ColorR),
		G: channel8(w.Config.ColorG),
		B: channel8(w.Config.ColorB),
		A: 0xff,
	}
}

// channel8 maps [0, 1] to a byte, flooring like the panel colours.
func channel8(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v * 255)
	}
}
