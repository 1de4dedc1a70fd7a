// SPDX-License-Identifier: EPL-2.0

// Package render draws a project the way the viewer shows it: a ten by eight
// division grid, every waveform in render order and the axis labels.
//
// Drawing uses the software rasteriser of github.com/gogpu/gg and labels use
// the basicfont face from golang.org/x/image, so a snapshot needs no GPU:
//
//	img, err := render.Snapshot(p, 1280, 720)
//	if err != nil {
//	    return err
//	}
//	return render.WritePNG(out, img)
//
// MakeLabels returns the label text on its own for callers that draw their
// own user interface.
package render
