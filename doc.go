// SPDX-License-Identifier: EPL-2.0

// Package waveseek is an oscilloscope style waveform viewer core.
//
// A project holds named waveform channels and the view state they are shown
// with. It is stored in a small RIFF container (form type "wask", see
// package project) and edited through drag and scroll gestures that move
// along a 1-2-5 scale sequence (package view).
//
// # Sessions
//
// Session is the application context. It owns one project and one
// view.Manager and keeps them in step: a gesture on the manager is written
// into the project, and loading or importing refreshes the manager.
//
//	s := waveseek.NewSession("bench")
//	if _, err := s.ImportFile("capture.csv", audio.ImportOptions{Channel: audio.Downmix}); err != nil {
//	    return err
//	}
//	s.Zoom(-1, 0) // one step finer timebase
//	s.Pan(0.1, 0) // drag by a tenth of the screen width
//	return s.SaveFile("bench.wask")
//
// # Importers
//
// Files are imported by extension:
//   - .csv: Siglent oscilloscope exports (formats/siglent)
//   - .wav: PCM 8/16/24/32-bit, IEEE float, A-law, mu-law (formats/wav)
//   - .aif, .aiff: PCM 8/16/24/32-bit (formats/aiff)
//   - .mp3 (formats/mp3)
//   - .ogg: Ogg Vorbis (formats/vorbis)
//
// Audio channels are full scale values ("FS"). ExportWAV writes a channel
// back out as 16-bit PCM.
//
// # Rendering
//
// Package render draws a snapshot of the current view into an image, which
// is how the waveseek command produces PNG previews.
//
// # Logging
//
// Nothing is logged until SetLogger installs a *slog.Logger.
package waveseek
