// SPDX-License-Identifier: EPL-2.0

// Package audio turns decoded audio streams into waveform channels.
//
// Format decoders in the formats/ packages produce a Source, a stream of
// interleaved float32 samples in [-1, 1]. A Registry maps file formats to
// those decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode("wav", file)
//
// # Channels
//
// A waveform holds a single channel. ChannelReader picks one channel of a
// multi-channel Source, or averages all of them when the channel is Downmix:
//
//	mono, err := audio.NewChannelReader(src, audio.Downmix)
//
// ReadChannel drains a Source through a ChannelReader into memory.
//
// # Resampling
//
// Resample changes the rate of in-memory mono samples with Catmull-Rom cubic
// interpolation. It is used to thin out long high-rate recordings before
// they are stored in a project.
//
// # Importing
//
// Import combines the steps above and returns a *project.Waveform whose
// sample interval follows the final rate, whose unit is "FS" (full scale)
// and whose vertical scale is the smallest 1-2-5 step that keeps the peak
// on screen:
//
//	w, err := audio.Import(src, audio.ImportOptions{Channel: 0, SampleRate: 8000})
//	if err != nil {
//	    return err
//	}
//	p.AddWaveform(w)
//
// Sources are read until io.EOF; any other error aborts the import.
package audio
