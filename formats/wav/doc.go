// SPDX-License-Identifier: EPL-2.0

// Package wav imports WAV channels into waveseek and exports waveforms as
// WAV files.
//
// # Decoding
//
// Decoder walks the RIFF chunk list with github.com/youpy/go-riff, reads the
// "fmt " chunk and streams the "data" chunk as an audio.Source. Supported
// encodings:
//   - PCM 8 (unsigned), 16, 24 and 32 bit
//   - IEEE float 32 and 64 bit
//   - A-law and mu-law (github.com/zaf/g711)
//   - WAVE_FORMAT_EXTENSIBLE headers carrying any of the above
//
// Chunks may appear in any order and unknown chunks are skipped.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	w, err := audio.Import(src, audio.ImportOptions{Channel: 0})
//
// # Encoding
//
// WriteChannel stores one waveform as mono 16-bit PCM with
// github.com/go-audio/wav. The sample rate is the rounded inverse of the
// waveform's sample interval, so only waveforms with a sensible audio rate
// export meaningfully:
//
//	f, _ := os.Create("ch1.wav")
//	defer f.Close()
//	err := wav.WriteChannel(f, p.Selected())
package wav
