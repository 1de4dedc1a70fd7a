// SPDX-License-Identifier: EPL-2.0

// Package mp3 imports MP3 audio as waveseek channels.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit stereo. Mono files therefore show up as two identical channels;
// pick either one or use audio.Downmix:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	w, err := audio.Import(src, audio.ImportOptions{Channel: audio.Downmix})
package mp3
