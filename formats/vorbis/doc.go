// SPDX-License-Identifier: EPL-2.0

// Package vorbis imports Ogg Vorbis audio as waveseek channels using
// github.com/jfreymuth/oggvorbis. Samples arrive as float32 and keep the
// stream's channel layout.
package vorbis
