// SPDX-License-Identifier: EPL-2.0

// Package project holds a waveseek project: the project configuration, its
// ordered waveforms and the "wask" container they are saved in.
//
// A project is created empty with New, filled by AddWaveform or replaced
// wholesale by Load. Serialize and Deserialize convert between a project
// and its container bytes:
//
//	buf, err := project.Serialize(p)
//	...
//	q, err := project.Deserialize(buf)
//
// Decoding errors are *riff.FormatError values that carry the offending
// tag and offset. A declared sample count that disagrees with the sample
// chunk additionally wraps a *ValidationError:
//
//	var ve *project.ValidationError
//	if errors.As(err, &ve) { ... }
//	if errors.Is(err, project.ErrSampleCountMismatch) { ... }
//
// A Project is meant for a single editor and is not safe for concurrent use.
package project
