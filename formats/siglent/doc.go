// SPDX-License-Identifier: EPL-2.0

// Package siglent imports the CSV files Siglent oscilloscopes save for a
// single channel.
//
// A file starts with twelve "key,value" header rows followed by one
// "time,value" row per sample:
//
//	Record Length,Analog:1200
//	Sample Interval,1.000000E-06
//	Vertical Units,V
//	Vertical Scale,5.000000E-01
//	Vertical Offset,0.000000E+00
//	Horizontal Units,s
//	Horizontal Scale,1.000000E-04
//	Model Number,SDS1104X-E
//	Serial Number,SDS00000000000
//	Software Version,8.2.6.1.37
//	Source,CH1
//	Second,Volt
//	-6.000000E-04,0.000000E+00
//	...
//
// Only the first sample time is kept, as the waveform's horizontal offset;
// the rest follow from the sample interval. Inconsistent files are reported
// as *project.ValidationError. Files that are not valid UTF-8 are decoded
// as Windows-1252.
package siglent
