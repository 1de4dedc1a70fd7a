// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 maps a full-scale sample in [-1, 1] to 16-bit PCM.
// Values outside the range are clamped first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on both sides keeps the conversion symmetric.
	return int16(x * 32767.0)
}

// PCMToFloat32 normalises a signed integer PCM value of the given bit depth
// into [-1, 1). Unknown depths are treated as 16-bit.
func PCMToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32(v) / 128.0
	case 24:
		return float32(v) / 8388608.0
	case 32:
		return float32(float64(v) / 2147483648.0)
	default:
		return float32(v) / 32768.0
	}
}
