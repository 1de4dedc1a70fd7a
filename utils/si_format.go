// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"strconv"
	"strings"
)

// Label formatting presets used by the axis and channel panels.
const (
	LowResDecimals  = 2
	LowResDigits    = 4
	HighResDecimals = 3
	HighResDigits   = 5
)

// ZeroThreshold is the magnitude below which a value prints as zero.
const ZeroThreshold = 1e-15

const (
	minSIBase = -5
	maxSIBase = 5
)

var siPrefixes = [...]string{"f", "p", "n", "u", "m", "", "k", "M", "G", "T", "P"}

// FormatNumber renders value with an SI prefix followed by unit, for example
// FormatNumber(1234.5, "V", 2, 4) returns "1.23kV".
//
// The scaled value is printed with decimalPlaces fractional digits, then
// fractional digits are dropped from the right until the number has at most
// maxDigits digits (the sign is not counted). Integer digits are never dropped,
// so maxDigits is a soft limit for large mantissas.
func FormatNumber(value float64, unit string, decimalPlaces, maxDigits int) string {
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', decimalPlaces, 64) + unit
	}

	// log10(0) is undefined, anything this small is shown as zero.
	if value < ZeroThreshold && value > -ZeroThreshold {
		return strconv.FormatFloat(0, 'f', decimalPlaces, 64) + unit
	}

	base := math.Floor(math.Log10(math.Abs(value)))

	var siBase int
	if base < 0 {
		siBase = int(math.Ceil(base / 3))
	} else {
		siBase = int(math.Floor(base / 3))
	}
	siBase = max(min(siBase, maxSIBase), minSIBase)

	str := strconv.FormatFloat(value/math.Pow10(siBase*3), 'f', decimalPlaces, 64)

	if dot := strings.IndexByte(str, '.'); dot != -1 {
		sign := 0
		if str[0] == '-' {
			sign = 1
		}
		wholeDigits := dot - sign
		fracDigits := len(str) - 1 - dot

		drop := max(min(wholeDigits+fracDigits-maxDigits, fracDigits), 0)
		str = strings.TrimSuffix(str[:len(str)-drop], ".")
	}

	return str + siPrefixes[siBase-minSIBase] + unit
}
