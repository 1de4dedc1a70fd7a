// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a sample size other than 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
