// SPDX-License-Identifier: EPL-2.0

package siglent

import "errors"

// ErrShortHeader is returned when a file ends before the header rows do.
var ErrShortHeader = errors.New("siglent header is incomplete")
