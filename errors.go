// SPDX-License-Identifier: EPL-2.0

package waveseek

import "errors"

var (
	// ErrUnsupportedFile is returned when a file extension has no importer.
	ErrUnsupportedFile = errors.New("unsupported file type")

	// ErrHTTPStatus is returned when a remote project answers with a
	// non-2xx status.
	ErrHTTPStatus = errors.New("unexpected http status")
)
