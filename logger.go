// SPDX-License-Identifier: EPL-2.0

package waveseek

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/ik5/waveseek/internal/logging"
)

// SetLogger sets the logger used by waveseek and by the gg renderer.
// By default nothing is logged. Passing nil restores the silent default.
//
//	waveseek.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
	gg.SetLogger(l)
}

// Logger returns the logger set with SetLogger.
func Logger() *slog.Logger {
	return logging.Logger()
}
