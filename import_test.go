// SPDX-License-Identifier: EPL-2.0

package waveseek

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/waveseek/audio"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"aif", "aiff", "mp3", "ogg", "wav"}, NewRegistry().Formats())
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "wav", FormatOf("/tmp/Capture.WAV"))
	assert.Equal(t, "csv", FormatOf("scope.csv"))
	assert.Equal(t, "", FormatOf("noext"))
}

func TestSession_ExportImportWAV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	s := NewSession("bench")
	importCSV(t, s, "CH1", "0", "0.5", "-0.5", "0.25")

	path := filepath.Join(dir, "ch1.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, s.ExportWAV(0, f))
	require.NoError(t, f.Close())

	fresh := NewSession("audio")
	w, err := fresh.ImportFile(path, audio.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, "ch1", w.Config.Name)
	assert.Equal(t, audio.UnitFullScale, w.Config.UnitY)
	assert.InDelta(t, 1e-3, w.Config.SampleInterval, 1e-12)

	got := w.Samples()
	require.Len(t, got, 4)
	for i, want := range []float32{0, 0.5, -0.5, 0.25} {
		assert.InDelta(t, want, got[i], 1e-3, "sample %d", i)
	}

	// 3 ms of audio on ten divisions
	assert.InDelta(t, 5e-4, fresh.Project.Config.ScalePerDivX, 1e-15)
	assert.InDelta(t, 1.5e-3, fresh.Project.Config.OffsetX, 2e-5)
	assert.Equal(t, fresh.Project.ViewConfig(), fresh.View.Config())
}

func TestSession_ImportErrors(t *testing.T) {
	t.Parallel()

	s := NewSession("bench")

	_, err := s.Import(strings.NewReader("data"), "flac", audio.ImportOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = s.Import(strings.NewReader("not a wav"), "wav", audio.ImportOptions{})
	assert.Error(t, err)

	_, err = s.ImportFile(filepath.Join(t.TempDir(), "missing.csv"), audio.ImportOptions{})
	assert.Error(t, err)

	assert.Equal(t, 0, s.Project.Len())
}

func TestSession_ExportWAVOutOfRange(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "none.wav"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Error(t, NewSession("empty").ExportWAV(0, f))
}
