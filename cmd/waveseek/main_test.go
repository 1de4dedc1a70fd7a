// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"github.com/ik5/waveseek"
)

const capture = `Record Length,Analog:4
Sample Interval,1.000000E-03
Vertical Units,V
Vertical Scale,5.000000E-01
Vertical Offset,0.000000E+00
Horizontal Units,s
Horizontal Scale,1.000000E-03
Model Number,SDS1104X-E
Serial Number,SDS00000000000
Software Version,8.2.6.1.37
Source,CH1
Second,Volt
0.000000E+00,0.0
1.000000E-03,0.5
2.000000E-03,1.0
3.000000E-03,0.5
`

// The commands install a process wide logger, so these tests are not
// parallel.

func runCmd(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	err := run(args, &out)
	assert.NilError(t, err, "waveseek %s", strings.Join(args, " "))

	return out.String()
}

func TestCommands(t *testing.T) {
	t.Cleanup(func() { waveseek.SetLogger(nil) })

	dir := t.TempDir()
	proj := filepath.Join(dir, "bench.wask")
	csv := filepath.Join(dir, "ch1.csv")
	assert.NilError(t, os.WriteFile(csv, []byte(capture), 0o600))

	out := runCmd(t, "new", "-name", "bench", proj)
	assert.Check(t, is.Contains(out, "created"))

	out = runCmd(t, "import", "-p", proj, csv)
	assert.Check(t, is.Contains(out, "added CH1 (4 samples)"))

	out = runCmd(t, "info", proj)
	assert.Check(t, is.Contains(out, "project  bench"))
	assert.Check(t, is.Contains(out, "timebase 1.00ms/div offset 0.00s"))
	assert.Check(t, is.Contains(out, "* 0 CH1"))

	out = runCmd(t, "zoom", "-p", proj, "-x", "1", "-y", "-1")
	assert.Check(t, is.Contains(out, "timebase 2.00ms/div"))
	assert.Check(t, is.Contains(out, "CH1 0.20V/div"))

	out = runCmd(t, "pan", "-p", proj, "-x", "0.5")
	assert.Check(t, is.Contains(out, "offset -0.01s"))

	s := waveseek.NewSession("")
	assert.NilError(t, s.LoadFile(proj))
	assert.Equal(t, s.Project.Len(), 1)
	assert.Equal(t, s.Project.Config.Name, "bench")

	wavPath := filepath.Join(dir, "ch1.wav")
	runCmd(t, "export-wav", "-p", proj, "-o", wavPath)
	info, err := os.Stat(wavPath)
	assert.NilError(t, err)
	assert.Check(t, info.Size() > 44)

	pngPath := filepath.Join(dir, "bench.png")
	runCmd(t, "render", "-p", proj, "-o", pngPath, "-width", "200", "-height", "100")

	f, err := os.Open(pngPath)
	assert.NilError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Width, 200)
	assert.Equal(t, cfg.Height, 100)
}

func TestImportCreatesProject(t *testing.T) {
	t.Cleanup(func() { waveseek.SetLogger(nil) })

	dir := t.TempDir()
	proj := filepath.Join(dir, "fresh.wask")
	csv := filepath.Join(dir, "scope.csv")
	assert.NilError(t, os.WriteFile(csv, []byte(capture), 0o600))

	runCmd(t, "import", "-p", proj, "-name", "probe", csv)

	s := waveseek.NewSession("")
	assert.NilError(t, s.LoadFile(proj))
	assert.Equal(t, s.Project.Selected().Config.Name, "probe")
}

func TestUsageErrors(t *testing.T) {
	t.Cleanup(func() { waveseek.SetLogger(nil) })

	var out bytes.Buffer

	assert.Assert(t, errors.Is(run(nil, &out), errUsage))
	assert.Assert(t, errors.Is(run([]string{"explode"}, &out), errUsage))
	assert.Assert(t, errors.Is(run([]string{"new"}, &out), errUsage))
	assert.Assert(t, errors.Is(run([]string{"zoom", "-x", "1"}, &out), errUsage))
	assert.Assert(t, errors.Is(run([]string{"render", "-p", "x.wask"}, &out), errUsage))

	err := run([]string{"info", filepath.Join(t.TempDir(), "missing.wask")}, &out)
	assert.Check(t, err != nil)
}
