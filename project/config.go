// SPDX-License-Identifier: EPL-2.0

package project

// Default values for new projects and waveforms.
const (
	DefaultProjectName  = "My Project"
	DefaultWaveformName = "My Wave"
)

// Config is the project-level state. It is persisted as the first "cfgs"
// chunk. Field order is the JSON key order.
//
// SelectedIndex must be less than the number of waveforms whenever the
// project has any; Project.Select enforces this, direct writes do not.
type Config struct {
	Name string `json:"name"`
	// ScalePerDivX is the timebase in seconds per division.
	ScalePerDivX float64 `json:"scalePerDivX"`
	// OffsetX is the centre of the visible time window.
	OffsetX       float64 `json:"offsetX"`
	SelectedIndex uint32  `json:"selectedIndex"`
}

// WaveformConfig is the per-channel state persisted in each wave's "cfgs"
// chunk. Field order is the JSON key order.
type WaveformConfig struct {
	Name string `json:"name"`
	// SampleInterval is the time between two samples.
	SampleInterval float64 `json:"sampleInterval"`
	UnitY          string  `json:"unitY"`
	NumSamples     uint32  `json:"numSamples"`
	// OffsetX shifts the signal itself along the time axis.
	OffsetX      float64 `json:"offsetX"`
	OffsetY      float64 `json:"offsetY"`
	ScalePerDivY float64 `json:"scalePerDivY"`
	ColorR       float32 `json:"colorR"`
	ColorG       float32 `json:"colorG"`
	ColorB       float32 `json:"colorB"`
}

// DefaultConfig returns the configuration of an empty project.
func DefaultConfig(name string) Config {
	return Config{Name: name, ScalePerDivX: 1}
}

// DefaultWaveformConfig returns the configuration of a new white channel.
func DefaultWaveformConfig() WaveformConfig {
	return WaveformConfig{
		Name:           DefaultWaveformName,
		SampleInterval: 1,
		ScalePerDivY:   1,
		ColorR:         1,
		ColorG:         1,
		ColorB:         1,
	}
}
