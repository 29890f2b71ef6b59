// config.go - instance-scoped mixer configuration

package wildtune

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Default values matching the original engine's process-wide globals,
// captured here instead so an Instance never reaches for mutable package
// state (spec design note: "Process-wide master volume / sample rate /
// mixer options").
const (
	DefaultSampleRate     = 44100
	DefaultMasterVolume   = 948 // matches wildmidi's _WM_MasterVolume default
	DefaultPitchBendRange = 200 // cents
	minPitchRange         = 0
	maxPitchRange         = 0x3FFF
)

// MixerConfig is the read-only configuration a host passes to Init. It
// replaces the source engine's process-wide globals (master volume,
// sample rate, mixer option bits) with a value captured once per
// instance, per the design note in spec.md section 9.
type MixerConfig struct {
	// SampleRate is the renderer's output sample rate in Hz, used only to
	// compute per-voice phase increments (component A).
	SampleRate int `yaml:"sample_rate"`

	// MasterVolume scales the channel pan/balance gains (component D).
	MasterVolume int32 `yaml:"master_volume"`

	// LogVolume selects the squared volume curve over the linear one for
	// channel volume, expression and velocity scaling.
	LogVolume bool `yaml:"log_volume"`

	// DefaultPitchRange seeds each channel's pitch-bend range, in cents,
	// at Init and on every GM/GS/XG reset.
	DefaultPitchRange int `yaml:"default_pitch_range"`
}

// DefaultMixerConfig returns the configuration the source engine boots
// with in the absence of any host override.
func DefaultMixerConfig() MixerConfig {
	return MixerConfig{
		SampleRate:        DefaultSampleRate,
		MasterVolume:      DefaultMasterVolume,
		LogVolume:         false,
		DefaultPitchRange: DefaultPitchBendRange,
	}
}

// LoadMixerConfig reads a YAML-encoded MixerConfig. Fields absent from the
// document keep their defaults, and a non-positive sample_rate or
// default_pitch_range is replaced by its default.
func LoadMixerConfig(r io.Reader) (MixerConfig, error) {
	cfg := DefaultMixerConfig()

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return MixerConfig{}, fmt.Errorf("wildtune: decode mixer config: %w", err)
	}

	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.DefaultPitchRange <= 0 {
		cfg.DefaultPitchRange = DefaultPitchBendRange
	}
	return cfg, nil
}

// volumeCurve selects the linear or squared volume table for this config.
func (c MixerConfig) volumeCurve() *[128]int16 {
	if c.LogVolume {
		return &sqrVolumeCurve
	}
	return &linVolumeCurve
}
