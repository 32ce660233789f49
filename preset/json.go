// Package preset loads stimulus definition files: JSON documents
// bundling synthesis settings with one named stimulus and its
// parameters. Absent fields fall back to defaults, so a preset only
// needs to spell out what it changes.
package preset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-stim/stim"
)

// File is the JSON schema for stimulus presets.
type File struct {
	SampleRate *float64 `json:"sample_rate"`
	MaxLevel   *float64 `json:"max_level"`
	Seed       *int64   `json:"seed"`
	Stimulus   Stimulus `json:"stimulus"`
}

// Stimulus names a generator and carries its parameters. Which fields
// apply depends on Kind; absent optional fields take defaults.
type Stimulus struct {
	Kind string `json:"kind"`

	Channel    *string  `json:"channel"`
	LevelDB    *float64 `json:"level_db"`
	DurationMs *float64 `json:"duration_ms"`
	RampMs     *float64 `json:"ramp_ms"`
	PhaseRad   *float64 `json:"phase_rad"`

	FrequencyHz *float64 `json:"frequency_hz"`

	// Binaural tone.
	ITDMicros *float64 `json:"itd_us"`
	ITDRef    *string  `json:"itd_ref"`
	ILDDB     *float64 `json:"ild_db"`
	ILDRef    *string  `json:"ild_ref"`

	// Modulated tones.
	ModFrequencyHz *float64 `json:"mod_frequency_hz"`
	ModDepth       *float64 `json:"mod_depth"`
	ModIndex       *float64 `json:"mod_index"`
	DeltaCents     *float64 `json:"delta_cents"`

	// Harmonic complexes.
	F0Hz       *float64 `json:"f0_hz"`
	HarmPhase  *string  `json:"harm_phase"`
	LowHarm    *int     `json:"low_harm"`
	HighHarm   *int     `json:"high_harm"`
	StretchPct *float64 `json:"stretch_pct"`

	// Band-limited noises and ladders.
	LowFreqHz      *float64 `json:"low_freq_hz"`
	HighFreqHz     *float64 `json:"high_freq_hz"`
	SpacingCents   *float64 `json:"spacing_cents"`
	BandwidthHz    *float64 `json:"bandwidth_hz"`
	BandwidthCents *float64 `json:"bandwidth_cents"`

	// Sweeps.
	Sweep          *string  `json:"sweep"`
	SweepRate      *float64 `json:"sweep_rate"`
	ExcursionCents *float64 `json:"excursion_cents"`

	// Dichotic pitches.
	PhaseRelationship *string  `json:"phase_relationship"`
	Difference        *string  `json:"difference"`
	IPDRad            *float64 `json:"ipd_rad"`
	BandLevelDB       *float64 `json:"band_level_db"`
	NoiseColor        *string  `json:"noise_color"`

	// Chords.
	FrequenciesHz []float64 `json:"frequencies_hz"`
	LevelsDB      []float64 `json:"levels_db"`
	PhasesRad     []float64 `json:"phases_rad"`
	SOAMs         *float64  `json:"soa_ms"`
}

// LoadJSON reads and parses a preset file. The stimulus kind is
// validated; parameter errors surface when the preset is built.
func LoadJSON(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	if _, ok := builders[f.Stimulus.Kind]; !ok {
		return nil, fmt.Errorf("preset %s: unknown stimulus kind %q", path, f.Stimulus.Kind)
	}
	if f.SampleRate != nil && *f.SampleRate <= 0 {
		return nil, fmt.Errorf("preset %s: sample_rate must be > 0", path)
	}
	return &f, nil
}

// Kinds lists the stimulus kinds a preset may name.
func Kinds() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	return out
}

// fl returns *p or def when p is absent.
func fl(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func in(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func str(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

// NewSynth builds a Synth from the preset's synthesis settings.
func (f *File) NewSynth() *stim.Synth {
	var opts []stim.Option
	if f.MaxLevel != nil {
		opts = append(opts, stim.WithMaxLevel(*f.MaxLevel))
	}
	if f.Seed != nil {
		opts = append(opts, stim.WithSeed(*f.Seed))
	}
	return stim.NewSynthWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(fl(f.SampleRate, 48000))},
		opts...,
	)
}

// Build renders the preset's stimulus with a Synth built from its
// synthesis settings.
func (f *File) Build() (stim.Signal, error) {
	return f.Render(f.NewSynth())
}

// Render builds the preset's stimulus with an existing Synth.
func (f *File) Render(s *stim.Synth) (stim.Signal, error) {
	build, ok := builders[f.Stimulus.Kind]
	if !ok {
		return stim.Signal{}, fmt.Errorf("unknown stimulus kind %q", f.Stimulus.Kind)
	}
	return build(s, &f.Stimulus)
}
