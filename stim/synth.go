package stim

import (
	"log"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

// DefaultMaxLevel is the default calibration level: the dB SPL produced
// by a unit-amplitude sinusoid on the target playback system.
const DefaultMaxLevel = 100.0

// Synth generates stimuli from a shared configuration.
type Synth struct {
	cfg      core.ProcessorConfig
	maxLevel float64
	seed     int64
	rng      *rand.Rand
	warnf    func(format string, args ...any)
}

// Option configures a Synth.
type Option func(*Synth)

// WithSeed sets the deterministic random seed for the noise and
// random-phase generators.
func WithSeed(seed int64) Option {
	return func(s *Synth) {
		s.seed = seed
		s.rng = nil
	}
}

// WithRand injects a random source, overriding WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(s *Synth) {
		s.rng = rng
	}
}

// WithMaxLevel sets the calibration level in dB SPL.
func WithMaxLevel(level float64) Option {
	return func(s *Synth) {
		s.maxLevel = level
	}
}

// WithWarnings sets the hook that receives non-fatal parameter
// warnings. The default logs through the standard logger.
func WithWarnings(f func(format string, args ...any)) Option {
	return func(s *Synth) {
		s.warnf = f
	}
}

// NewSynth creates a configured stimulus synthesizer.
func NewSynth(opts ...core.ProcessorOption) *Synth {
	return NewSynthWithOptions(opts)
}

// NewSynthWithOptions creates a stimulus synthesizer with
// synthesis-specific options on top of the processor configuration.
func NewSynthWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Synth {
	s := &Synth{
		cfg:      core.ApplyProcessorOptions(coreOpts...),
		maxLevel: DefaultMaxLevel,
		seed:     1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(s.seed))
	}
	if s.warnf == nil {
		s.warnf = log.Printf
	}
	return s
}

// Config returns the synthesizer processor configuration.
func (s *Synth) Config() core.ProcessorConfig {
	return s.cfg
}

// SampleRate returns the configured sampling frequency in Hz.
func (s *Synth) SampleRate() float64 {
	return s.cfg.SampleRate
}

// MaxLevel returns the calibration level in dB SPL.
func (s *Synth) MaxLevel() float64 {
	return s.maxLevel
}

// amp converts a level in dB SPL to linear sample amplitude.
func (s *Synth) amp(level float64) float64 {
	return math.Pow(10, (level-s.maxLevel)/20)
}

// frames converts duration and ramp times to sample counts. The total
// length is the steady-state portion plus one ramp on each side.
func (s *Synth) frames(durationMs, rampMs float64) (nSamples, nRamp, nTot int) {
	fs := s.cfg.SampleRate
	nSamples = int(math.Round(durationMs / 1000 * fs))
	nRamp = int(math.Round(rampMs / 1000 * fs))
	nTot = nSamples + 2*nRamp
	return nSamples, nRamp, nTot
}
