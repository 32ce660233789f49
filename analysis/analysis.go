// Package analysis provides offline spectral analysis of rendered
// stimuli: single-shot spectra, STFT spectrograms and FFT
// autocorrelation. It operates on plain sample slices and carries no
// synthesis state.
package analysis

import (
	"errors"

	"github.com/cwbudde/algo-dsp/dsp/window"
)

var (
	ErrEmptyInput     = errors.New("analysis: empty input")
	ErrInvalidFFTSize = errors.New("analysis: fft size must be a positive power of two")
	ErrInvalidHop     = errors.New("analysis: hop must be positive")
)

type config struct {
	win   window.Type
	power bool
}

// Option configures spectral analysis.
type Option func(*config)

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) { c.win = t }
}

// WithPowerSpectrum reports squared-magnitude bins instead of
// magnitudes.
func WithPowerSpectrum() Option {
	return func(c *config) { c.power = true }
}

func applyOptions(opts []Option) config {
	cfg := config{win: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
