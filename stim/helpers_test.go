package stim

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/mjibson/go-dsp/fft"
)

const testFs = 48000.0

func newTestSynth(opts ...Option) *Synth {
	return NewSynthWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(testFs)},
		opts...,
	)
}

func maxAbsDiff(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	maxDiff := 0.0
	for i := 0; i < n; i++ {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

func requireAllZero(t *testing.T, name string, x []float64) {
	t.Helper()
	for i, v := range x {
		if v != 0 {
			t.Fatalf("%s sample %d = %v, want all zeros", name, i, v)
		}
	}
}

func requireFinite(t *testing.T, name string, x []float64) {
	t.Helper()
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s sample %d is not finite: %v", name, i, v)
		}
	}
}

// bandEnergy sums squared spectral magnitudes between lo and hi Hz.
func bandEnergy(x []float64, fs, lo, hi float64) float64 {
	spec := fft.FFTReal(x)
	n := len(x)
	binHz := fs / float64(n)
	var sum float64
	for k := 1; k <= n/2; k++ {
		f := float64(k) * binHz
		if f >= lo && f <= hi {
			re := real(spec[k])
			im := imag(spec[k])
			sum += re*re + im*im
		}
	}
	return sum
}

// peakFrequency returns the frequency of the strongest spectral bin.
func peakFrequency(x []float64, fs float64) float64 {
	spec := fft.FFTReal(x)
	n := len(x)
	best, bestMag := 0, 0.0
	for k := 1; k <= n/2; k++ {
		re := real(spec[k])
		im := imag(spec[k])
		mag := re*re + im*im
		if mag > bestMag {
			bestMag = mag
			best = k
		}
	}
	return float64(best) * fs / float64(n)
}
