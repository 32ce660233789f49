package stim

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dsp/dsp/conv"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/mjibson/go-dsp/fft"
)

// firTaps is the fixed filter order used by FIR2Filt.
const firTaps = 256

// stopbandFloor keeps the designed stopband response slightly above
// zero so downstream log-domain analysis stays finite.
const stopbandFloor = 3e-5

// FIR2Filt filters a Signal with a 256-tap FIR filter designed by
// frequency sampling. The ideal magnitude response rises from 0 to 1
// between f1 and f2 and falls from 1 to 0 between f3 and f4 (all in Hz,
// non-decreasing). f2 == 0 yields a lowpass filter, f3 at or above
// Nyquist a highpass filter, anything else a bandpass filter. Each
// channel is convolved independently and trimmed to the input length.
func FIR2Filt(f1, f2, f3, f4 float64, sig Signal, fs float64) (Signal, error) {
	if err := sig.Validate(); err != nil {
		return Signal{}, err
	}
	if sig.Frames() == 0 {
		return Signal{}, ErrEmptyInput
	}
	if f1 < 0 || f1 > f2 || f2 > f3 || f3 > f4 {
		return Signal{}, fmt.Errorf("%w: %v, %v, %v, %v Hz", ErrInvalidCutoffs, f1, f2, f3, f4)
	}

	nyquist := fs / 2
	x1 := clampUnit(f1 / nyquist)
	x2 := clampUnit(f2 / nyquist)
	x3 := clampUnit(f3 / nyquist)
	x4 := clampUnit(f4 / nyquist)

	var freqs, gains []float64
	switch {
	case x2 == 0: // lowpass
		freqs = []float64{0, x3, x4, 1}
		gains = []float64{1, 1, stopbandFloor, 0}
	case f3 >= nyquist: // highpass
		freqs = []float64{0, x1, x2, 0.999999, 1}
		gains = []float64{0, stopbandFloor, 1, 1, 0}
	default: // bandpass, transition bands merged at their midpoint
		freqs = []float64{0, x1, x2, (x2 + x3) / 2, x3, x4, 1}
		gains = []float64{0, stopbandFloor, 1, 1, 1, stopbandFloor, 0}
	}

	taps := designFIR2(firTaps, freqs, gains)

	out := NewSignal(sig.Frames())
	left, err := conv.ConvolveMode(sig.Left, taps, conv.ModeSame)
	if err != nil {
		return Signal{}, fmt.Errorf("stim: filtering left channel: %w", err)
	}
	right, err := conv.ConvolveMode(sig.Right, taps, conv.ModeSame)
	if err != nil {
		return Signal{}, fmt.Errorf("stim: filtering right channel: %w", err)
	}
	copy(out.Left, left)
	copy(out.Right, right)
	return out, nil
}

// designFIR2 designs a linear-phase FIR filter by frequency sampling: a
// piecewise-linear magnitude response is sampled on a dense grid,
// shifted to linear phase, inverse transformed and tapered with a
// Hamming window.
func designFIR2(nTaps int, freqs, gains []float64) []float64 {
	nFreqs := 1<<uint(NextPow2(nTaps)) + 1
	grid := make([]complex128, 2*(nFreqs-1))
	for i := 0; i < nFreqs; i++ {
		x := float64(i) / float64(nFreqs-1)
		g := interpGain(x, freqs, gains)
		// Linear-phase shift centers the impulse response.
		grid[i] = cmplx.Rect(g, -math.Pi*x*float64(nTaps-1)/2)
	}
	for i := 1; i < nFreqs-1; i++ {
		grid[len(grid)-i] = cmplx.Conj(grid[i])
	}

	h := fft.IFFT(grid)
	taps := make([]float64, nTaps)
	for i := range taps {
		taps[i] = real(h[i])
	}
	win := window.Generate(window.TypeHamming, nTaps)
	for i := range taps {
		taps[i] *= win[i]
	}
	return taps
}

// interpGain evaluates the piecewise-linear breakpoint table at x.
// Duplicate breakpoints take the later gain.
func interpGain(x float64, freqs, gains []float64) float64 {
	if x <= freqs[0] {
		return gains[0]
	}
	for i := 1; i < len(freqs); i++ {
		if x > freqs[i] {
			continue
		}
		span := freqs[i] - freqs[i-1]
		if span == 0 {
			return gains[i]
		}
		t := (x - freqs[i-1]) / span
		return gains[i-1] + t*(gains[i]-gains[i-1])
	}
	return gains[len(gains)-1]
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
