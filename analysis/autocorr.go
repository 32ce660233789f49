package analysis

import (
	"github.com/mjibson/go-dsp/fft"
)

// Autocorrelation computes the biased autocorrelation of samples via
// the FFT, normalized so lag 0 equals 1. The result has one value per
// possible lag, 0 through len(samples)-1. An all-zero input yields an
// all-zero result.
func Autocorrelation(samples []float64) ([]float64, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	size := nextPowerOfTwo(2 * n)
	padded := make([]float64, size)
	copy(padded, samples)

	spec := fft.FFTReal(padded)
	for k, c := range spec {
		re, im := real(c), imag(c)
		spec[k] = complex(re*re+im*im, 0)
	}
	res := fft.IFFT(spec)

	acf := make([]float64, n)
	for i := range acf {
		acf[i] = real(res[i])
	}
	if acf[0] > 0 {
		norm := acf[0]
		for i := range acf {
			acf[i] /= norm
		}
	}
	return acf, nil
}

// DominantLag returns the lag with the highest autocorrelation within
// [minLag, maxLag], or 0 when the range is empty. Lag 0 is excluded so
// the result reflects a genuine periodicity.
func DominantLag(acf []float64, minLag, maxLag int) int {
	if minLag < 1 {
		minLag = 1
	}
	if maxLag >= len(acf) {
		maxLag = len(acf) - 1
	}
	best, bestVal := 0, 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		if acf[lag] > bestVal {
			bestVal = acf[lag]
			best = lag
		}
	}
	return best
}

// PitchHz estimates the fundamental of samples between loHz and hiHz
// from the autocorrelation peak. It returns 0 when no periodicity is
// found in the range.
func PitchHz(samples []float64, fs, loHz, hiHz float64) (float64, error) {
	acf, err := Autocorrelation(samples)
	if err != nil {
		return 0, err
	}
	minLag := int(fs / hiHz)
	maxLag := int(fs / loHz)
	lag := DominantLag(acf, minLag, maxLag)
	if lag == 0 {
		return 0, nil
	}
	return fs / float64(lag), nil
}
