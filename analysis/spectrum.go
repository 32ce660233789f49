package analysis

import (
	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

// SpectrumResult holds the positive half spectrum of a signal, DC
// through Nyquist.
type SpectrumResult struct {
	// FFTSize is the transform length the input was padded to.
	FFTSize int
	// BinHz is the frequency resolution in Hz per bin.
	BinHz float64
	// Freqs holds the centre frequency of each bin in Hz.
	Freqs []float64
	// Values holds the magnitude (or power, with WithPowerSpectrum) of
	// each bin.
	Values []float64
}

// Spectrum computes the windowed spectrum of samples. The input is
// windowed at its own length, zero padded to the next power of two and
// transformed; the result covers DC through Nyquist.
func Spectrum(samples []float64, fs float64, opts ...Option) (*SpectrumResult, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	cfg := applyOptions(opts)

	fftSize := nextPowerOfTwo(len(samples))
	plan, err := algofft.NewPlanReal64(fftSize)
	if err != nil {
		return nil, err
	}

	buf := make([]float64, fftSize)
	win := window.Generate(cfg.win, len(samples))
	for i, v := range samples {
		buf[i] = v * win[i]
	}

	spec := make([]complex128, fftSize/2+1)
	plan.Forward(spec, buf)

	res := &SpectrumResult{
		FFTSize: fftSize,
		BinHz:   fs / float64(fftSize),
	}
	if cfg.power {
		res.Values = spectrum.Power(spec)
	} else {
		res.Values = spectrum.Magnitude(spec)
	}
	res.Freqs = make([]float64, len(res.Values))
	for k := range res.Freqs {
		res.Freqs[k] = float64(k) * res.BinHz
	}
	return res, nil
}

// DominantFrequency returns the frequency of the strongest bin above
// DC, in Hz.
func (r *SpectrumResult) DominantFrequency() float64 {
	best, bestVal := 0, 0.0
	for k := 1; k < len(r.Values); k++ {
		if r.Values[k] > bestVal {
			bestVal = r.Values[k]
			best = k
		}
	}
	return r.Freqs[best]
}

// BandLevel sums the bin values between loHz and hiHz inclusive.
func (r *SpectrumResult) BandLevel(loHz, hiHz float64) float64 {
	var sum float64
	for k, f := range r.Freqs {
		if f >= loHz && f <= hiHz {
			sum += r.Values[k]
		}
	}
	return sum
}
