package analysis

import (
	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

// STFT holds a short-time Fourier transform: one spectrum per frame,
// frames hop samples apart.
type STFT struct {
	FFTSize int
	Hop     int
	BinHz   float64
	// Times holds the start time of each frame in seconds.
	Times []float64
	// Freqs holds the centre frequency of each bin in Hz.
	Freqs []float64
	// Frames holds one magnitude (or power) spectrum per frame, DC
	// through Nyquist.
	Frames [][]float64
}

// Spectrogram computes the STFT magnitude of samples with the given
// transform length and hop. fftSize must be a power of two; inputs
// shorter than fftSize yield a single zero-padded frame.
func Spectrogram(samples []float64, fs float64, fftSize, hop int, opts ...Option) (*STFT, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if !isPowerOfTwo(fftSize) {
		return nil, ErrInvalidFFTSize
	}
	if hop <= 0 {
		return nil, ErrInvalidHop
	}
	cfg := applyOptions(opts)

	plan, err := algofft.NewPlanReal64(fftSize)
	if err != nil {
		return nil, err
	}

	st := &STFT{
		FFTSize: fftSize,
		Hop:     hop,
		BinHz:   fs / float64(fftSize),
	}
	st.Freqs = make([]float64, fftSize/2+1)
	for k := range st.Freqs {
		st.Freqs[k] = float64(k) * st.BinHz
	}

	win := window.Generate(cfg.win, fftSize)
	buf := make([]float64, fftSize)
	spec := make([]complex128, fftSize/2+1)

	frame := func(pos int) {
		for i := range buf {
			if pos+i < len(samples) {
				buf[i] = samples[pos+i] * win[i]
			} else {
				buf[i] = 0
			}
		}
		plan.Forward(spec, buf)
		var vals []float64
		if cfg.power {
			vals = spectrum.Power(spec)
		} else {
			vals = spectrum.Magnitude(spec)
		}
		st.Frames = append(st.Frames, vals)
		st.Times = append(st.Times, float64(pos)/fs)
	}

	if len(samples) < fftSize {
		frame(0)
		return st, nil
	}
	for pos := 0; pos+fftSize <= len(samples); pos += hop {
		frame(pos)
	}
	return st, nil
}
