package stim

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PhaseShift rotates the phase of the selected channel(s) within the
// frequency region [f1, f2] Hz by shift radians. The channel is zero
// padded to the next power of two, the bins covering the region are
// rotated by +shift and their Hermitian mirror bins by -shift so the
// inverse transform stays real, and the result is truncated back to the
// input length. Magnitudes are preserved, so shifting by -shift inverts
// the operation. The input is not modified.
func PhaseShift(sig Signal, f1, f2, shift float64, c Channel, fs float64) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	if err := sig.Validate(); err != nil {
		return Signal{}, err
	}
	out := sig.Clone()
	n := out.Frames()
	if n == 0 {
		return out, nil
	}

	fftPoints := 1 << uint(NextPow2(n))
	start := int(math.Round(f1 * float64(fftPoints) / fs))
	end := int(math.Round(f2 * float64(fftPoints) / fs))
	// Keep the rotation inside the positive half spectrum, excluding DC
	// and Nyquist whose bins must stay real.
	if start < 1 {
		start = 1
	}
	if end > fftPoints/2-1 {
		end = fftPoints/2 - 1
	}
	if end < start {
		return out, nil
	}

	if c == ChannelLeft || c == ChannelBoth {
		out.Left = shiftBandPhase(out.Left, fftPoints, start, end, shift)
	}
	if c == ChannelRight || c == ChannelBoth {
		out.Right = shiftBandPhase(out.Right, fftPoints, start, end, shift)
	}
	return out, nil
}

func shiftBandPhase(x []float64, fftPoints, start, end int, shift float64) []float64 {
	padded := make([]float64, fftPoints)
	copy(padded, x)
	spec := fft.FFTReal(padded)

	rot := cmplx.Rect(1, shift)
	for k := start; k <= end; k++ {
		spec[k] *= rot
		spec[fftPoints-k] *= cmplx.Conj(rot)
	}

	res := fft.IFFT(spec)
	out := make([]float64, len(x))
	for i := range out {
		out[i] = real(res[i])
	}
	return out
}

// MakePink tilts the spectrum of a white noise to pink, preserving the
// spectrum level at 1000 Hz. The input is not modified.
func MakePink(sig Signal, fs float64) Signal {
	return MakePinkRef(sig, fs, 1000)
}

// MakePinkRef tilts the spectrum of a white noise to pink: each bin's
// magnitude is scaled by sqrt(ref/bin) with ref the bin of refHz, so
// power falls off as 1/f while the spectrum level at refHz is
// preserved. Phases are untouched; each channel is processed at its
// native length. Signals shorter than two samples pass through
// unchanged. The input is not modified.
func MakePinkRef(sig Signal, fs, refHz float64) Signal {
	out := sig.Clone()
	n := out.Frames()
	if n < 2 {
		return out
	}
	ref := 1 + refHz*float64(n)/fs
	out.Left = pinkenChannel(out.Left, ref)
	out.Right = pinkenChannel(out.Right, ref)
	return out
}

func pinkenChannel(x []float64, ref float64) []float64 {
	n := len(x)
	spec := fft.FFTReal(x)

	half := n / 2
	for k := 1; k <= half; k++ {
		g := complex(math.Sqrt(ref/float64(k)), 0)
		spec[k] *= g
		if k != n-k {
			spec[n-k] *= g
		}
	}

	res := fft.IFFT(spec)
	out := make([]float64, n)
	for i := range out {
		out[i] = real(res[i])
	}
	return out
}
