package stim

import (
	"math"

	"github.com/cwbudde/algo-approx"
	"github.com/cwbudde/algo-vecmath"
)

// IntNCyclesFreq returns the frequency closest to freq that completes an
// integer number of cycles within the given duration in milliseconds.
func IntNCyclesFreq(freq, durationMs float64) float64 {
	durationSec := durationMs / 1000
	return math.Round(freq*durationSec) / durationSec
}

// ITDToIPD converts an interaural time difference in seconds to the
// equivalent interaural phase difference in radians at the given
// frequency.
func ITDToIPD(itdSec, freq float64) float64 {
	return itdSec * freq * 2 * math.Pi
}

// NextPow2 returns the exponent p such that 2^p is the smallest power of
// two greater than or equal to x.
func NextPow2(x int) int {
	if x <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(x))))
}

func pow2Approx(x float64) float64 {
	const ln2 = 0.69314718055994530942
	return float64(approx.FastExp(float32(x * ln2)))
}

// centsToRatio converts a cents interval to a frequency ratio. The fast
// approximation error is well below the spacing of the random noise
// ladders it steps through.
func centsToRatio(cents float64) float64 {
	return pow2Approx(cents / 1200)
}

// rampEnvelope builds an amplitude envelope of length n: a raised-cosine
// onset over the first nRamp samples, amp in the middle and a
// raised-cosine offset over the last nRamp samples. nRamp == 0 yields a
// flat envelope.
func rampEnvelope(n int, amp float64, nRamp int) []float64 {
	env := make([]float64, n)
	for i := range env {
		env[i] = amp
	}
	if nRamp <= 0 || 2*nRamp > n {
		return env
	}
	for i := 0; i < nRamp; i++ {
		w := math.Cos(math.Pi * float64(i) / float64(nRamp))
		env[i] = amp * (1 - w) / 2
		env[n-nRamp+i] = amp * (1 + w) / 2
	}
	return env
}

// applyRamps scales buf in place by amp with raised-cosine onset and
// offset ramps of nRamp samples.
func applyRamps(buf []float64, amp float64, nRamp int) {
	vecmath.MulBlockInPlace(buf, rampEnvelope(len(buf), amp, nRamp))
}

// monoToSignal routes a mono buffer into the selected channel(s) of a
// fresh Signal. The unselected channel stays at zero.
func monoToSignal(mono []float64, c Channel) (Signal, error) {
	sig := NewSignal(len(mono))
	switch c {
	case ChannelLeft:
		copy(sig.Left, mono)
	case ChannelRight:
		copy(sig.Right, mono)
	case ChannelBoth:
		copy(sig.Left, mono)
		copy(sig.Right, mono)
	default:
		return Signal{}, checkChannel(c)
	}
	return sig, nil
}
