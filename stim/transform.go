package stim

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Gate imposes raised-cosine onset and offset ramps of rampMs
// milliseconds on an already generated Signal, leaving the middle
// untouched. A zero ramp returns an unmodified copy. The input is not
// modified.
func Gate(rampMs float64, sig Signal, fs float64) Signal {
	out := sig.Clone()
	nRamp := int(math.Round(rampMs / 1000 * fs))
	n := out.Frames()
	if nRamp <= 0 || n == 0 {
		return out
	}
	if 2*nRamp > n {
		nRamp = n / 2
	}
	env := rampEnvelope(n, 1, nRamp)
	vecmath.MulBlockInPlace(out.Left, env)
	vecmath.MulBlockInPlace(out.Right, env)
	return out
}

// Scale changes the level of a Signal by the given amount in dB.
// Multiplying the amplitudes adds the decibels. The input is not
// modified.
func Scale(levelDB float64, sig Signal) Signal {
	out := sig.Clone()
	g := math.Pow(10, levelDB/20)
	for i := range out.Left {
		out.Left[i] *= g
	}
	for i := range out.Right {
		out.Right[i] *= g
	}
	return out
}

// ImposeLevelGlide changes the level of the selected channel(s) with a
// smooth raised-cosine amplitude transition: unity gain before startMs,
// 10^(deltaL/20) after endMs and a raised-cosine ramp in between. The
// unselected channel passes through unchanged. deltaL == 0 returns an
// unmodified copy.
func ImposeLevelGlide(sig Signal, deltaL, startMs, endMs float64, c Channel, fs float64) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	out := sig.Clone()
	if deltaL == 0 {
		return out, nil
	}

	n := out.Frames()
	startPnt := clampIndex(int(math.Round(startMs/1000*fs)), n)
	endPnt := clampIndex(int(math.Round(endMs/1000*fs)), n)
	if endPnt < startPnt {
		return Signal{}, fmt.Errorf("%w: glide start %v ms after end %v ms", ErrLengthMismatch, startMs, endMs)
	}

	endAmp := math.Pow(10, deltaL/20)
	gain := make([]float64, n)
	nRamp := endPnt - startPnt
	for i := range gain {
		switch {
		case i < startPnt:
			gain[i] = 1
		case i < endPnt:
			w := math.Cos(math.Pi * float64(i-startPnt) / float64(nRamp))
			gain[i] = (1+w)/2 + endAmp*(1-w)/2
		default:
			gain[i] = endAmp
		}
	}

	if c == ChannelLeft || c == ChannelBoth {
		vecmath.MulBlockInPlace(out.Left, gain)
	}
	if c == ChannelRight || c == ChannelBoth {
		vecmath.MulBlockInPlace(out.Right, gain)
	}
	return out, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
