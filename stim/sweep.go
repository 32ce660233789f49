package stim

import (
	"fmt"
	"math"
)

// Chirp synthesizes a tone whose frequency changes at a constant rate:
// Hz per second for SweepLinear, cents per second for SweepExponential.
// phase is the starting phase in cycles of the underlying phase law.
func (s *Synth) Chirp(freqStart float64, kind SweepKind, rate, level, durationMs, phase, rampMs float64, c Channel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	_, nRamp, nTot := s.frames(durationMs, rampMs)

	// cycles holds the accumulated cycle count at each sample; the
	// carrier is sin(2*pi*cycles).
	cycles := make([]float64, nTot)
	fs := s.cfg.SampleRate
	switch kind {
	case SweepLinear:
		for i := range cycles {
			t := float64(i) / fs
			cycles[i] = freqStart*t + (rate/2)*t*t + phase
		}
	case SweepExponential:
		k := math.Exp2(rate / 1200)
		logK := math.Log(k)
		for i := range cycles {
			t := float64(i) / fs
			cycles[i] = freqStart * ((math.Pow(k, t)-1)/logK + phase)
		}
	default:
		return Signal{}, checkSweepKind(kind)
	}

	mono := make([]float64, nTot)
	for i := range mono {
		mono[i] = math.Sin(2 * math.Pi * cycles[i])
	}
	applyRamps(mono, s.amp(level), nRamp)
	return monoToSignal(mono, c)
}

// Glide synthesizes a rising or falling tone glide spanning a total
// frequency excursion over the full sound duration: Hz for SweepLinear,
// cents for SweepExponential.
func (s *Synth) Glide(freqStart float64, kind SweepKind, excursion, level, durationMs, phase, rampMs float64, c Channel) (Signal, error) {
	totDurSec := durationMs/1000 + 2*rampMs/1000
	if totDurSec <= 0 {
		return Signal{}, ErrEmptyInput
	}
	return s.Chirp(freqStart, kind, excursion/totDurSec, level, durationMs, phase, rampMs, c)
}

func checkSweepKind(k SweepKind) error {
	switch k {
	case SweepLinear, SweepExponential:
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidSweep, k)
}
