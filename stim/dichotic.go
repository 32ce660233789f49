package stim

import (
	"fmt"
	"math"
)

// DichoticParams bundles the parameters of SimpleDichotic.
type DichoticParams struct {
	// F0 is the centre frequency of the fundamental in Hz.
	F0 float64
	// LowHarm and HighHarm number the lowest and highest harmonic
	// bands; the first harmonic is 1.
	LowHarm  int
	HighHarm int
	// CmpLevel is the level of each sinusoidal noise component in dB SPL.
	CmpLevel float64
	// LowFreq and HighFreq bound the noise in Hz.
	LowFreq  float64
	HighFreq float64
	// SpacingCents is the spacing between noise components in cents.
	SpacingCents float64
	// BandwidthCents is the width of each harmonic band in cents.
	BandwidthCents float64
	// PhaseRelationship selects whether the harmonic bands (NoSpi) or
	// their complement (NpiSo) receive the interaural difference.
	PhaseRelationship DichoticPhase
	// Difference selects the interaural manipulation.
	Difference DichoticDifference
	// ITDMicros is the interaural time difference in microseconds,
	// applied when Difference is DifferenceITD.
	ITDMicros float64
	// IPD is the interaural phase difference in radians, applied when
	// Difference is DifferenceIPD.
	IPD float64
	// BandCmpLevel is the component level inside the target bands in dB
	// SPL, applied to both ears when Difference is DifferenceLevel.
	BandCmpLevel float64
	DurationMs   float64
	RampMs       float64
}

// SimpleDichotic generates harmonically related dichotic pitches, or
// equivalent narrowband tones in noise.
//
// A pink noise is built by summing closely cents-spaced sinusoids over
// a wide frequency range. An interaural time or phase difference is
// then applied to the components falling in harmonically related
// narrow bands (or in the complement of those bands for NpiSo),
// producing a dichotic pitch. With DifferenceLevel the level of those
// components is raised in both ears instead, giving a monaurally
// audible pitch of comparable salience.
func (s *Synth) SimpleDichotic(p DichoticParams) (Signal, error) {
	if err := checkDichoticPhase(p.PhaseRelationship); err != nil {
		return Signal{}, err
	}
	if err := checkDichoticDifference(p.Difference); err != nil {
		return Signal{}, err
	}
	if p.LowHarm < 1 || p.HighHarm < p.LowHarm {
		return Signal{}, fmt.Errorf("%w: harmonics %d..%d", ErrInvalidFrequency, p.LowHarm, p.HighHarm)
	}

	freqs, phases, err := s.centsLadder(p.LowFreq, p.HighFreq, p.SpacingCents)
	if err != nil {
		return Signal{}, err
	}
	shifted := p.targetComponents(freqs)

	amp := s.amp(p.CmpLevel)
	_, _, nTot := s.frames(p.DurationMs, p.RampMs)
	fs := s.cfg.SampleRate
	sig := NewSignal(nTot)

	for k, f := range freqs {
		ampL, ampR := amp, amp
		phaseL, phaseR := phases[k], phases[k]
		if shifted[k] {
			switch p.Difference {
			case DifferenceIPD:
				phaseR += p.IPD
			case DifferenceITD:
				phaseR += ITDToIPD(p.ITDMicros/1e6, f)
			case DifferenceLevel:
				amp2 := s.amp(p.BandCmpLevel)
				ampL, ampR = amp2, amp2
			}
		}
		w := 2 * math.Pi * f
		for n := 0; n < nTot; n++ {
			t := float64(n) / fs
			sig.Left[n] += ampL * math.Sin(w*t+phaseL)
			sig.Right[n] += ampR * math.Sin(w*t+phaseR)
		}
	}
	return Gate(p.RampMs, sig, fs), nil
}

// targetComponents marks the ladder components receiving the interaural
// difference: those inside the harmonic bands for NoSpi, those between
// and around the bands for NpiSo.
func (p DichoticParams) targetComponents(freqs []float64) []bool {
	shifted := make([]bool, len(freqs))
	mark := func(lo, hi float64) {
		for k, f := range freqs {
			if f > lo && f < hi {
				shifted[k] = true
			}
		}
	}

	halfBandUp := centsToRatio(p.BandwidthCents / 2)
	halfBandDown := centsToRatio(-p.BandwidthCents / 2)
	for i := p.LowHarm; i <= p.HighHarm; i++ {
		center := p.F0 * float64(i)
		lo := center * halfBandDown
		hi := center * halfBandUp
		switch p.PhaseRelationship {
		case DichoticNoSpi:
			mark(lo, hi)
		case DichoticNpiSo:
			if i == p.LowHarm {
				// Everything below the first band, including a
				// component sitting exactly at LowFreq.
				mark(0, lo)
			} else {
				hiPrev := p.F0 * float64(i-1) * halfBandUp
				mark(hiPrev, lo)
			}
			if i == p.HighHarm {
				mark(hi, math.Inf(1))
			}
		}
	}
	return shifted
}

// HugginsParams bundles the parameters of Huggins.
type HugginsParams struct {
	// F0 is the centre frequency of the fundamental in Hz.
	F0 float64
	// LowHarm and HighHarm number the lowest and highest harmonic
	// bands; the first harmonic is 1.
	LowHarm  int
	HighHarm int
	// SpectrumLevel is the spectrum level of the carrier noise in dB SPL.
	SpectrumLevel float64
	// BandwidthHz is the width in Hz of the phase-transition regions.
	BandwidthHz float64
	// PhaseRelationship selects whether the harmonic bands (NoSpi) or
	// their complement (NpiSo) are phase shifted.
	PhaseRelationship DichoticPhase
	// Noise selects the carrier noise color.
	Noise      NoiseColor
	DurationMs float64
	RampMs     float64
}

// Huggins synthesizes a complex Huggins pitch: a diotic noise whose left
// channel is phase inverted within (NoSpi) or between (NpiSo) narrow
// frequency bands centred on harmonics of F0. The interaurally
// decorrelated band edges evoke a pitch at F0 with no monaural cue.
func (s *Synth) Huggins(p HugginsParams) (Signal, error) {
	if err := checkDichoticPhase(p.PhaseRelationship); err != nil {
		return Signal{}, err
	}
	if err := checkNoiseColor(p.Noise); err != nil {
		return Signal{}, err
	}
	if p.LowHarm < 1 || p.HighHarm < p.LowHarm {
		return Signal{}, fmt.Errorf("%w: harmonics %d..%d", ErrInvalidFrequency, p.LowHarm, p.HighHarm)
	}

	fs := s.cfg.SampleRate
	tone, err := s.BroadbandNoise(p.SpectrumLevel, p.DurationMs+2*p.RampMs, 0, ChannelBoth)
	if err != nil {
		return Signal{}, err
	}
	if p.Noise == NoisePink {
		tone = MakePink(tone, fs)
	}

	for i := p.LowHarm; i <= p.HighHarm; i++ {
		lo := p.F0*float64(i) - p.BandwidthHz/2
		hi := p.F0*float64(i) + p.BandwidthHz/2
		switch p.PhaseRelationship {
		case DichoticNoSpi:
			tone, err = PhaseShift(tone, lo, hi, math.Pi, ChannelLeft, fs)
		case DichoticNpiSo:
			hiPrev := p.F0*float64(i-1) + p.BandwidthHz/2
			if i == p.LowHarm {
				// Region below the first band, down to 10 Hz.
				tone, err = PhaseShift(tone, 10, lo, math.Pi, ChannelLeft, fs)
			} else {
				tone, err = PhaseShift(tone, hiPrev, lo, math.Pi, ChannelLeft, fs)
			}
			if err == nil && i == p.HighHarm {
				tone, err = PhaseShift(tone, hi, fs/2, math.Pi, ChannelLeft, fs)
			}
		}
		if err != nil {
			return Signal{}, err
		}
	}
	return Gate(p.RampMs, tone, fs), nil
}

func checkDichoticPhase(p DichoticPhase) error {
	switch p {
	case DichoticNoSpi, DichoticNpiSo:
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidPhaseRel, p)
}

func checkDichoticDifference(d DichoticDifference) error {
	switch d {
	case DifferenceIPD, DifferenceITD, DifferenceLevel:
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidDifference, d)
}

func checkNoiseColor(n NoiseColor) error {
	switch n {
	case NoiseWhite, NoisePink:
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidNoiseColor, n)
}
