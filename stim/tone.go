package stim

import (
	"math"
)

// PureTone synthesizes a pure tone.
//
// frequency is in Hz, phase the starting phase in radians, level the
// tone level in dB SPL. durationMs excludes the ramps; the total
// duration is durationMs + 2*rampMs.
func (s *Synth) PureTone(frequency, phase, level, durationMs, rampMs float64, c Channel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	_, nRamp, nTot := s.frames(durationMs, rampMs)

	mono := make([]float64, nTot)
	fs := s.cfg.SampleRate
	for i := range mono {
		mono[i] = math.Sin(2*math.Pi*frequency*float64(i)/fs + phase)
	}
	applyRamps(mono, s.amp(level), nRamp)
	return monoToSignal(mono, c)
}

// BinauralPureTone synthesizes a pure tone with an optional interaural
// time and/or level difference.
//
// itd is in microseconds and ild in dB; each is applied to the ear
// opposite its reference channel. A nonzero difference with RefNone is
// ignored with a warning. Differences take effect only for ChannelBoth;
// single-channel tones are identical to PureTone.
func (s *Synth) BinauralPureTone(frequency, phase, level, durationMs, rampMs float64, c Channel, itd float64, itdRef RefChannel, ild float64, ildRef RefChannel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	if err := checkRefChannel(itdRef); err != nil {
		return Signal{}, err
	}
	if err := checkRefChannel(ildRef); err != nil {
		return Signal{}, err
	}
	if itd != 0 && itdRef == RefNone {
		s.warnf("stim: itd is %v us but no itd reference channel was given; no itd will be applied", itd)
	}
	if ild != 0 && ildRef == RefNone {
		s.warnf("stim: ild is %v dB but no ild reference channel was given; no ild will be applied", ild)
	}

	if c != ChannelBoth {
		return s.PureTone(frequency, phase, level, durationMs, rampMs, c)
	}

	ampLeft := s.amp(level)
	ampRight := s.amp(level)
	switch ildRef {
	case RefRight:
		ampLeft = s.amp(level + ild)
	case RefLeft:
		ampRight = s.amp(level + ild)
	}

	phaseLeft := phase
	phaseRight := phase
	ipd := ITDToIPD(itd/1e6, frequency)
	switch itdRef {
	case RefRight:
		phaseLeft = phase + ipd
	case RefLeft:
		phaseRight = phase + ipd
	}

	_, nRamp, nTot := s.frames(durationMs, rampMs)
	fs := s.cfg.SampleRate
	sig := NewSignal(nTot)
	for i := 0; i < nTot; i++ {
		t := float64(i) / fs
		sig.Left[i] = math.Sin(2*math.Pi*frequency*t + phaseLeft)
		sig.Right[i] = math.Sin(2*math.Pi*frequency*t + phaseRight)
	}
	applyRamps(sig.Left, ampLeft, nRamp)
	applyRamps(sig.Right, ampRight, nRamp)
	return sig, nil
}

// AMTone synthesizes a sinusoidally amplitude modulated tone. depth 1
// corresponds to 100% modulation.
func (s *Synth) AMTone(carrier, modFreq, depth, phase, level, durationMs, rampMs float64, c Channel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	_, nRamp, nTot := s.frames(durationMs, rampMs)

	mono := make([]float64, nTot)
	fs := s.cfg.SampleRate
	for i := range mono {
		t := float64(i) / fs
		mono[i] = (1 + depth*math.Sin(2*math.Pi*modFreq*t)) * math.Sin(2*math.Pi*carrier*t+phase)
	}
	applyRamps(mono, s.amp(level), nRamp)
	return monoToSignal(mono, c)
}

// FMTone synthesizes a sinusoidally frequency modulated tone. index is
// the modulation index (peak frequency deviation divided by modFreq).
func (s *Synth) FMTone(carrier, modFreq, index, phase, level, durationMs, rampMs float64, c Channel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	_, nRamp, nTot := s.frames(durationMs, rampMs)

	mono := make([]float64, nTot)
	fs := s.cfg.SampleRate
	for i := range mono {
		t := float64(i) / fs
		mono[i] = math.Sin(2*math.Pi*carrier*t + index*math.Sin(2*math.Pi*modFreq*t+phase))
	}
	applyRamps(mono, s.amp(level), nRamp)
	return monoToSignal(mono, c)
}

// ExpSinFMTone synthesizes a tone whose frequency is modulated by an
// exponential sinusoid: the instantaneous frequency swings between
// carrier*2^(-deltaCents/1200) and carrier*2^(+deltaCents/1200). The
// instantaneous phase is the cumulative sum of the instantaneous
// angular frequency.
func (s *Synth) ExpSinFMTone(carrier, modFreq, deltaCents, phase, level, durationMs, rampMs float64, c Channel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	_, nRamp, nTot := s.frames(durationMs, rampMs)

	mono := make([]float64, nTot)
	fs := s.cfg.SampleRate
	ang := 0.0
	for i := range mono {
		t := float64(i) / fs
		w := 2 * math.Pi * carrier * math.Exp2((deltaCents/1200)*math.Cos(2*math.Pi*modFreq*t+phase))
		ang += w / fs
		mono[i] = math.Sin(ang)
	}
	applyRamps(mono, s.amp(level), nRamp)
	return monoToSignal(mono, c)
}
