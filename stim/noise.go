package stim

import (
	"fmt"
	"math"
)

// BroadbandNoise synthesizes a broadband noise at the given intensity
// spectrum level in dB SPL. ChannelBoth produces the same noise in both
// ears (diotic).
func (s *Synth) BroadbandNoise(spectrumLevel, durationMs, rampMs float64, c Channel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	_, nRamp, nTot := s.frames(durationMs, rampMs)

	// RMS = 10^(SL/20) * sqrt(NHz) with NHz the Nyquist bandwidth.
	amp := math.Sqrt(s.cfg.SampleRate/2) * s.amp(spectrumLevel)

	noise := make([]float64, nTot)
	for i := range noise {
		noise[i] = s.rng.Float64() + s.rng.Float64() - s.rng.Float64() - s.rng.Float64()
	}
	// Normalize so the nominal peak amplitude is 1 (A = RMS*sqrt(2)).
	rms := RMS(noise)
	if rms > 0 {
		for i := range noise {
			noise[i] /= rms * math.Sqrt2
		}
	}
	applyRamps(noise, amp, nRamp)
	return monoToSignal(noise, c)
}

// SteepNoise synthesizes band-limited noise between freq1 and freq2 Hz
// by summing random-phase sinusoids spaced at exact analysis-bin
// intervals (1/totalDuration), which gives very steep spectral edges.
// level is the noise spectrum level in dB SPL.
func (s *Synth) SteepNoise(freq1, freq2, level, durationMs, rampMs float64, c Channel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	mono, err := s.steepNoiseMono(freq1, freq2, level, durationMs, rampMs)
	if err != nil {
		return Signal{}, err
	}
	return monoToSignal(mono, c)
}

// steepNoiseMono generates the ramped mono band used by SteepNoise and
// the narrowband harmonic complex builder.
func (s *Synth) steepNoiseMono(freq1, freq2, level, durationMs, rampMs float64) ([]float64, error) {
	if freq2 <= freq1 {
		return nil, fmt.Errorf("%w: band %v..%v Hz", ErrInvalidFrequency, freq1, freq2)
	}
	_, nRamp, nTot := s.frames(durationMs, rampMs)
	totDurSec := durationMs/1000 + 2*rampMs/1000
	if totDurSec <= 0 {
		return nil, ErrEmptyInput
	}

	spacing := 1 / totDurSec
	nComponents := 1 + int(math.Floor((freq2-freq1)/spacing))
	// RMS = 10^(SL/20) * sqrt(NHz) with NHz the component spacing.
	amp := s.amp(level) * math.Sqrt((freq2-freq1)/float64(nComponents))

	nyquist := s.cfg.SampleRate / 2
	fs := s.cfg.SampleRate
	noise := make([]float64, nTot)
	for k := 0; k < nComponents; k++ {
		f := freq1 + float64(k)*spacing
		phase := s.rng.Float64() * 2 * math.Pi
		if f >= nyquist {
			continue
		}
		w := 2 * math.Pi * f
		for n := range noise {
			noise[n] += math.Sin(phase + w*float64(n)/fs)
		}
	}
	applyRamps(noise, amp, nRamp)
	return noise, nil
}

// PinkNoiseFromSin synthesizes a pink noise by summing random-phase
// sinusoids from lowCmp to highCmp Hz spaced by a fixed interval in
// cents. Equal component levels with logarithmic spacing give the
// 1/f power distribution. compLevel is the level of each component in
// dB SPL.
func (s *Synth) PinkNoiseFromSin(compLevel, lowCmp, highCmp, spacingCents, durationMs, rampMs float64, c Channel) (Signal, error) {
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}
	freqs, phases, err := s.centsLadder(lowCmp, highCmp, spacingCents)
	if err != nil {
		return Signal{}, err
	}
	_, nRamp, nTot := s.frames(durationMs, rampMs)

	fs := s.cfg.SampleRate
	mono := make([]float64, nTot)
	for k, f := range freqs {
		w := 2 * math.Pi * f
		for n := range mono {
			mono[n] += math.Sin(w*float64(n)/fs + phases[k])
		}
	}
	applyRamps(mono, s.amp(compLevel), nRamp)
	return monoToSignal(mono, c)
}

// centsLadder builds the component frequencies of a cents-spaced noise
// ladder and draws a random starting phase for each. Components at or
// above Nyquist are clamped out.
func (s *Synth) centsLadder(low, high, spacingCents float64) ([]float64, []float64, error) {
	if low <= 0 || high <= low || spacingCents <= 0 {
		return nil, nil, fmt.Errorf("%w: ladder %v..%v Hz, spacing %v cents", ErrInvalidFrequency, low, high, spacingCents)
	}
	bandwidthCents := 1200 * math.Log2(high/low)
	nComponents := int(math.Floor(bandwidthCents / spacingCents))
	if nComponents < 1 {
		return nil, nil, fmt.Errorf("%w: ladder narrower than component spacing", ErrInvalidFrequency)
	}

	step := centsToRatio(spacingCents)
	nyquist := s.cfg.SampleRate / 2
	freqs := make([]float64, 0, nComponents)
	phases := make([]float64, 0, nComponents)
	f := low
	for k := 0; k < nComponents; k++ {
		if k > 0 {
			f *= step
		}
		phase := s.rng.Float64() * 2 * math.Pi
		if f >= nyquist {
			continue
		}
		freqs = append(freqs, f)
		phases = append(phases, phase)
	}
	return freqs, phases, nil
}

// HarmComplexFromNoise synthesizes a harmonic complex whose partials are
// replaced by narrow noise bands of the given bandwidth in Hz centred on
// harmonics lowHarm..highHarm of f0. level is the spectrum level of each
// band in dB SPL. Odd channel modes route odd-numbered harmonic bands to
// one ear and even-numbered ones to the other.
func (s *Synth) HarmComplexFromNoise(f0 float64, lowHarm, highHarm int, level, bandwidth, durationMs, rampMs float64, c Channel) (Signal, error) {
	if err := checkHarmonicChannel(c); err != nil {
		return Signal{}, err
	}
	if lowHarm < 1 || highHarm < lowHarm {
		return Signal{}, fmt.Errorf("%w: harmonics %d..%d", ErrInvalidFrequency, lowHarm, highHarm)
	}
	_, _, nTot := s.frames(durationMs, rampMs)

	sum := make([]float64, nTot)
	odd := make([]float64, nTot)
	even := make([]float64, nTot)
	for i := lowHarm; i <= highHarm; i++ {
		f := f0 * float64(i)
		band, err := s.steepNoiseMono(f-bandwidth/2, f+bandwidth/2, level, durationMs, rampMs)
		if err != nil {
			return Signal{}, err
		}
		dst := sum
		if c == ChannelOddLeft || c == ChannelOddRight {
			dst = even
			if i%2 != 0 {
				dst = odd
			}
		}
		for n, v := range band {
			dst[n] += v
		}
	}

	switch c {
	case ChannelLeft, ChannelRight, ChannelBoth:
		return monoToSignal(sum, c)
	case ChannelOddLeft:
		sig := NewSignal(nTot)
		copy(sig.Left, odd)
		copy(sig.Right, even)
		return sig, nil
	default: // ChannelOddRight
		sig := NewSignal(nTot)
		copy(sig.Right, odd)
		copy(sig.Left, even)
		return sig, nil
	}
}
