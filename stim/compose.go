package stim

import (
	"fmt"
	"math"
)

// AddSounds overlays b onto a starting delayMs milliseconds after the
// onset of a, summing samples where the two overlap. If a ends before
// the delay point the gap is filled with silence. The output length is
// max(len(a), delayPoint+len(b)). Negative delays are clamped to zero.
func AddSounds(a, b Signal, delayMs, fs float64) Signal {
	d := int(math.Round(delayMs / 1000 * fs))
	if d < 0 {
		d = 0
	}
	n := a.Frames()
	if d+b.Frames() > n {
		n = d + b.Frames()
	}
	out := NewSignal(n)
	copy(out.Left, a.Left)
	copy(out.Right, a.Right)
	for i := 0; i < b.Frames(); i++ {
		out.Left[d+i] += b.Left[i]
		out.Right[d+i] += b.Right[i]
	}
	return out
}

// JoinISI concatenates a sequence of Signals separated by silences of
// the given interstimulus intervals in milliseconds. isiMs must hold one
// element less than snds.
func JoinISI(snds []Signal, isiMs []float64, fs float64) (Signal, error) {
	if len(snds) == 0 {
		return Signal{}, ErrEmptyInput
	}
	if len(isiMs) != len(snds)-1 {
		return Signal{}, fmt.Errorf("%w: %d sounds need %d intervals, got %d",
			ErrLengthMismatch, len(snds), len(snds)-1, len(isiMs))
	}

	total := 0
	gaps := make([]int, len(isiMs))
	for i, isi := range isiMs {
		gaps[i] = int(math.Round(isi / 1000 * fs))
		if gaps[i] < 0 {
			gaps[i] = 0
		}
		total += gaps[i]
	}
	for _, s := range snds {
		total += s.Frames()
	}

	out := NewSignal(total)
	pos := 0
	for i, s := range snds {
		copy(out.Left[pos:], s.Left)
		copy(out.Right[pos:], s.Right)
		pos += s.Frames()
		if i < len(gaps) {
			pos += gaps[i]
		}
	}
	return out, nil
}

// AsynchChord builds an asynchronous chord: pure tones at the given
// frequencies, levels and starting phases are overlaid in a random
// temporal order, each onset soaMs milliseconds after the previous one.
// Seed the Synth to make the onset permutation reproducible.
func (s *Synth) AsynchChord(freqs, levels, phases []float64, durationMs, rampMs float64, c Channel, soaMs float64) (Signal, error) {
	if len(freqs) == 0 {
		return Signal{}, ErrEmptyInput
	}
	if len(levels) != len(freqs) || len(phases) != len(freqs) {
		return Signal{}, fmt.Errorf("%w: %d freqs, %d levels, %d phases",
			ErrLengthMismatch, len(freqs), len(levels), len(phases))
	}
	if err := checkChannel(c); err != nil {
		return Signal{}, err
	}

	order := s.rng.Perm(len(freqs))
	var snd Signal
	for i, j := range order {
		tone, err := s.PureTone(freqs[j], phases[j], levels[j], durationMs, rampMs, c)
		if err != nil {
			return Signal{}, err
		}
		if i == 0 {
			snd = tone
		} else {
			snd = AddSounds(snd, tone, soaMs*float64(i), s.cfg.SampleRate)
		}
	}
	return snd, nil
}
