package stim

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestComplexToneParallelMatchesSequential(t *testing.T) {
	phases := []HarmPhase{
		HarmPhaseSine, HarmPhaseCosine, HarmPhaseAlternating,
		HarmPhaseSchroeder, HarmPhaseRandom,
	}
	channels := []Channel{ChannelLeft, ChannelRight, ChannelBoth, ChannelOddLeft, ChannelOddRight}

	for _, hp := range phases {
		for _, c := range channels {
			t.Run(fmt.Sprintf("%v_%v", hp, c), func(t *testing.T) {
				seq, err := newTestSynth(WithSeed(7)).ComplexTone(220, hp, 1, 12, 0, 55, 180, 10, c)
				if err != nil {
					t.Fatalf("ComplexTone: %v", err)
				}
				par, err := newTestSynth(WithSeed(7)).ComplexToneParallel(220, hp, 1, 12, 0, 55, 180, 10, c)
				if err != nil {
					t.Fatalf("ComplexToneParallel: %v", err)
				}
				if d := maxAbsDiff(seq.Left, par.Left); d != 0 {
					t.Errorf("left channels differ by %v", d)
				}
				if d := maxAbsDiff(seq.Right, par.Right); d != 0 {
					t.Errorf("right channels differ by %v", d)
				}
			})
		}
	}
}

func TestComplexToneSingleHarmonicIsSine(t *testing.T) {
	s := newTestSynth()
	ct, err := s.ComplexTone(440, HarmPhaseSine, 1, 1, 0, 65, 180, 0, ChannelRight)
	if err != nil {
		t.Fatalf("ComplexTone: %v", err)
	}
	pt, err := s.PureTone(440, 0, 65, 180, 0, ChannelRight)
	if err != nil {
		t.Fatalf("PureTone: %v", err)
	}
	if d := maxAbsDiff(ct.Right, pt.Right); d > 1e-12 {
		t.Errorf("single-harmonic complex deviates from pure tone by %v", d)
	}
}

func TestComplexToneOddRouting(t *testing.T) {
	s := newTestSynth()
	sig, err := s.ComplexTone(300, HarmPhaseSine, 1, 6, 0, 60, 500, 0, ChannelOddLeft)
	if err != nil {
		t.Fatalf("ComplexTone: %v", err)
	}
	// Odd harmonics (300, 900, 1500) go left, even (600, 1200, 1800) right.
	const tol = 25.0
	for _, f := range []float64{300, 900, 1500} {
		l := bandEnergy(sig.Left, testFs, f-tol, f+tol)
		r := bandEnergy(sig.Right, testFs, f-tol, f+tol)
		if l < 100*r {
			t.Errorf("odd harmonic %v Hz: left=%v right=%v, want left dominant", f, l, r)
		}
	}
	for _, f := range []float64{600, 1200, 1800} {
		l := bandEnergy(sig.Left, testFs, f-tol, f+tol)
		r := bandEnergy(sig.Right, testFs, f-tol, f+tol)
		if r < 100*l {
			t.Errorf("even harmonic %v Hz: left=%v right=%v, want right dominant", f, l, r)
		}
	}
}

func TestComplexToneStretch(t *testing.T) {
	s := newTestSynth()
	// 10% stretch shifts every harmonic up by 44 Hz.
	sig, err := s.ComplexTone(440, HarmPhaseSine, 2, 2, 10, 65, 1000, 0, ChannelBoth)
	if err != nil {
		t.Fatalf("ComplexTone: %v", err)
	}
	peak := peakFrequency(sig.Left, testFs)
	if math.Abs(peak-924) > 2 {
		t.Errorf("stretched harmonic at %v Hz, want 924", peak)
	}
}

func TestComplexToneAlternatingPhases(t *testing.T) {
	s := newTestSynth()
	phases := s.harmonicPhases(HarmPhaseAlternating, 1, 4)
	want := []float64{math.Pi / 2, 0, math.Pi / 2, 0}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("harmonic %d phase = %v, want %v", i+1, phases[i], want[i])
		}
	}

	// An isolated odd harmonic is cosine phased, an even one sine phased.
	odd, err := s.ComplexTone(440, HarmPhaseAlternating, 1, 1, 0, 65, 180, 0, ChannelBoth)
	if err != nil {
		t.Fatalf("ComplexTone: %v", err)
	}
	cosTone, err := s.PureTone(440, math.Pi/2, 65, 180, 0, ChannelBoth)
	if err != nil {
		t.Fatalf("PureTone: %v", err)
	}
	if d := maxAbsDiff(odd.Left, cosTone.Left); d > 1e-12 {
		t.Errorf("odd harmonic deviates from cosine-phase tone by %v", d)
	}

	even, err := s.ComplexTone(440, HarmPhaseAlternating, 2, 2, 0, 65, 180, 0, ChannelBoth)
	if err != nil {
		t.Fatalf("ComplexTone: %v", err)
	}
	sinTone, err := s.PureTone(880, 0, 65, 180, 0, ChannelBoth)
	if err != nil {
		t.Fatalf("PureTone: %v", err)
	}
	if d := maxAbsDiff(even.Left, sinTone.Left); d > 1e-12 {
		t.Errorf("even harmonic deviates from sine-phase tone by %v", d)
	}
}

func TestComplexToneSchroederPhases(t *testing.T) {
	s := newTestSynth()
	phases := s.harmonicPhases(HarmPhaseSchroeder, 1, 4)
	want := []float64{0, -math.Pi * 2 * 1 / 4, -math.Pi * 3 * 2 / 4, -math.Pi * 4 * 3 / 4}
	for i := range want {
		if math.Abs(phases[i]-want[i]) > 1e-12 {
			t.Errorf("harmonic %d phase = %v, want %v", i+1, phases[i], want[i])
		}
	}
}

func TestComplexToneRandomPhaseSeeded(t *testing.T) {
	a, err := newTestSynth(WithSeed(3)).ComplexTone(200, HarmPhaseRandom, 1, 8, 0, 55, 100, 5, ChannelBoth)
	if err != nil {
		t.Fatalf("ComplexTone: %v", err)
	}
	b, err := newTestSynth(WithSeed(3)).ComplexTone(200, HarmPhaseRandom, 1, 8, 0, 55, 100, 5, ChannelBoth)
	if err != nil {
		t.Fatalf("ComplexTone: %v", err)
	}
	if d := maxAbsDiff(a.Left, b.Left); d != 0 {
		t.Errorf("equal seeds must reproduce output, diff %v", d)
	}

	c, err := newTestSynth(WithSeed(4)).ComplexTone(200, HarmPhaseRandom, 1, 8, 0, 55, 100, 5, ChannelBoth)
	if err != nil {
		t.Fatalf("ComplexTone: %v", err)
	}
	if d := maxAbsDiff(a.Left, c.Left); d == 0 {
		t.Error("different seeds produced identical random-phase output")
	}
}

func TestComplexToneInvalidArgs(t *testing.T) {
	s := newTestSynth()
	if _, err := s.ComplexTone(440, HarmPhase(11), 1, 4, 0, 55, 100, 10, ChannelBoth); !errors.Is(err, ErrInvalidHarmPhase) {
		t.Errorf("invalid phase: err = %v", err)
	}
	if _, err := s.ComplexTone(440, HarmPhaseSine, 1, 4, 0, 55, 100, 10, Channel(9)); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("invalid channel: err = %v", err)
	}
	if _, err := s.ComplexTone(440, HarmPhaseSine, 4, 1, 0, 55, 100, 10, ChannelBoth); err == nil {
		t.Error("expected error for inverted harmonic range")
	}
}

func BenchmarkComplexTone(b *testing.B) {
	s := newTestSynth()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.ComplexTone(220, HarmPhaseSine, 1, 20, 0, 55, 500, 10, ChannelBoth)
	}
}

func BenchmarkComplexToneParallel(b *testing.B) {
	s := newTestSynth()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.ComplexToneParallel(220, HarmPhaseSine, 1, 20, 0, 55, 500, 10, ChannelBoth)
	}
}
