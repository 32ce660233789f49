package stim

import (
	"errors"
	"testing"
)

func dichoticParams() DichoticParams {
	return DichoticParams{
		F0:                440,
		LowHarm:           1,
		HighHarm:          3,
		CmpLevel:          30,
		LowFreq:           200,
		HighFreq:          2000,
		SpacingCents:      20,
		BandwidthCents:    100,
		PhaseRelationship: DichoticNoSpi,
		Difference:        DifferenceIPD,
		IPD:               3.14159,
		DurationMs:        80,
		RampMs:            5,
	}
}

func TestSimpleDichoticLengthAndFiniteness(t *testing.T) {
	s := newTestSynth(WithSeed(41))
	out, err := s.SimpleDichotic(dichoticParams())
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}
	want := 3840 + 2*240
	if out.Frames() != want {
		t.Errorf("frames = %d, want %d", out.Frames(), want)
	}
	requireFinite(t, "left", out.Left)
	requireFinite(t, "right", out.Right)
}

func TestSimpleDichoticZeroIPDIsDiotic(t *testing.T) {
	s := newTestSynth(WithSeed(42))
	p := dichoticParams()
	p.IPD = 0
	out, err := s.SimpleDichotic(p)
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}
	if d := maxAbsDiff(out.Left, out.Right); d != 0 {
		t.Errorf("zero IPD produced interaural difference %v", d)
	}
}

func TestSimpleDichoticIPDBandsOnly(t *testing.T) {
	s1 := newTestSynth(WithSeed(43))
	base, err := s1.SimpleDichotic(func() DichoticParams {
		p := dichoticParams()
		p.IPD = 0
		return p
	}())
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}
	s2 := newTestSynth(WithSeed(43))
	out, err := s2.SimpleDichotic(dichoticParams())
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}
	// The left ear carries the unmodified components in both renditions.
	if d := maxAbsDiff(out.Left, base.Left); d != 0 {
		t.Errorf("left channel affected by the IPD (diff %v)", d)
	}
	if d := maxAbsDiff(out.Right, base.Right); d == 0 {
		t.Error("right channel unaffected by the IPD")
	}
}

func TestSimpleDichoticLevelModeStaysDiotic(t *testing.T) {
	s := newTestSynth(WithSeed(44))
	p := dichoticParams()
	p.Difference = DifferenceLevel
	p.BandCmpLevel = p.CmpLevel + 15
	out, err := s.SimpleDichotic(p)
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}
	if d := maxAbsDiff(out.Left, out.Right); d != 0 {
		t.Errorf("level difference broke diotic symmetry by %v", d)
	}

	// The raised bands are monaurally visible.
	s2 := newTestSynth(WithSeed(44))
	p2 := p
	p2.BandCmpLevel = p.CmpLevel
	flat, err := s2.SimpleDichotic(p2)
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}
	inBand := bandEnergy(out.Left, testFs, 428, 452)
	inBandFlat := bandEnergy(flat.Left, testFs, 428, 452)
	if inBand <= 2*inBandFlat {
		t.Errorf("band energy %v not raised over flat rendition %v", inBand, inBandFlat)
	}
}

func TestSimpleDichoticITDScalesWithFrequency(t *testing.T) {
	s := newTestSynth(WithSeed(45))
	p := dichoticParams()
	p.Difference = DifferenceITD
	p.ITDMicros = 500
	out, err := s.SimpleDichotic(p)
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}
	if d := maxAbsDiff(out.Left, out.Right); d == 0 {
		t.Error("ITD produced no interaural difference")
	}
}

func TestSimpleDichoticNpiSoComplement(t *testing.T) {
	s1 := newTestSynth(WithSeed(46))
	pNo := dichoticParams()
	noSpi, err := s1.SimpleDichotic(pNo)
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}

	s2 := newTestSynth(WithSeed(46))
	pNpi := dichoticParams()
	pNpi.PhaseRelationship = DichoticNpiSo
	npiSo, err := s2.SimpleDichotic(pNpi)
	if err != nil {
		t.Fatalf("SimpleDichotic: %v", err)
	}

	// Same seed, same ladder: the left channels agree, the right
	// channels differ because complementary component sets are rotated.
	if d := maxAbsDiff(noSpi.Left, npiSo.Left); d != 0 {
		t.Errorf("left channels differ by %v", d)
	}
	if d := maxAbsDiff(noSpi.Right, npiSo.Right); d == 0 {
		t.Error("complementary phase relationships produced identical right channels")
	}
}

func TestSimpleDichoticNpiSoTargetBoundaries(t *testing.T) {
	p := dichoticParams()
	p.PhaseRelationship = DichoticNpiSo
	// First band spans ~427..453 Hz, last band ~1321..1359 Hz.
	freqs := []float64{p.LowFreq, 300, 440, 600, 2000}
	shifted := p.targetComponents(freqs)

	if !shifted[0] {
		t.Error("component at the ladder floor not shifted")
	}
	if !shifted[1] {
		t.Error("component below the first band not shifted")
	}
	if shifted[2] {
		t.Error("in-band component shifted")
	}
	if !shifted[3] {
		t.Error("component between bands not shifted")
	}
	if !shifted[4] {
		t.Error("component above the last band not shifted")
	}
}

func TestSimpleDichoticInvalidParams(t *testing.T) {
	s := newTestSynth()
	p := dichoticParams()
	p.PhaseRelationship = DichoticPhase(9)
	if _, err := s.SimpleDichotic(p); !errors.Is(err, ErrInvalidPhaseRel) {
		t.Errorf("invalid phase relationship: err = %v", err)
	}

	p = dichoticParams()
	p.Difference = DichoticDifference(9)
	if _, err := s.SimpleDichotic(p); !errors.Is(err, ErrInvalidDifference) {
		t.Errorf("invalid difference: err = %v", err)
	}

	p = dichoticParams()
	p.LowHarm = 0
	if _, err := s.SimpleDichotic(p); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("invalid harmonics: err = %v", err)
	}
}

func hugginsParams() HugginsParams {
	return HugginsParams{
		F0:                440,
		LowHarm:           1,
		HighHarm:          3,
		SpectrumLevel:     30,
		BandwidthHz:       80,
		PhaseRelationship: DichoticNoSpi,
		Noise:             NoiseWhite,
		DurationMs:        100,
		RampMs:            10,
	}
}

func TestHugginsRightChannelIsPlainNoise(t *testing.T) {
	s1 := newTestSynth(WithSeed(51))
	out, err := s1.Huggins(hugginsParams())
	if err != nil {
		t.Fatalf("Huggins: %v", err)
	}

	s2 := newTestSynth(WithSeed(51))
	noise, err := s2.BroadbandNoise(30, 120, 0, ChannelBoth)
	if err != nil {
		t.Fatalf("BroadbandNoise: %v", err)
	}
	ref := Gate(10, noise, testFs)

	if d := maxAbsDiff(out.Right, ref.Right); d != 0 {
		t.Errorf("right channel differs from gated noise by %v", d)
	}
	if d := maxAbsDiff(out.Left, ref.Left); d == 0 {
		t.Error("left channel carries no phase inversion")
	}
}

func TestHugginsPinkCarrier(t *testing.T) {
	s := newTestSynth(WithSeed(52))
	p := hugginsParams()
	p.Noise = NoisePink
	out, err := s.Huggins(p)
	if err != nil {
		t.Fatalf("Huggins: %v", err)
	}
	lowOct := bandEnergy(out.Right, testFs, 200, 400)
	highOct := bandEnergy(out.Right, testFs, 6400, 12800)
	if lowOct <= highOct {
		t.Errorf("pink carrier: low octave %v not stronger than high octave %v", lowOct, highOct)
	}
}

func TestHugginsNpiSo(t *testing.T) {
	s := newTestSynth(WithSeed(53))
	p := hugginsParams()
	p.PhaseRelationship = DichoticNpiSo
	out, err := s.Huggins(p)
	if err != nil {
		t.Fatalf("Huggins: %v", err)
	}
	want := 4800 + 2*480
	if out.Frames() != want {
		t.Errorf("frames = %d, want %d", out.Frames(), want)
	}
	requireFinite(t, "left", out.Left)
	if d := maxAbsDiff(out.Left, out.Right); d == 0 {
		t.Error("NpiSo produced identical channels")
	}
}

func TestHugginsInvalidNoiseColor(t *testing.T) {
	s := newTestSynth()
	p := hugginsParams()
	p.Noise = NoiseColor(7)
	if _, err := s.Huggins(p); !errors.Is(err, ErrInvalidNoiseColor) {
		t.Errorf("err = %v, want ErrInvalidNoiseColor", err)
	}
}
