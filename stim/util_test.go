package stim

import (
	"math"
	"testing"
)

func TestNextPow2(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{511, 9},
		{512, 9},
		{513, 10},
		{1, 0},
		{2, 1},
		{3, 2},
		{48000, 16},
	}
	for _, tt := range tests {
		if got := NextPow2(tt.in); got != tt.want {
			t.Errorf("NextPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntNCyclesFreq(t *testing.T) {
	tests := []struct {
		freq       float64
		durationMs float64
		want       float64
	}{
		{2.1, 1000, 2.0},
		{2, 1000, 2.0},
		{440.3, 1000, 440.0},
		{100, 500, 100.0},
	}
	for _, tt := range tests {
		got := IntNCyclesFreq(tt.freq, tt.durationMs)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("IntNCyclesFreq(%v, %v) = %v, want %v", tt.freq, tt.durationMs, got, tt.want)
		}
	}
}

func TestITDToIPD(t *testing.T) {
	// Half a period of delay equals a phase difference of pi.
	got := ITDToIPD(0.0005, 1000)
	if math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("ITDToIPD(0.0005, 1000) = %v, want pi", got)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS(nil) = %v, want 0", got)
	}
	x := []float64{3, 3, -3, -3}
	if got := RMS(x); math.Abs(got-3) > 1e-12 {
		t.Errorf("RMS = %v, want 3", got)
	}
}

func TestSilence(t *testing.T) {
	sil := Silence(200, 48000)
	if sil.Frames() != 9600 {
		t.Fatalf("Silence frames = %d, want 9600", sil.Frames())
	}
	for i := range sil.Left {
		if sil.Left[i] != 0 || sil.Right[i] != 0 {
			t.Fatalf("silence sample %d not zero", i)
		}
	}
}

func TestCentsToRatio(t *testing.T) {
	// One octave.
	if got := centsToRatio(1200); math.Abs(got-2) > 1e-3 {
		t.Errorf("centsToRatio(1200) = %v, want 2", got)
	}
	if got := centsToRatio(0); math.Abs(got-1) > 1e-4 {
		t.Errorf("centsToRatio(0) = %v, want 1", got)
	}
}

func TestRampEnvelope(t *testing.T) {
	env := rampEnvelope(10, 2, 3)
	if env[0] != 0 {
		t.Errorf("onset must start at 0, got %v", env[0])
	}
	if math.Abs(env[7]-2) > 1e-12 {
		t.Errorf("offset must start at full amplitude, got %v", env[7])
	}
	for i := 3; i < 7; i++ {
		if env[i] != 2 {
			t.Errorf("steady state sample %d = %v, want 2", i, env[i])
		}
	}

	// Zero ramp yields a flat envelope.
	flat := rampEnvelope(5, 1, 0)
	for i, v := range flat {
		if v != 1 {
			t.Errorf("flat envelope sample %d = %v", i, v)
		}
	}
}
