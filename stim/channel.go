package stim

import "fmt"

// Channel selects which column(s) of a Signal a generator or transform
// writes. The odd variants route odd-numbered harmonics to one ear and
// even-numbered harmonics to the other; they are only accepted by
// generators indexed by harmonic number.
type Channel int

const (
	ChannelLeft Channel = iota
	ChannelRight
	ChannelBoth
	ChannelOddLeft
	ChannelOddRight
)

func (c Channel) String() string {
	switch c {
	case ChannelLeft:
		return "Left"
	case ChannelRight:
		return "Right"
	case ChannelBoth:
		return "Both"
	case ChannelOddLeft:
		return "Odd Left"
	case ChannelOddRight:
		return "Odd Right"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ParseChannel maps a channel name to its Channel value.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "Left":
		return ChannelLeft, nil
	case "Right":
		return ChannelRight, nil
	case "Both":
		return ChannelBoth, nil
	case "Odd Left":
		return ChannelOddLeft, nil
	case "Odd Right":
		return ChannelOddRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChannel, s)
}

// checkChannel validates a plain left/right/both selector.
func checkChannel(c Channel) error {
	switch c {
	case ChannelLeft, ChannelRight, ChannelBoth:
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidChannel, c)
}

// checkHarmonicChannel additionally admits the odd-routing selectors.
func checkHarmonicChannel(c Channel) error {
	switch c {
	case ChannelLeft, ChannelRight, ChannelBoth, ChannelOddLeft, ChannelOddRight:
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidChannel, c)
}

// RefChannel names the reference ear for an interaural difference.
// The difference is applied to the opposite ear.
type RefChannel int

const (
	RefNone RefChannel = iota
	RefRight
	RefLeft
)

func (r RefChannel) String() string {
	switch r {
	case RefNone:
		return "None"
	case RefRight:
		return "Right"
	case RefLeft:
		return "Left"
	}
	return fmt.Sprintf("RefChannel(%d)", int(r))
}

// ParseRefChannel maps a reference channel name to its RefChannel value.
func ParseRefChannel(s string) (RefChannel, error) {
	switch s {
	case "None", "":
		return RefNone, nil
	case "Right":
		return RefRight, nil
	case "Left":
		return RefLeft, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRefChannel, s)
}

func checkRefChannel(r RefChannel) error {
	switch r {
	case RefNone, RefRight, RefLeft:
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidRefChannel, r)
}

// HarmPhase selects the phase relationship between the partials of a
// harmonic complex.
type HarmPhase int

const (
	HarmPhaseSine HarmPhase = iota
	HarmPhaseCosine
	HarmPhaseAlternating
	HarmPhaseSchroeder
	HarmPhaseRandom
)

func (p HarmPhase) String() string {
	switch p {
	case HarmPhaseSine:
		return "Sine"
	case HarmPhaseCosine:
		return "Cosine"
	case HarmPhaseAlternating:
		return "Alternating"
	case HarmPhaseSchroeder:
		return "Schroeder"
	case HarmPhaseRandom:
		return "Random"
	}
	return fmt.Sprintf("HarmPhase(%d)", int(p))
}

// ParseHarmPhase maps a phase relationship name to its HarmPhase value.
func ParseHarmPhase(s string) (HarmPhase, error) {
	switch s {
	case "Sine":
		return HarmPhaseSine, nil
	case "Cosine":
		return HarmPhaseCosine, nil
	case "Alternating":
		return HarmPhaseAlternating, nil
	case "Schroeder":
		return HarmPhaseSchroeder, nil
	case "Random":
		return HarmPhaseRandom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHarmPhase, s)
}

// DichoticPhase selects which spectral regions of a dichotic stimulus
// receive the interaural manipulation: the harmonic bands themselves
// (NoSpi) or their complement (NpiSo).
type DichoticPhase int

const (
	DichoticNoSpi DichoticPhase = iota
	DichoticNpiSo
)

func (p DichoticPhase) String() string {
	switch p {
	case DichoticNoSpi:
		return "NoSpi"
	case DichoticNpiSo:
		return "NpiSo"
	}
	return fmt.Sprintf("DichoticPhase(%d)", int(p))
}

// ParseDichoticPhase maps a phase relationship name to its DichoticPhase value.
func ParseDichoticPhase(s string) (DichoticPhase, error) {
	switch s {
	case "NoSpi":
		return DichoticNoSpi, nil
	case "NpiSo":
		return DichoticNpiSo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPhaseRel, s)
}

// DichoticDifference selects the interaural manipulation applied to the
// target spectral regions of a dichotic stimulus.
type DichoticDifference int

const (
	DifferenceIPD DichoticDifference = iota
	DifferenceITD
	DifferenceLevel
)

func (d DichoticDifference) String() string {
	switch d {
	case DifferenceIPD:
		return "IPD"
	case DifferenceITD:
		return "ITD"
	case DifferenceLevel:
		return "Level"
	}
	return fmt.Sprintf("DichoticDifference(%d)", int(d))
}

// ParseDichoticDifference maps a difference name to its DichoticDifference value.
func ParseDichoticDifference(s string) (DichoticDifference, error) {
	switch s {
	case "IPD":
		return DifferenceIPD, nil
	case "ITD":
		return DifferenceITD, nil
	case "Level":
		return DifferenceLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifference, s)
}

// NoiseColor selects the spectral tilt of a noise carrier.
type NoiseColor int

const (
	NoiseWhite NoiseColor = iota
	NoisePink
)

func (n NoiseColor) String() string {
	switch n {
	case NoiseWhite:
		return "White"
	case NoisePink:
		return "Pink"
	}
	return fmt.Sprintf("NoiseColor(%d)", int(n))
}

// ParseNoiseColor maps a noise color name to its NoiseColor value.
func ParseNoiseColor(s string) (NoiseColor, error) {
	switch s {
	case "White":
		return NoiseWhite, nil
	case "Pink":
		return NoisePink, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNoiseColor, s)
}

// SweepKind selects the frequency trajectory of a chirp or glide.
type SweepKind int

const (
	// SweepLinear changes frequency linearly on a Hz scale.
	SweepLinear SweepKind = iota
	// SweepExponential changes frequency exponentially on a cents scale.
	SweepExponential
)

func (k SweepKind) String() string {
	switch k {
	case SweepLinear:
		return "Linear"
	case SweepExponential:
		return "Exponential"
	}
	return fmt.Sprintf("SweepKind(%d)", int(k))
}

// ParseSweepKind maps a sweep kind name to its SweepKind value.
func ParseSweepKind(s string) (SweepKind, error) {
	switch s {
	case "Linear":
		return SweepLinear, nil
	case "Exponential":
		return SweepExponential, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSweep, s)
}
