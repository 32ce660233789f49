package stim

import "errors"

// Errors returned by generators, transforms and compositors.
var (
	ErrInvalidChannel     = errors.New("stim: invalid channel")
	ErrInvalidRefChannel  = errors.New("stim: invalid reference channel")
	ErrInvalidHarmPhase   = errors.New("stim: invalid harmonic phase relationship")
	ErrInvalidPhaseRel    = errors.New("stim: invalid dichotic phase relationship")
	ErrInvalidDifference  = errors.New("stim: invalid dichotic difference")
	ErrInvalidNoiseColor  = errors.New("stim: invalid noise color")
	ErrInvalidSweep       = errors.New("stim: invalid sweep kind")
	ErrInvalidFrequency   = errors.New("stim: invalid frequency")
	ErrInvalidCutoffs     = errors.New("stim: filter cutoffs must be non-decreasing")
	ErrEmptyInput         = errors.New("stim: empty input")
	ErrLengthMismatch     = errors.New("stim: input length mismatch")
	ErrChannelLenMismatch = errors.New("stim: left and right channels differ in length")
)
