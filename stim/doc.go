// Package stim synthesizes stereo psychoacoustic stimuli.
//
// A Synth holds the synthesis configuration (sample rate, calibration
// level, random source) and generates Signal values: pure and modulated
// tones, frequency sweeps, harmonic complexes, noises and dichotic-pitch
// stimuli. Free functions transform and combine already generated
// Signals (filtering, gating, level glides, phase shifts, spectral
// pinking, mixing with timing offsets).
//
// All levels are given in dB SPL relative to a calibration constant: the
// level produced by a unit-amplitude sinusoid on the target playback
// system (MaxLevel). Durations are in milliseconds, phases in radians,
// interaural time differences in microseconds and logarithmic frequency
// intervals in cents.
//
// Every transform returns a fresh Signal and never aliases its input.
package stim
