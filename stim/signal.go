package stim

import (
	"fmt"
	"math"
)

// Signal is a finite two-channel buffer of real samples in chronological
// order. The sampling rate is carried out of band as a parameter of the
// functions that produce and consume Signals. Both channels always have
// the same length.
type Signal struct {
	Left  []float64
	Right []float64
}

// NewSignal allocates a silent Signal with the given number of frames.
func NewSignal(frames int) Signal {
	if frames < 0 {
		frames = 0
	}
	return Signal{
		Left:  make([]float64, frames),
		Right: make([]float64, frames),
	}
}

// Silence generates a silence of the given duration.
func Silence(durationMs, fs float64) Signal {
	return NewSignal(int(math.Round(durationMs / 1000 * fs)))
}

// Frames returns the number of sample frames.
func (s Signal) Frames() int {
	return len(s.Left)
}

// Clone returns a deep copy.
func (s Signal) Clone() Signal {
	out := Signal{
		Left:  make([]float64, len(s.Left)),
		Right: make([]float64, len(s.Right)),
	}
	copy(out.Left, s.Left)
	copy(out.Right, s.Right)
	return out
}

// Validate reports whether both channels have equal length.
func (s Signal) Validate() error {
	if len(s.Left) != len(s.Right) {
		return fmt.Errorf("%w: left %d, right %d", ErrChannelLenMismatch, len(s.Left), len(s.Right))
	}
	return nil
}

// RMS computes the root mean square value of the selected channel(s).
// ChannelBoth pools the samples of both channels.
func (s Signal) RMS(c Channel) (float64, error) {
	switch c {
	case ChannelLeft:
		return RMS(s.Left), nil
	case ChannelRight:
		return RMS(s.Right), nil
	case ChannelBoth:
		n := len(s.Left) + len(s.Right)
		if n == 0 {
			return 0, nil
		}
		var sum float64
		for _, v := range s.Left {
			sum += v * v
		}
		for _, v := range s.Right {
			sum += v * v
		}
		return math.Sqrt(sum / float64(n)), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidChannel, c)
}

// RMS computes the root mean square value of a sample slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}
