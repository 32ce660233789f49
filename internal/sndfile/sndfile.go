// Package sndfile reads and writes stimuli as WAV files and converts
// between sample rates.
package sndfile

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	dspresample "github.com/cwbudde/algo-dsp/dsp/resample"
	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-stim/stim"
)

func checkBitDepth(bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
		return nil
	}
	return fmt.Errorf("unsupported bit depth %d (use 16, 24 or 32)", bitDepth)
}

// WriteSignal writes a stereo Signal as a WAV file at the given bit
// depth. Samples are expected in [-1, 1].
func WriteSignal(path string, sig stim.Signal, sampleRate, bitDepth int) error {
	if err := sig.Validate(); err != nil {
		return err
	}
	if err := checkBitDepth(bitDepth); err != nil {
		return err
	}
	data := make([]float32, sig.Frames()*2)
	for i := 0; i < sig.Frames(); i++ {
		data[i*2] = float32(sig.Left[i])
		data[i*2+1] = float32(sig.Right[i])
	}
	return writeWAV(path, data, sampleRate, bitDepth, 2)
}

// WriteMono writes samples as a mono WAV file at the given bit depth.
func WriteMono(path string, samples []float64, sampleRate, bitDepth int) error {
	if err := checkBitDepth(bitDepth); err != nil {
		return err
	}
	data := make([]float32, len(samples))
	for i, v := range samples {
		data[i] = float32(v)
	}
	return writeWAV(path, data, sampleRate, bitDepth, 1)
}

// WriteSignalMono collapses a Signal to mono by averaging the two
// channels and writes it as a mono WAV file.
func WriteSignalMono(path string, sig stim.Signal, sampleRate, bitDepth int) error {
	if err := sig.Validate(); err != nil {
		return err
	}
	mono := make([]float64, sig.Frames())
	for i := range mono {
		mono[i] = 0.5 * (sig.Left[i] + sig.Right[i])
	}
	return WriteMono(path, mono, sampleRate, bitDepth)
}

func writeWAV(path string, interleaved []float32, sampleRate, bitDepth, channels int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	defer enc.Close()

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: channels,
		},
		Data:           interleaved,
		SourceBitDepth: bitDepth,
	}
	return enc.Write(buf)
}

// ReadSignal reads a WAV file into a stereo Signal, normalized to
// [-1, 1]. Mono files are duplicated into both channels; files with
// more than two channels are rejected. The second return value is the
// file's sample rate.
func ReadSignal(path string) (stim.Signal, int, error) {
	data, channels, sampleRate, bitDepth, err := readWAV(path)
	if err != nil {
		return stim.Signal{}, 0, err
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))
	frames := len(data) / channels
	sig := stim.NewSignal(frames)
	switch channels {
	case 1:
		for i := 0; i < frames; i++ {
			v := float64(data[i]) * scale
			sig.Left[i] = v
			sig.Right[i] = v
		}
	case 2:
		for i := 0; i < frames; i++ {
			sig.Left[i] = float64(data[i*2]) * scale
			sig.Right[i] = float64(data[i*2+1]) * scale
		}
	default:
		return stim.Signal{}, 0, fmt.Errorf("%s: %d channels not supported", path, channels)
	}
	return sig, sampleRate, nil
}

// ReadMono reads a WAV file collapsed to mono by averaging its
// channels, normalized to [-1, 1]. The second return value is the
// file's sample rate.
func ReadMono(path string) ([]float64, int, error) {
	data, channels, sampleRate, bitDepth, err := readWAV(path)
	if err != nil {
		return nil, 0, err
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))
	frames := len(data) / channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(data[i*channels+c])
		}
		out[i] = sum / float64(channels) * scale
	}
	return out, sampleRate, nil
}

func readWAV(path string) (data []int, channels, sampleRate, bitDepth int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, 0, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, 0, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}
	bitDepth = buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(dec.BitDepth)
	}
	// The decoder returns samples normalized by 2^(bitDepth-1); undo
	// that to recover the raw integer sample values.
	scale := float64(int64(1) << (bitDepth - 1))
	data = make([]int, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = int(math.Round(float64(v) * scale))
	}
	return data, buf.Format.NumChannels, buf.Format.SampleRate, bitDepth, nil
}

// ResampleIfNeeded converts samples from one rate to another, passing
// the input through unchanged when the rates already match.
func ResampleIfNeeded(in []float64, fromRate, toRate int) ([]float64, error) {
	if fromRate == toRate {
		return in, nil
	}
	r, err := dspresample.NewForRates(
		float64(fromRate),
		float64(toRate),
		dspresample.WithQuality(dspresample.QualityBest),
	)
	if err != nil {
		return nil, err
	}
	return r.Process(in), nil
}

// ResampleSignal converts both channels of a Signal to a new rate.
func ResampleSignal(sig stim.Signal, fromRate, toRate int) (stim.Signal, error) {
	if err := sig.Validate(); err != nil {
		return stim.Signal{}, err
	}
	left, err := ResampleIfNeeded(sig.Left, fromRate, toRate)
	if err != nil {
		return stim.Signal{}, err
	}
	right, err := ResampleIfNeeded(sig.Right, fromRate, toRate)
	if err != nil {
		return stim.Signal{}, err
	}
	return stim.Signal{Left: left, Right: right}, nil
}
