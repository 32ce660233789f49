package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/cwbudde/algo-stim/analysis"
	"github.com/cwbudde/algo-stim/internal/sndfile"
)

func main() {
	input := flag.String("input", "input.wav", "Input WAV file")
	fftSize := flag.Int("fft-size", 4096, "STFT transform length (power of two)")
	hop := flag.Int("hop", 2048, "STFT hop in samples")
	winName := flag.String("window", "hann", "Analysis window: hann, hamming, blackman, rectangular")
	pitchLo := flag.Float64("pitch-lo", 50, "Lower pitch search bound in Hz")
	pitchHi := flag.Float64("pitch-hi", 5000, "Upper pitch search bound in Hz")
	flag.Parse()

	win, err := parseWindow(*winName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	samples, rate, err := sndfile.ReadMono(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *input, err)
		os.Exit(1)
	}
	fs := float64(rate)
	fmt.Printf("Input: %d frames @ %d Hz (%.2fs)\n\n", len(samples), rate, float64(len(samples))/fs)

	spec, err := analysis.Spectrum(samples, fs, analysis.WithWindow(win))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Spectrum: %d points, %.2f Hz/bin\n", spec.FFTSize, spec.BinHz)
	fmt.Printf("Dominant frequency: %.1f Hz\n\n", spec.DominantFrequency())

	type band struct {
		name string
		loHz float64
		hiHz float64
	}
	bands := []band{
		{"sub-bass (20-100Hz)", 20, 100},
		{"bass (100-300Hz)", 100, 300},
		{"low-mid (300-1kHz)", 300, 1000},
		{"mid (1-3kHz)", 1000, 3000},
		{"hi-mid (3-6kHz)", 3000, 6000},
		{"high (6-12kHz)", 6000, 12000},
		{"air (12-20kHz)", 12000, 20000},
	}
	total := spec.BandLevel(20, fs/2)
	fmt.Println("Band levels:")
	for _, b := range bands {
		if b.loHz >= fs/2 {
			continue
		}
		lvl := spec.BandLevel(b.loHz, math.Min(b.hiHz, fs/2))
		share := 0.0
		if total > 0 {
			share = 100 * lvl / total
		}
		db := 20 * math.Log10(math.Max(lvl, 1e-12))
		fmt.Printf("  %-22s %7.1f dB  %5.1f%%\n", b.name, db, share)
	}
	fmt.Println()

	st, err := analysis.Spectrogram(samples, fs, *fftSize, *hop, analysis.WithWindow(win))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Spectrogram: %d frames, %d samples hop\n", len(st.Frames), st.Hop)
	printDominantTrack(st)

	pitch, err := analysis.PitchHz(samples, fs, *pitchLo, *pitchHi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if pitch > 0 {
		fmt.Printf("\nAutocorrelation pitch estimate: %.1f Hz\n", pitch)
	} else {
		fmt.Println("\nNo periodicity found in the pitch range")
	}
}

func parseWindow(name string) (window.Type, error) {
	switch name {
	case "hann":
		return window.TypeHann, nil
	case "hamming":
		return window.TypeHamming, nil
	case "blackman":
		return window.TypeBlackman, nil
	case "rectangular":
		return window.TypeRectangular, nil
	}
	return 0, fmt.Errorf("unknown window %q", name)
}

// printDominantTrack lists the strongest bin of each STFT frame, a
// rough frequency-over-time track of the stimulus.
func printDominantTrack(st *analysis.STFT) {
	step := 1
	if len(st.Frames) > 20 {
		step = len(st.Frames) / 20
	}
	for i := 0; i < len(st.Frames); i += step {
		frame := st.Frames[i]
		best, bestVal := 0, 0.0
		for k := 1; k < len(frame); k++ {
			if frame[k] > bestVal {
				bestVal = frame[k]
				best = k
			}
		}
		fmt.Printf("  t=%6.3fs  peak %7.1f Hz\n", st.Times[i], st.Freqs[best])
	}
}
