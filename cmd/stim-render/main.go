package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/cwbudde/algo-stim/internal/sndfile"
	"github.com/cwbudde/algo-stim/preset"
	"github.com/cwbudde/algo-stim/stim"
)

func main() {
	presetPath := flag.String("preset", "", "Stimulus preset JSON file path (overrides stimulus flags)")
	kind := flag.String("kind", "pure_tone", "Stimulus kind: "+strings.Join(preset.Kinds(), ", "))
	frequency := flag.Float64("frequency", 1000, "Tone frequency / sweep start in Hz")
	f0 := flag.Float64("f0", 440, "Fundamental frequency in Hz (harmonic stimuli)")
	lowHarm := flag.Int("low-harm", 1, "Lowest harmonic number")
	highHarm := flag.Int("high-harm", 10, "Highest harmonic number")
	level := flag.Float64("level", 60, "Level in dB SPL (spectrum level for noises)")
	duration := flag.Float64("duration", 500, "Steady-state duration in ms")
	ramp := flag.Float64("ramp", 10, "Raised-cosine ramp duration in ms")
	channel := flag.String("channel", "Both", "Output channel: Left, Right, Both, Odd Left, Odd Right")
	seed := flag.Int64("seed", 1, "Random seed for noises and random phases")
	sampleRate := flag.Float64("sample-rate", 48000, "Render sample rate in Hz")
	maxLevel := flag.Float64("max-level", stim.DefaultMaxLevel, "Calibration level: dB SPL of a unit-amplitude sinusoid")
	scaleDB := flag.Float64("scale", 0, "Post-synthesis gain in dB")
	bitDepth := flag.Int("bit-depth", 16, "Output WAV bit depth (16, 24 or 32)")
	mono := flag.Bool("mono", false, "Collapse to mono by averaging the two channels")
	output := flag.String("output", "output.wav", "Output WAV file path")
	flag.Parse()

	f, err := loadOrBuildPreset(*presetPath, *kind, flagStimulus{
		frequency: *frequency,
		f0:        *f0,
		lowHarm:   *lowHarm,
		highHarm:  *highHarm,
		level:     *level,
		duration:  *duration,
		ramp:      *ramp,
		channel:   *channel,
		seed:      *seed,
		rate:      *sampleRate,
		maxLevel:  *maxLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sig, err := f.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building stimulus: %v\n", err)
		os.Exit(1)
	}
	if *scaleDB != 0 {
		sig = stim.Scale(*scaleDB, sig)
	}

	rate := 48000.0
	if f.SampleRate != nil {
		rate = *f.SampleRate
	}
	reportLevels(sig, rate)

	if *mono {
		err = sndfile.WriteSignalMono(*output, sig, int(rate), *bitDepth)
	} else {
		err = sndfile.WriteSignal(*output, sig, int(rate), *bitDepth)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing WAV file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d frames, %.3fs)\n", *output, sig.Frames(), float64(sig.Frames())/rate)
}

// flagStimulus carries the command-line stimulus definition used when
// no preset file is given.
type flagStimulus struct {
	frequency float64
	f0        float64
	lowHarm   int
	highHarm  int
	level     float64
	duration  float64
	ramp      float64
	channel   string
	seed      int64
	rate      float64
	maxLevel  float64
}

func loadOrBuildPreset(path, kind string, fs flagStimulus) (*preset.File, error) {
	if path != "" {
		return preset.LoadJSON(path)
	}
	f := &preset.File{
		SampleRate: &fs.rate,
		MaxLevel:   &fs.maxLevel,
		Seed:       &fs.seed,
		Stimulus: preset.Stimulus{
			Kind:        kind,
			Channel:     &fs.channel,
			LevelDB:     &fs.level,
			DurationMs:  &fs.duration,
			RampMs:      &fs.ramp,
			FrequencyHz: &fs.frequency,
			F0Hz:        &fs.f0,
			LowHarm:     &fs.lowHarm,
			HighHarm:    &fs.highHarm,
		},
	}
	return f, nil
}

func reportLevels(sig stim.Signal, rate float64) {
	for _, ch := range []struct {
		name string
		c    stim.Channel
	}{
		{"left", stim.ChannelLeft},
		{"right", stim.ChannelRight},
	} {
		r, err := sig.RMS(ch.c)
		if err != nil {
			continue
		}
		db := 20 * math.Log10(math.Max(r, 1e-12))
		fmt.Printf("%-5s RMS %8.5f (%6.1f dBFS)\n", ch.name, r, db)
	}
}
